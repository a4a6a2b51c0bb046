// hazmat-go: keyed hashing and key derivation primitives
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmac

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"testing"

	hazmat "github.com/dark-bio/hazmat-go"
)

// nistKey is the 32-byte key 0x40..0x5F used by every SP 800-185 KMAC
// sample.
var nistKey, _ = hex.DecodeString("404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f")

func longData() []byte {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// Test vectors from the NIST SP 800-185 KMAC sample files.
func TestSum128(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		custom string
		out    string
	}{
		// KMAC sample #1
		{
			name: "sample1",
			data: []byte{0x00, 0x01, 0x02, 0x03},
			out:  "e5780b0d3ea6f7d3a429c5706aa43a00fadbd7d49628839e3187243f456ee14e",
		},
		// KMAC sample #2
		{
			name:   "sample2",
			data:   []byte{0x00, 0x01, 0x02, 0x03},
			custom: "My Tagged Application",
			out:    "3b1fba963cd8b0b59e8c1a6d71888b7143651af8ba0a7070c0979e2811324aa5",
		},
		// KMAC sample #3
		{
			name:   "sample3",
			data:   longData(),
			custom: "My Tagged Application",
			out:    "1f5b4e6cca02209e0dcb5ca635b89a15e271ecc760071dfd805faa38f9729230",
		},
	}
	for _, tc := range tests {
		expected, _ := hex.DecodeString(tc.out)
		got, err := Sum128(nistKey, tc.data, []byte(tc.custom), len(expected))
		if err != nil {
			t.Fatalf("%s: Sum128: %v", tc.name, err)
		}
		if !bytes.Equal(got, expected) {
			t.Errorf("%s: Sum128() = %x, want %x", tc.name, got, expected)
		}
	}
}

// KMAC sample #4 from the NIST SP 800-185 sample files.
func TestSum256(t *testing.T) {
	expected, _ := hex.DecodeString(
		"20c570c31346f703c9ac36c61c03cb64c3970d0cfc787e9b79599d273a68d2f7" +
			"f69d4cc3de9d104a351689f27cf6f5951f0103f33f4f24871024d9c27773a8dd")

	got, err := Sum256(nistKey, []byte{0x00, 0x01, 0x02, 0x03}, []byte("My Tagged Application"), len(expected))
	if err != nil {
		t.Fatalf("Sum256: %v", err)
	}
	if !bytes.Equal(got, expected) {
		t.Errorf("Sum256() = %x, want %x", got, expected)
	}
}

func TestSumParams(t *testing.T) {
	short := make([]byte, 15)
	if _, err := Sum128(short, nil, nil, 32); !errors.Is(err, hazmat.ErrInvalidParams) {
		t.Errorf("Sum128 with a 15-byte key accepted: %v", err)
	}
	if _, err := Sum256(nistKey[:31], nil, nil, 32); !errors.Is(err, hazmat.ErrInvalidParams) {
		t.Errorf("Sum256 with a 31-byte key accepted: %v", err)
	}
	if _, err := Sum128(nistKey, nil, nil, MinTagSize-1); !errors.Is(err, hazmat.ErrInvalidParams) {
		t.Errorf("undersized tag accepted: %v", err)
	}
	if _, err := Sum128(nistKey, nil, nil, 65537); !errors.Is(err, hazmat.ErrInvalidParams) {
		t.Errorf("oversized tag accepted: %v", err)
	}
	if _, err := Sum128(nistKey, nil, make([]byte, 65537), 32); !errors.Is(err, hazmat.ErrInvalidParams) {
		t.Errorf("oversized custom accepted: %v", err)
	}
	// Empty message and empty custom are both fine.
	if _, err := Sum128(nistKey, nil, nil, MinTagSize); err != nil {
		t.Errorf("Sum128 with empty message: %v", err)
	}
}

func TestVerify(t *testing.T) {
	msg := []byte("tagged message")
	custom := []byte("test")

	tag, err := Sum256(nistKey, msg, custom, 48)
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify256(tag, nistKey, msg, custom, 48); err != nil {
		t.Fatalf("Verify256 on matching tag: %v", err)
	}
	flipped := append([]byte(nil), tag...)
	flipped[0] ^= 0x01
	if err := Verify256(flipped, nistKey, msg, custom, 48); !errors.Is(err, hazmat.ErrVerification) {
		t.Errorf("Verify256 on flipped tag = %v, want ErrVerification", err)
	}
	if err := Verify256(tag[:47], nistKey, msg, custom, 48); !errors.Is(err, hazmat.ErrVerification) {
		t.Errorf("Verify256 on truncated tag = %v, want ErrVerification", err)
	}
	if err := Verify128(tag, nistKey[:15], msg, custom, 48); !errors.Is(err, hazmat.ErrVerification) {
		t.Errorf("Verify128 with an invalid key = %v, want ErrVerification", err)
	}
}

func TestLeftEncode(t *testing.T) {
	tests := []struct {
		in  uint64
		out []byte
	}{
		{0, []byte{0x01, 0x00}},
		{32, []byte{0x01, 0x20}},
		{64, []byte{0x01, 0x40}},
		{255, []byte{0x01, 0xFF}},
		{256, []byte{0x02, 0x01, 0x00}},
		{65536, []byte{0x03, 0x01, 0x00, 0x00}},
		{math.MaxUint64, []byte{0x08, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tc := range tests {
		if got := leftEncode(tc.in); !bytes.Equal(got, tc.out) {
			t.Errorf("leftEncode(%d) = %#v, want %#v", tc.in, got, tc.out)
		}
	}
}

func TestRightEncode(t *testing.T) {
	tests := []struct {
		in  uint64
		out []byte
	}{
		{0, []byte{0x00, 0x01}},
		{32, []byte{0x20, 0x01}},
		{255, []byte{0xFF, 0x01}},
		{256, []byte{0x01, 0x00, 0x02}},
		{math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x08}},
	}
	for _, tc := range tests {
		if got := rightEncode(tc.in); !bytes.Equal(got, tc.out) {
			t.Errorf("rightEncode(%d) = %#v, want %#v", tc.in, got, tc.out)
		}
	}
}

func TestBytepad(t *testing.T) {
	got := bytepad([]byte{0xAA, 0xBB}, 8)
	want := []byte{0x01, 0x08, 0xAA, 0xBB, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("bytepad() = %#v, want %#v", got, want)
	}
	if len(got)%8 != 0 {
		t.Errorf("bytepad() length %d is not a multiple of the rate", len(got))
	}
	// Already-aligned input gains no extra block.
	aligned := bytepad(make([]byte, 6), 8)
	if len(aligned) != 8 {
		t.Errorf("bytepad on aligned input returned %d bytes, want 8", len(aligned))
	}
}

func FuzzSumVerify(f *testing.F) {
	f.Add([]byte("message"), []byte("custom"), 32)
	f.Add([]byte{}, []byte{}, 8)
	f.Add([]byte{0x00}, []byte{0xFF}, 137)

	f.Fuzz(func(t *testing.T, message, custom []byte, length int) {
		if length > 1024 {
			length = length%1024 + 1
		}
		tag, err := Sum256(nistKey, message, custom, length)
		if length < MinTagSize {
			if !errors.Is(err, hazmat.ErrInvalidParams) {
				t.Fatalf("undersized tag length %d accepted", length)
			}
			return
		}
		if err != nil {
			t.Fatalf("Sum256: %v", err)
		}
		if len(tag) != length {
			t.Fatalf("Sum256 returned %d bytes, want %d", len(tag), length)
		}
		if err := Verify256(tag, nistKey, message, custom, length); err != nil {
			t.Fatalf("Verify256 on own output: %v", err)
		}
		tag[len(tag)-1] ^= 0x01
		if err := Verify256(tag, nistKey, message, custom, length); !errors.Is(err, hazmat.ErrVerification) {
			t.Fatalf("Verify256 on corrupted output = %v, want ErrVerification", err)
		}
	})
}
