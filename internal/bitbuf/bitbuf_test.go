// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bits(s string) Bits {
	out := make(Bits, len(s))
	for i, c := range s {
		if c == '1' {
			out[i] = 1
		}
	}
	return out
}

// TestBytesToBits covers seed scenario 2: bytes_to_bits([0x13]) ==
// "11001000" and its inverse.
func TestBytesToBits(t *testing.T) {
	got := FromBytes([]byte{0x13})
	require.Equal(t, bits("11001000"), got)

	back, err := ToBytes(got)
	require.NoError(t, err)
	require.Equal(t, []byte{0x13}, back)
}

func TestToBytesRequiresByteAlignment(t *testing.T) {
	_, err := ToBytes(bits("1010"))
	require.Error(t, err)
}

// TestIntRoundTrip covers seed scenario 1: encoding 134 at width 8
// yields "01100001" and decoding those bits yields 134 back.
func TestIntRoundTrip(t *testing.T) {
	got := IntToBits(134, 8)
	require.Equal(t, bits("01100001"), got)
	require.Equal(t, uint64(134), BitsToInt(got))
}

func TestFindAndSlice(t *testing.T) {
	b := FromBytes([]byte{0x00, 0x13, 0xff})
	pattern := FromBytes([]byte{0x13})
	idx := b.Find(pattern, 0)
	require.Equal(t, 8, idx)

	slice, err := b.Slice(8, 16)
	require.NoError(t, err)
	require.Equal(t, pattern, slice)

	_, err = b.Slice(0, 1000)
	require.Error(t, err)
}

func TestAppend(t *testing.T) {
	a := bits("101")
	b := bits("01")
	got := Append(a, b)
	require.Equal(t, bits("10101"), got)
	// a and b themselves are untouched.
	require.Equal(t, bits("101"), a)
	require.Equal(t, bits("01"), b)
}
