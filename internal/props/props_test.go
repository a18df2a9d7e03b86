// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package props

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/diag"
)

func bits(s string) bitbuf.Bits {
	out := make(bitbuf.Bits, len(s))
	for i, c := range s {
		if c == '1' {
			out[i] = 1
		}
	}
	return out
}

func testTable() *Table {
	return NewTable([]Definition{
		{ID: 2, FieldWidth: []int{7}, Offsets: []int64{32}},
		{ID: 3, FieldWidth: []int{8, 9}},
		{ID: 4, FieldWidth: []int{9}},
	})
}

// TestEmptyList covers seed scenario 4.
func TestEmptyList(t *testing.T) {
	input := bits("111111111")
	list, consumed, err := Decode(input, testTable(), nil)
	require.NoError(t, err)
	require.Equal(t, 9, consumed)
	require.True(t, list.Terminated)
	require.Empty(t, list.Properties)

	out, err := Encode(list)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

// TestSingleOffsetProperty covers seed scenario 5.
func TestSingleOffsetProperty(t *testing.T) {
	input := bits("010000000" + "0101000" + "111111111")
	list, consumed, err := Decode(input, testTable(), nil)
	require.NoError(t, err)
	require.Equal(t, len(input), consumed)
	require.True(t, list.Terminated)
	require.Len(t, list.Properties, 1)
	require.EqualValues(t, 2, list.Properties[0].Definition.ID)
	require.Equal(t, []int64{-22}, list.Properties[0].Values)

	out, err := Encode(list)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

// TestMultiFieldProperty covers seed scenario 6.
func TestMultiFieldProperty(t *testing.T) {
	input := bits("110000000" + "11011000" + "000000001" + "111111111")
	list, consumed, err := Decode(input, testTable(), nil)
	require.NoError(t, err)
	require.Equal(t, len(input), consumed)
	require.Len(t, list.Properties, 1)
	require.EqualValues(t, 3, list.Properties[0].Definition.ID)
	require.Equal(t, []int64{27, 256}, list.Properties[0].Values)
}

// TestEarlyTerminatorLookalike covers seed scenario 7: a value equal to
// the sentinel bit pattern is not mistaken for the terminator because
// the id field precedes it.
func TestEarlyTerminatorLookalike(t *testing.T) {
	input := bits("001000000" + "111111111" + "111111111")
	list, consumed, err := Decode(input, testTable(), nil)
	require.NoError(t, err)
	require.Equal(t, len(input), consumed)
	require.True(t, list.Terminated)
	require.Len(t, list.Properties, 1)
	require.EqualValues(t, 4, list.Properties[0].Definition.ID)
	require.Equal(t, []int64{511}, list.Properties[0].Values)

	out, err := Encode(list)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestUnknownIDRewindsAndStops(t *testing.T) {
	input := bits("100100000" + "111111111")
	rec := diag.NewRecorder()
	list, consumed, err := Decode(input, testTable(), rec)
	require.NoError(t, err)
	require.False(t, list.Terminated)
	require.Empty(t, list.Properties)
	require.Equal(t, 0, consumed)
	require.Equal(t, []uint16{9}, rec.UnknownPropertyIDs())
}
