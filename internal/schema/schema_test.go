// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/codec"
	"github.com/d2tools/stashsort/internal/diag"
)

func TestDecodeEncodeRoundTripWithUnparsedTail(t *testing.T) {
	s := New(
		Field{Name: "flag", Type: codec.Integer{Width: 1}},
		Field{Name: "payload", Type: codec.Integer{Width: 7}, Condition: IfField("flag")},
	)
	input := bitbuf.FromBytes([]byte{0xff, 0xaa}) // flag=1, payload=0x7f, then 8 leftover bits

	rec, err := s.Decode(context.Background(), input)
	require.NoError(t, err)
	require.EqualValues(t, 1, rec.MustGet("flag"))
	require.EqualValues(t, 0x7f, rec.MustGet("payload"))
	_, hasTail := rec.Get(UnparsedField)
	require.True(t, hasTail)

	out, err := s.Encode(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestConditionSkipsAbsentField(t *testing.T) {
	s := New(
		Field{Name: "flag", Type: codec.Integer{Width: 1}},
		Field{Name: "payload", Type: codec.Integer{Width: 7}, Condition: IfField("flag")},
	)
	input := bitbuf.FromBytes([]byte{0x00})

	rec, err := s.Decode(context.Background(), input)
	require.NoError(t, err)
	require.EqualValues(t, 0, rec.MustGet("flag"))
	_, ok := rec.Get("payload")
	require.False(t, ok)

	out, err := s.Encode(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestMultipleFieldFromSiblingCount(t *testing.T) {
	s := New(
		Field{Name: "count", Type: codec.Integer{Width: 8}},
		Field{Name: "values", Type: codec.Integer{Width: 4}, Multiple: FromField("count")},
	)
	input := bitbuf.Append(bitbuf.IntToBits(2, 8), bitbuf.IntToBits(5, 4), bitbuf.IntToBits(9, 4))

	rec, err := s.Decode(context.Background(), input)
	require.NoError(t, err)
	values, ok := rec.Get("values")
	require.True(t, ok)
	require.Equal(t, []interface{}{uint64(5), uint64(9)}, values)

	out, err := s.Encode(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestParentFieldLookup(t *testing.T) {
	child := New(
		Field{Name: "v", Type: codec.Integer{Width: 4}, Condition: IfParentField("enabled")},
	)
	s := New(
		Field{Name: "enabled", Type: codec.Integer{Width: 1}},
		Field{Name: "child", Type: child, Condition: Always},
	)
	// enabled=1, child.v present (4 bits)
	input := bitbuf.Append(bitbuf.IntToBits(1, 1), bitbuf.IntToBits(7, 4))

	rec, err := s.Decode(context.Background(), input)
	require.NoError(t, err)
	childRec, ok := rec.MustGet("child").(*OrderedRecord)
	require.True(t, ok)
	require.EqualValues(t, 7, childRec.MustGet("v"))
}

func TestMissingRequiredFieldOnEncode(t *testing.T) {
	s := New(Field{Name: "v", Type: codec.Integer{Width: 4}})
	rec := NewRecord()
	_, err := s.Encode(context.Background(), rec)
	require.Error(t, err)
}

func TestEncodeWarnsOnMultipleCountMismatch(t *testing.T) {
	s := New(
		Field{Name: "count", Type: codec.Integer{Width: 8}},
		Field{Name: "values", Type: codec.Integer{Width: 4}, Multiple: FromField("count")},
	)
	rec := NewRecord()
	rec.Set("count", uint64(3))
	rec.Set("values", []interface{}{uint64(5), uint64(9)}) // only 2, count says 3

	recorder := diag.NewRecorder()
	ctx := diag.WithRecorder(context.Background(), recorder)
	out, err := s.Encode(ctx, rec)
	require.NoError(t, err)
	require.Equal(t, []string{"values"}, recorder.CountMismatches())

	// The supplied elements are still encoded as-is, per the tolerant policy.
	want := bitbuf.Append(bitbuf.IntToBits(3, 8), bitbuf.IntToBits(5, 4), bitbuf.IntToBits(9, 4))
	require.Equal(t, want, out)
}
