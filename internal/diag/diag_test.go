// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package diag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorderCountsAndDedupes(t *testing.T) {
	rec := NewRecorder()
	rec.UnknownItemType("zzzz")
	rec.UnknownItemType("zzzz")
	rec.UnknownItemType("yyyy")
	rec.UnknownPropertyID(9)

	require.Equal(t, []string{"yyyy", "zzzz"}, rec.UnknownItemTypes())
	require.Equal(t, []uint16{9}, rec.UnknownPropertyIDs())
}

func TestCountMismatchCountsAndDedupes(t *testing.T) {
	rec := NewRecorder()
	rec.CountMismatch("set_properties")
	rec.CountMismatch("set_properties")
	rec.CountMismatch("values")

	require.Equal(t, []string{"set_properties", "values"}, rec.CountMismatches())
}

func TestFromContextWithoutRecorderIsSafe(t *testing.T) {
	rec := FromContext(context.Background())
	require.NotNil(t, rec)
	rec.UnknownItemType("x") // must not panic
}

func TestWithRecorderRoundTrips(t *testing.T) {
	rec := NewRecorder()
	ctx := WithRecorder(context.Background(), rec)
	require.Same(t, rec, FromContext(ctx))
}
