// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package itemdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d2tools/stashsort/internal/diag"
)

func TestLookupKnownAndUnknown(t *testing.T) {
	table, err := NewTable(strings.NewReader(
		"id,name,width,height,has_defense,has_durability,stackable\n" +
			"hlm,Helm,2,2,1,1,0\n"))
	require.NoError(t, err)

	info := table.Lookup("hlm", nil)
	require.Equal(t, Info{Code: "hlm", Name: "Helm", Width: 2, Height: 2, HasDefense: true, HasDurability: true}, info)

	rec := diag.NewRecorder()
	missing := table.Lookup("zzzz", rec)
	require.Equal(t, 2, missing.Width)
	require.Equal(t, 4, missing.Height)
	require.Equal(t, []string{"zzzz"}, rec.UnknownItemTypes())
}

func TestNewTableRejectsShortRows(t *testing.T) {
	_, err := NewTable(strings.NewReader(
		"id,name,width,height,has_defense,has_durability,stackable\n" +
			"hlm,Helm,2,2\n"))
	require.Error(t, err)
}

func TestDefaultTableLoads(t *testing.T) {
	require.NotNil(t, Default())
}
