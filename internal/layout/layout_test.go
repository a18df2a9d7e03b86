// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package layout

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d2tools/stashsort/internal/itemdata"
	"github.com/d2tools/stashsort/internal/schema"
	"github.com/d2tools/stashsort/internal/sortpolicy"
)

func newItem(t *testing.T, typeCode string) *schema.OrderedRecord {
	t.Helper()
	r := schema.NewRecord()
	r.Set("item_type", typeCode)
	return r
}

func pos(t *testing.T, item *schema.OrderedRecord) (int, int) {
	t.Helper()
	x, ok := item.Get("position_x")
	require.True(t, ok)
	y, ok := item.Get("position_y")
	require.True(t, ok)
	return int(x.(uint64)), int(y.(uint64))
}

// TestPagerCursor covers seed scenario 8.
func TestPagerCursor(t *testing.T) {
	p := newPager()

	items := []*schema.OrderedRecord{
		schema.NewRecord(), schema.NewRecord(), schema.NewRecord(),
		schema.NewRecord(), schema.NewRecord(),
	}
	dims := [][2]int{{2, 4}, {2, 4}, {2, 3}, {2, 3}, {4, 4}}
	for i, d := range dims {
		p.place(items[i], d[0], d[1])
	}

	x, y := pos(t, items[0])
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
	x, y = pos(t, items[1])
	require.Equal(t, 2, x)
	require.Equal(t, 0, y)
	x, y = pos(t, items[2])
	require.Equal(t, 4, x)
	require.Equal(t, 0, y)
	x, y = pos(t, items[3])
	require.Equal(t, 6, x)
	require.Equal(t, 0, y)
	x, y = pos(t, items[4])
	require.Equal(t, 0, x)
	require.Equal(t, 4, y)

	require.Len(t, p.pages, 1)
	require.Len(t, p.pages[0].Items, 5)
}

func TestArrangePlacesFilteredThenLeftoverItems(t *testing.T) {
	data := "id,name,width,height,has_defense,has_durability,stackable\n" +
		"hlm,Cap,2,2,1,1,0\n" +
		"jav,Javelin,1,4,0,1,0\n"
	table, err := itemdata.NewTable(strings.NewReader(data))
	require.NoError(t, err)

	unique := newItem(t, "hlm")
	ext := schema.NewRecord()
	ext.Set("quality", uint64(sortpolicy.QualityUnique))
	unique.Set("extended_info", ext)

	misc1 := newItem(t, "jav")
	misc2 := newItem(t, "jav")

	items := []*schema.OrderedRecord{misc1, unique, misc2}
	filters := sortpolicy.BuiltinFilters(nil)
	script := sortpolicy.Script{
		sortpolicy.Page{sortpolicy.Row{sortpolicy.FilterPiece("uniques")}},
	}

	pages := Arrange(context.Background(), items, filters, script, table)
	require.NotEmpty(t, pages)

	x, y := pos(t, unique)
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)

	// The two unclaimed "jav" items are placed afterward, in their
	// original relative order.
	found := false
	for _, page := range pages {
		for _, item := range page.Items {
			if item == misc1 {
				found = true
			}
		}
	}
	require.True(t, found)
	x, y = pos(t, misc1)
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
	x, y = pos(t, misc2)
	require.Equal(t, 1, x)
	require.Equal(t, 0, y)
}

func TestArrangeDropsTrailingEmptyPage(t *testing.T) {
	data := "id,name,width,height,has_defense,has_durability,stackable\n" +
		"jav,Javelin,1,4,0,1,0\n"
	table, err := itemdata.NewTable(strings.NewReader(data))
	require.NoError(t, err)

	item := newItem(t, "jav")
	pages := Arrange(context.Background(), []*schema.OrderedRecord{item}, nil, sortpolicy.Script{}, table)
	require.Len(t, pages, 1)
	require.Len(t, pages[0].Items, 1)
}
