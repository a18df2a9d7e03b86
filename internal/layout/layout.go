// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package layout implements the 2-D bin-packing item layout engine
// (spec §4.7): filter extraction followed by placement of items into
// fixed 10x10 pages, driven by a sortpolicy.Script.
package layout

import (
	"context"
	"sort"

	"github.com/d2tools/stashsort/internal/diag"
	"github.com/d2tools/stashsort/internal/itemdata"
	"github.com/d2tools/stashsort/internal/schema"
	"github.com/d2tools/stashsort/internal/sortpolicy"
)

// PageWidth and PageHeight are the fixed grid dimensions of a stash
// page (spec §4.7); exported so callers computing page-fill ratios
// (the --profile report) don't duplicate the constant.
const (
	PageWidth  = 10
	PageHeight = 10
)

// Page is one placed page: items in placement order, each already
// carrying its final position_x/position_y.
type Page struct {
	Items []*schema.OrderedRecord
}

// pager tracks the (cx, cy, next_y) cursor and the growing page list
// (spec §4.7 Phase 2), mirroring the original tool's Pager one-to-one.
type pager struct {
	pages      []Page
	cx, cy     int
	nextY      int
}

func newPager() *pager {
	return &pager{pages: []Page{{}}}
}

func (p *pager) newRow() {
	p.cx = 0
	p.cy = p.nextY
}

func (p *pager) newPage() {
	p.pages = append(p.pages, Page{})
	p.cx, p.cy, p.nextY = 0, 0, 0
}

// place assigns item its (position_x, position_y) per the current
// cursor, advancing the cursor and wrapping to a new row/page as needed.
func (p *pager) place(item *schema.OrderedRecord, width, height int) {
	if p.cx+width > PageWidth {
		p.newRow()
	}
	if p.cy+height > PageHeight {
		p.newPage()
	}
	item.Set("position_x", uint64(p.cx))
	item.Set("position_y", uint64(p.cy))
	last := &p.pages[len(p.pages)-1]
	last.Items = append(last.Items, item)
	p.cx += width
	if p.cy+height > p.nextY {
		p.nextY = p.cy + height
	}
}

// dims looks up an item's footprint, defaulting to the unknown
// placeholder (2x4) and recording the miss via ctx's diag.Recorder.
func dims(ctx context.Context, item *schema.OrderedRecord, table *itemdata.Table) (int, int) {
	v, ok := item.Get("item_type")
	code, _ := v.(string)
	if !ok {
		code = ""
	}
	info := table.Lookup(code, diag.FromContext(ctx))
	return info.Width, info.Height
}

// Arrange runs the full layout pipeline: filter extraction against
// filters, then placement of the script's pages/rows/pieces and any
// unclaimed items, in the order script names them.
//
// script pieces referencing filter names draw from that filter's
// claimed bucket, in the filter's own sort order; concrete type-code
// pieces draw from the corresponding bucket of unclaimed items with that
// item_type, in their original relative order (spec §4.7: "placement
// order within a type is stable").
func Arrange(ctx context.Context, items []*schema.OrderedRecord, filters []sortpolicy.Filter, script sortpolicy.Script, table *itemdata.Table) []Page {
	claimed, rest := sortpolicy.Apply(items, filters)
	byType := groupByType(rest)

	p := newPager()
	referenced := make(map[string]bool)
	for _, page := range script {
		for _, row := range page {
			for _, piece := range row {
				var bucket []*schema.OrderedRecord
				if piece.Filter != "" {
					bucket = claimed[piece.Filter]
					referenced[piece.Filter] = true
				} else {
					bucket = byType[piece.Type]
					delete(byType, piece.Type)
				}
				for _, item := range bucket {
					w, h := dims(ctx, item, table)
					p.place(item, w, h)
				}
			}
			p.newRow()
		}
		p.newPage()
	}

	// Anything the script didn't name (including type codes claimed by a
	// filter the script never referenced) is appended in type-code order
	// at the end, matching the original tool's rows_to_pages behavior for
	// an unconfigured layout.
	for _, f := range filters {
		if referenced[f.Name] {
			continue
		}
		for code, group := range groupByType(claimed[f.Name]) {
			byType[code] = append(byType[code], group...)
		}
	}
	for _, code := range sortedTypeKeys(byType) {
		for _, item := range byType[code] {
			w, h := dims(ctx, item, table)
			p.place(item, w, h)
		}
	}

	// Drop the engine's final trailing empty page if the script or
	// leftover placement didn't use it.
	if len(p.pages) > 1 && len(p.pages[len(p.pages)-1].Items) == 0 {
		p.pages = p.pages[:len(p.pages)-1]
	}
	return p.pages
}

func groupByType(items []*schema.OrderedRecord) map[string][]*schema.OrderedRecord {
	out := make(map[string][]*schema.OrderedRecord)
	for _, item := range items {
		v, _ := item.Get("item_type")
		code, _ := v.(string)
		out[code] = append(out[code], item)
	}
	return out
}

func sortedTypeKeys(m map[string][]*schema.OrderedRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
