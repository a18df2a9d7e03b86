// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package sortpolicy declares the filters and page/row/piece skeleton
// that the layout engine (package layout) pours items through (spec
// §4.8). A policy is data: a list of named filters tried in order, and a
// Script describing how the claimed (and unclaimed) items are placed.
package sortpolicy

import (
	"sort"

	"github.com/d2tools/stashsort/internal/schema"
)

// Filter claims a subset of items and orders them. The first Filter in a
// Policy whose Match returns true for an item claims it; ties among
// claimed items are broken by Less, keeping the claim stable otherwise.
type Filter struct {
	Name  string
	Match func(item *schema.OrderedRecord) bool
	Less  func(a, b *schema.OrderedRecord) bool
}

// Apply partitions items into per-filter buckets (in filters order,
// each internally sorted by its Less) plus the items no filter claimed,
// in their original relative order.
func Apply(items []*schema.OrderedRecord, filters []Filter) (claimed map[string][]*schema.OrderedRecord, rest []*schema.OrderedRecord) {
	claimed = make(map[string][]*schema.OrderedRecord, len(filters))
	taken := make([]bool, len(items))
	for _, f := range filters {
		var bucket []*schema.OrderedRecord
		for i, item := range items {
			if taken[i] {
				continue
			}
			if f.Match(item) {
				taken[i] = true
				bucket = append(bucket, item)
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool { return f.Less(bucket[i], bucket[j]) })
		claimed[f.Name] = bucket
	}
	for i, item := range items {
		if !taken[i] {
			rest = append(rest, item)
		}
	}
	return claimed, rest
}

// itemType reads the item_type field of an item record, empty if absent
// or not a string.
func itemType(item *schema.OrderedRecord) string {
	v, ok := item.Get("item_type")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// quality reads extended_info.quality, 0 and false if item is a simple
// item with no extended_info or the field is missing.
func quality(item *schema.OrderedRecord) (uint64, bool) {
	v, ok := item.Get("extended_info")
	if !ok {
		return 0, false
	}
	ext, ok := v.(*schema.OrderedRecord)
	if !ok {
		return 0, false
	}
	q, ok := ext.Get("quality")
	if !ok {
		return 0, false
	}
	qv, ok := q.(uint64)
	return qv, ok
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Quality codes observed in extended_info.quality (spec §4.5).
const (
	QualityUnique = 7
	QualitySet    = 5
)

// Souls is the built-in filter for rune/soul-stone style item types,
// identified by an all-digit type code, sorted by that code as a string
// (numeric order only when the codes have equal length).
func Souls() Filter {
	return Filter{
		Name: "souls",
		Match: func(item *schema.OrderedRecord) bool {
			return isAllDigits(itemType(item))
		},
		Less: func(a, b *schema.OrderedRecord) bool {
			return itemType(a) < itemType(b)
		},
	}
}

// Sets is the built-in filter for quality=5 (set) items, sorted by type
// code.
func Sets() Filter {
	return Filter{
		Name: "sets",
		Match: func(item *schema.OrderedRecord) bool {
			q, ok := quality(item)
			return ok && q == QualitySet
		},
		Less: func(a, b *schema.OrderedRecord) bool {
			return itemType(a) < itemType(b)
		},
	}
}

// Uniques is the built-in filter for quality=7 (unique) items that are
// neither souls nor in excludeTypes, sorted by type code.
func Uniques(excludeTypes map[string]bool) Filter {
	return Filter{
		Name: "uniques",
		Match: func(item *schema.OrderedRecord) bool {
			q, ok := quality(item)
			if !ok || q != QualityUnique {
				return false
			}
			t := itemType(item)
			if isAllDigits(t) {
				return false
			}
			if excludeTypes != nil && excludeTypes[t] {
				return false
			}
			return true
		},
		Less: func(a, b *schema.OrderedRecord) bool {
			return itemType(a) < itemType(b)
		},
	}
}

// BuiltinFilters returns the standard uniques/sets/souls filters in the
// claim order spec §4.8 describes them in.
func BuiltinFilters(excludeTypes map[string]bool) []Filter {
	return []Filter{Uniques(excludeTypes), Sets(), Souls()}
}

// ByTypeCode is a catch-all filter that claims any item, sorted
// alphabetically by item-type code. A script that wants an explicit
// sort-by-type-code bucket (rather than relying on Arrange's trailing
// placement of leftover items) puts this filter last.
func ByTypeCode() Filter {
	return Filter{
		Name:  "type-code",
		Match: func(item *schema.OrderedRecord) bool { return true },
		Less: func(a, b *schema.OrderedRecord) bool {
			return itemType(a) < itemType(b)
		},
	}
}

// ByQuality is a catch-all filter that claims any item, sorted by
// extended_info.quality descending so rarer items sort first; items with
// no quality field (simple items, gold, and the like) sort last.
func ByQuality() Filter {
	return Filter{
		Name:  "quality",
		Match: func(item *schema.OrderedRecord) bool { return true },
		Less: func(a, b *schema.OrderedRecord) bool {
			qa, okA := quality(a)
			qb, okB := quality(b)
			if okA != okB {
				return okA
			}
			return qa > qb
		},
	}
}

// RowPiece is one element of a Script row: either a concrete item-type
// code (Type non-empty) or a reference to a named Filter's claimed
// bucket (Filter non-empty). Exactly one should be set.
type RowPiece struct {
	Type   string
	Filter string
}

// Piece builds a RowPiece for a concrete item-type code.
func Piece(typeCode string) RowPiece { return RowPiece{Type: typeCode} }

// FilterPiece builds a RowPiece referencing a named filter's bucket.
func FilterPiece(name string) RowPiece { return RowPiece{Filter: name} }

// Row is an ordered list of pieces placed left to right (wrapping as
// needed) before the layout engine advances to the next row.
type Row []RowPiece

// Page is an ordered list of rows, each ending in a forced row advance;
// the layout engine advances to a new page after the last row.
type Page []Row

// Script is the full page/row/piece skeleton (spec §4.7 Phase 2).
type Script []Page
