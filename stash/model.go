// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package stash is the top-level schema describing a Diablo II stash
// file: header, page list, item list, extended info, and type-specific
// info (spec §4.5). It composes internal/schema, internal/codec, and
// internal/props over the item-metadata table to read and write the
// full file format.
package stash

import (
	"strconv"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/codec"
	"github.com/d2tools/stashsort/internal/itemdata"
	"github.com/d2tools/stashsort/internal/props"
	"github.com/d2tools/stashsort/internal/schema"
)

// Quality codes for extended_info.quality (spec §4.5).
const (
	QualityLow    = 1
	QualityNormal = 2
	QualityHigh   = 3
	QualityMagic  = 4
	QualitySet    = 5
	QualityRare   = 6
	QualityUnique = 7
	QualityCraft  = 8
)

var (
	pageHeaderBytes = []byte{0x53, 0x54, 0x00, 0x4a, 0x4d}
	itemHeaderBytes = []byte{0x4a, 0x4d}
	personalMagic   = []byte("CSTM01")
	sharedMagic     = []byte{0x53, 0x53, 0x53, 0x00, 0x30, 0x31}

	pageHeaderBits = bitbuf.FromBytes(pageHeaderBytes)
	itemHeaderBits = bitbuf.FromBytes(itemHeaderBytes)
)

// Model is the compiled set of schemas for one item-metadata and
// property-definition table pair. Schemas reference these tables only
// through conditions fixed at build time, so a Model is immutable and
// safe to reuse across many decode/encode calls (spec §5).
type Model struct {
	Items      *itemdata.Table
	Props      *props.Table
	item       *schema.Schema
	container  *schema.Schema
	extended   *schema.Schema
	specific   *schema.Schema
	page       *schema.Schema
	personal   *schema.Schema
	shared     *schema.Schema
}

// NewModel compiles a Model from the given item-metadata and
// property-definition tables.
func NewModel(items *itemdata.Table, propsTable *props.Table) *Model {
	m := &Model{Items: items, Props: propsTable}
	m.build()
	return m
}

func ifQuality(q uint64) schema.Condition {
	return schema.IfFunc(func(scope *schema.Scope) (bool, error) {
		v, ok := scope.Field("quality")
		if !ok {
			return false, nil
		}
		qv, ok := v.(uint64)
		return ok && qv == q, nil
	})
}

// parentItemType reads the item_type field from the schema scope one
// level up (the enclosing item record), empty string if unavailable.
func parentItemType(scope *schema.Scope) string {
	v, ok, err := scope.ParentField("item_type")
	if err != nil || !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (m *Model) ifHasDefense() schema.Condition {
	return schema.IfFunc(func(scope *schema.Scope) (bool, error) {
		return m.Items.Lookup(parentItemType(scope), nil).HasDefense, nil
	})
}

func (m *Model) ifHasDurability() schema.Condition {
	return schema.IfFunc(func(scope *schema.Scope) (bool, error) {
		return m.Items.Lookup(parentItemType(scope), nil).HasDurability, nil
	})
}

func (m *Model) ifStackable() schema.Condition {
	return schema.IfFunc(func(scope *schema.Scope) (bool, error) {
		return m.Items.Lookup(parentItemType(scope), nil).Stackable, nil
	})
}

// gemCount reads item.extended_info.gem_count from the container scope,
// 0 if the item is simple (no extended_info) or gem_count is absent.
func gemCount(scope *schema.Scope) (int, error) {
	v, ok := scope.Field("item")
	if !ok {
		return 0, nil
	}
	itemRec, ok := v.(*schema.OrderedRecord)
	if !ok {
		return 0, nil
	}
	extVal, ok := itemRec.Get("extended_info")
	if !ok {
		return 0, nil
	}
	ext, ok := extVal.(*schema.OrderedRecord)
	if !ok {
		return 0, nil
	}
	gc, ok := ext.Get("gem_count")
	if !ok {
		return 0, nil
	}
	n, ok := gc.(uint64)
	if !ok {
		return 0, nil
	}
	return int(n), nil
}

// setPropCount counts how many of the five has_set_props bits are set,
// reading them from the current (specific_info) scope.
func setPropCount(scope *schema.Scope) (int, error) {
	v, ok := scope.Field("has_set_props")
	if !ok {
		return 0, nil
	}
	bits, ok := v.([]interface{})
	if !ok {
		return 0, nil
	}
	n := 0
	for _, b := range bits {
		if bv, ok := b.(uint64); ok && bv != 0 {
			n++
		}
	}
	return n, nil
}

func (m *Model) build() {
	propCodec := props.Codec{Defs: m.Props}

	rarePrefixSuffix := func(i int) []schema.Field {
		hasPrefix := "has_prefix_" + itoa(i)
		hasSuffix := "has_suffix_" + itoa(i)
		return []schema.Field{
			{Name: hasPrefix, Type: codec.Integer{Width: 1}},
			{Name: "prefix_" + itoa(i), Type: codec.Integer{Width: 11}, Condition: schema.IfField(hasPrefix)},
			{Name: hasSuffix, Type: codec.Integer{Width: 1}},
			{Name: "suffix_" + itoa(i), Type: codec.Integer{Width: 11}, Condition: schema.IfField(hasSuffix)},
		}
	}

	extendedFields := []schema.Field{
		{Name: "gem_count", Type: codec.Integer{Width: 3}},
		{Name: "guid", Type: codec.Raw{Width: 32}},
		{Name: "drop_level", Type: codec.Integer{Width: 7}},
		{Name: "quality", Type: codec.Integer{Width: 4}},
		{Name: "has_gfx", Type: codec.Integer{Width: 1}},
		{Name: "gfx", Type: codec.Integer{Width: 3}, Condition: schema.IfField("has_gfx")},
		{Name: "has_class_info", Type: codec.Integer{Width: 1}},
		{Name: "class_info", Type: codec.Integer{Width: 11}, Condition: schema.IfField("has_class_info")},
		{Name: "low_quality_type", Type: codec.Integer{Width: 3}, Condition: ifQuality(QualityLow)},
		{Name: "high_quality_type", Type: codec.Integer{Width: 3}, Condition: ifQuality(QualityHigh)},
		{Name: "magic_prefix", Type: codec.Integer{Width: 11}, Condition: ifQuality(QualityMagic)},
		{Name: "magic_suffix", Type: codec.Integer{Width: 11}, Condition: ifQuality(QualityMagic)},
		{Name: "set_id", Type: codec.Integer{Width: 12}, Condition: ifQuality(QualitySet)},
		{Name: "rare_name1", Type: codec.Integer{Width: 8}, Condition: ifQuality(QualityRare)},
		{Name: "rare_name2", Type: codec.Integer{Width: 8}, Condition: ifQuality(QualityRare)},
	}
	for i := 1; i <= 3; i++ {
		rare := rarePrefixSuffix(i)
		for fi := range rare {
			rare[fi].Condition = ifQuality(QualityRare)
		}
		extendedFields = append(extendedFields, rare...)
	}
	extendedFields = append(extendedFields,
		schema.Field{Name: "unique_id", Type: codec.Integer{Width: 12}, Condition: ifQuality(QualityUnique)},
		schema.Field{Name: "runeword_id", Type: codec.Integer{Width: 16}, Condition: schema.IfParentField("has_runeword")},
		schema.Field{Name: "inscription", Type: codec.NullTerminatedChars{CharSize: 7}, Condition: schema.IfParentField("inscribed")},
	)
	m.extended = schema.New(extendedFields...)

	m.specific = schema.New(
		schema.Field{Name: "defense", Type: codec.Integer{Width: 11}, Condition: m.ifHasDefense()},
		schema.Field{Name: "max_durability", Type: codec.Integer{Width: 9}, Condition: m.ifHasDurability()},
		schema.Field{Name: "current_durability", Type: codec.Integer{Width: 9}, Condition: schema.IfField("max_durability")},
		schema.Field{Name: "num_sockets", Type: codec.Integer{Width: 4}, Condition: schema.IfParentField("socketed")},
		schema.Field{Name: "quantity", Type: codec.Integer{Width: 9}, Condition: m.ifStackable()},
		schema.Field{Name: "has_set_props", Type: codec.Integer{Width: 1}, Condition: ifQualityParent(QualitySet), Multiple: schema.Fixed(5)},
		schema.Field{Name: "set_properties", Type: propCodec, Condition: ifQualityParent(QualitySet), Multiple: schema.CountFunc(setPropCount)},
		schema.Field{Name: "properties", Type: propCodec},
	)

	m.item = schema.New(
		schema.Field{Name: "header", Type: codec.Chars{Count: 2}},
		schema.Field{Name: "_unk1", Type: 4},
		schema.Field{Name: "identified", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "_unk2", Type: 6},
		schema.Field{Name: "socketed", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "_unk3", Type: 9},
		schema.Field{Name: "simple", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "ethereal", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "_unk4", Type: 1},
		schema.Field{Name: "inscribed", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "_unk5", Type: 1},
		schema.Field{Name: "has_runeword", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "_unk6", Type: 22},
		schema.Field{Name: "position_x", Type: codec.Integer{Width: 4}},
		schema.Field{Name: "position_y", Type: codec.Integer{Width: 4}},
		schema.Field{Name: "_unk7", Type: 3},
		schema.Field{Name: "item_type", Type: codec.Chars{Count: 4}},
		schema.Field{Name: "extended_info", Type: m.extended, Condition: schema.IfNotField("simple")},
		schema.Field{Name: "has_random_pad", Type: codec.Integer{Width: 1}},
		schema.Field{Name: "random_pad", Type: codec.Raw{Width: 96}, Condition: schema.IfField("has_random_pad")},
		schema.Field{Name: "specific_info", Type: m.specific, Condition: schema.IfNotField("simple")},
		schema.Field{Name: "tail", Type: codec.Until{Patterns: []bitbuf.Bits{pageHeaderBits, itemHeaderBits}}},
	)

	m.container = schema.New()
	m.container.Fields = []schema.Field{
		{Name: "item", Type: m.item},
		{Name: "gems", Type: m.container, Multiple: schema.CountFunc(gemCount)},
	}

	m.page = schema.New(
		schema.Field{Name: "header", Type: codec.Raw{Width: 40}},
		schema.Field{Name: "item_count", Type: codec.Integer{Width: 16}},
		schema.Field{Name: "items", Type: m.container, Multiple: schema.FromField("item_count")},
	)

	m.personal = schema.New(
		schema.Field{Name: "header", Type: codec.Raw{Width: 48}},
		schema.Field{Name: "_unk1", Type: 32},
		schema.Field{Name: "page_count", Type: codec.Integer{Width: 32}},
		schema.Field{Name: "pages", Type: m.page, Multiple: schema.FromField("page_count")},
	)

	m.shared = schema.New(
		schema.Field{Name: "header", Type: codec.Raw{Width: 48}},
		schema.Field{Name: "page_count", Type: codec.Integer{Width: 32}},
		schema.Field{Name: "pages", Type: m.page, Multiple: schema.FromField("page_count")},
	)
}

// ifQualityParent mirrors ifQuality but reads extended_info.quality from
// the enclosing (item) scope, for fields in specific_info -- a sibling
// of extended_info, not a child of it -- that still need to know the
// item's quality.
func ifQualityParent(q uint64) schema.Condition {
	return schema.IfFunc(func(scope *schema.Scope) (bool, error) {
		if scope.Parent == nil {
			return false, nil
		}
		extVal, ok := scope.Parent.Field("extended_info")
		if !ok {
			return false, nil
		}
		ext, ok := extVal.(*schema.OrderedRecord)
		if !ok {
			return false, nil
		}
		qv, ok := ext.Get("quality")
		if !ok {
			return false, nil
		}
		q2, ok := qv.(uint64)
		return ok && q2 == q, nil
	})
}

func itoa(i int) string { return strconv.Itoa(i) }
