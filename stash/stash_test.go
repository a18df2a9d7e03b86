// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package stash

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/itemdata"
	"github.com/d2tools/stashsort/internal/layout"
	"github.com/d2tools/stashsort/internal/props"
	"github.com/d2tools/stashsort/internal/schema"
)

// requireBytesEqual reports a hex-dump unified diff on mismatch instead of
// testify's truncated byte-slice dump, which is unreadable past a few bytes.
func requireBytesEqual(t *testing.T, want, got []byte, msg string) {
	t.Helper()
	if bytes.Equal(want, got) {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(hexDump(want)),
		B:        difflib.SplitLines(hexDump(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Fatalf("%s:\n%s", msg, text)
}

func hexDump(b []byte) string {
	var sb strings.Builder
	for i := 0; i < len(b); i += 16 {
		end := i + 16
		if end > len(b) {
			end = len(b)
		}
		fmt.Fprintf(&sb, "%04x  % x\n", i, b[i:end])
	}
	return sb.String()
}

func testModel(t *testing.T) *Model {
	t.Helper()
	table, err := itemdata.NewTable(strings.NewReader(
		"id,name,width,height,has_defense,has_durability,stackable\n" +
			"jav,Javelin,1,4,0,1,0\n"))
	require.NoError(t, err)
	return NewModel(table, props.NewDefaultTable())
}

func TestDecodeEncodeRoundTripEmptyPersonalStash(t *testing.T) {
	data := append(append([]byte("CSTM01"), 0, 0, 0, 0), 0, 0, 0, 0) // header + _unk1 + page_count=0

	model := testModel(t)
	st, err := model.Decode(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, Personal, st.Variant)
	require.Empty(t, st.Pages())

	out, err := model.Encode(context.Background(), st)
	require.NoError(t, err)
	requireBytesEqual(t, data, out, "empty personal stash round trip")
}

func TestDecodeEncodeRoundTripEmptySharedStash(t *testing.T) {
	data := append([]byte{0x53, 0x53, 0x53, 0x00, 0x30, 0x31}, 0, 0, 0, 0) // header + page_count=0

	model := testModel(t)
	st, err := model.Decode(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, Shared, st.Variant)
	require.Empty(t, st.Pages())

	out, err := model.Encode(context.Background(), st)
	require.NoError(t, err)
	requireBytesEqual(t, data, out, "empty shared stash round trip")
}

func TestDecodeEncodeRoundTripOnePageNoItems(t *testing.T) {
	data := append(append([]byte("CSTM01"), 0, 0, 0, 0), 1, 0, 0, 0) // page_count=1
	data = append(data, pageHeaderBytes...)
	data = append(data, 0, 0) // item_count=0

	model := testModel(t)
	st, err := model.Decode(context.Background(), data)
	require.NoError(t, err)
	require.Len(t, st.Pages(), 1)
	require.Empty(t, st.Items())

	out, err := model.Encode(context.Background(), st)
	require.NoError(t, err)
	requireBytesEqual(t, data, out, "one-page empty-item stash round trip")
}

func TestItemTypeCode(t *testing.T) {
	item := schema.NewRecord()
	item.Set("item_type", "hlm")
	require.Equal(t, "hlm", ItemTypeCode(item))
	require.Equal(t, "", ItemTypeCode(schema.NewRecord()))
}

func TestGemCount(t *testing.T) {
	container := schema.NewRecord()
	container.Set("gems", []interface{}{schema.NewRecord(), schema.NewRecord()})
	require.Equal(t, 2, GemCount(container))
	require.Equal(t, 0, GemCount(schema.NewRecord()))
}

func buildContainer(itemType string) *schema.OrderedRecord {
	item := schema.NewRecord()
	item.Set("item_type", itemType)
	container := schema.NewRecord()
	container.Set("item", item)
	container.Set("gems", []interface{}{})
	return container
}

func TestItemsAndRepack(t *testing.T) {
	c1 := buildContainer("jav")
	c2 := buildContainer("hlm")
	page := schema.NewRecord()
	page.Set("header", pageHeaderBits)
	page.Set("item_count", uint64(2))
	page.Set("items", []interface{}{c1, c2})

	st := &Stash{
		Variant: Personal,
		Record:  schema.NewRecord(),
	}
	st.Record.Set("page_count", uint64(1))
	st.Record.Set("pages", []interface{}{page})

	items := st.Items()
	require.Len(t, items, 2)
	require.Equal(t, "jav", ItemTypeCode(items[0]))
	require.Equal(t, "hlm", ItemTypeCode(items[1]))

	newPages := []layout.Page{{Items: []*schema.OrderedRecord{items[1], items[0]}}}
	require.NoError(t, st.Repack(newPages))

	pages := st.Pages()
	require.Len(t, pages, 1)
	repacked := st.Items()
	require.Len(t, repacked, 2)
	require.Equal(t, "hlm", ItemTypeCode(repacked[0]))
	require.Equal(t, "jav", ItemTypeCode(repacked[1]))
}

func zeroBits(n int) bitbuf.Bits { return make(bitbuf.Bits, n) }

// TestItemSchemaRoundTripUniqueWithSocketsDurabilityAndProperties exercises
// the actual item/extended_info/specific_info schemas built by
// Model.build for a non-simple item: a unique, socketed, stacked-durability
// item carrying a real property list. This is the item schema spec §4.5
// names as the hard part of the format, and it was previously only tested
// through bare OrderedRecords bypassing the schema entirely.
func TestItemSchemaRoundTripUniqueWithSocketsDurabilityAndProperties(t *testing.T) {
	items, err := itemdata.NewTable(strings.NewReader(
		"id,name,width,height,has_defense,has_durability,stackable\n" +
			"cap ,Cap,2,2,1,1,0\n"))
	require.NoError(t, err)
	propsTable := props.NewTable([]props.Definition{
		{ID: 3, FieldWidth: []int{8, 9}},
	})
	model := NewModel(items, propsTable)

	extended := schema.NewRecord()
	extended.Set("gem_count", uint64(0))
	extended.Set("guid", zeroBits(32))
	extended.Set("drop_level", uint64(50))
	extended.Set("quality", uint64(QualityUnique))
	extended.Set("has_gfx", uint64(0))
	extended.Set("has_class_info", uint64(0))
	extended.Set("unique_id", uint64(42))

	specific := schema.NewRecord()
	specific.Set("defense", uint64(15))
	specific.Set("max_durability", uint64(40))
	specific.Set("current_durability", uint64(35))
	specific.Set("num_sockets", uint64(3))
	specific.Set("properties", props.List{
		Terminated: true,
		Properties: []props.Property{{
			Definition: props.Definition{ID: 3, FieldWidth: []int{8, 9}},
			Values:     []int64{27, 256},
		}},
	})

	item := schema.NewRecord()
	item.Set("header", "JM")
	item.Set("_unk1", zeroBits(4))
	item.Set("identified", uint64(1))
	item.Set("_unk2", zeroBits(6))
	item.Set("socketed", uint64(1))
	item.Set("_unk3", zeroBits(9))
	item.Set("simple", uint64(0))
	item.Set("ethereal", uint64(0))
	item.Set("_unk4", zeroBits(1))
	item.Set("inscribed", uint64(0))
	item.Set("_unk5", zeroBits(1))
	item.Set("has_runeword", uint64(0))
	item.Set("_unk6", zeroBits(22))
	item.Set("position_x", uint64(3))
	item.Set("position_y", uint64(2))
	item.Set("_unk7", zeroBits(3))
	item.Set("item_type", "cap ")
	item.Set("extended_info", extended)
	item.Set("has_random_pad", uint64(0))
	item.Set("specific_info", specific)
	item.Set("tail", bitbuf.Bits{})

	ctx := context.Background()
	encoded, err := model.item.Encode(ctx, item)
	require.NoError(t, err)

	decoded, err := model.item.Decode(ctx, encoded)
	require.NoError(t, err)
	require.Equal(t, "cap ", decoded.MustGet("item_type"))
	require.EqualValues(t, 1, decoded.MustGet("identified"))
	require.EqualValues(t, 1, decoded.MustGet("socketed"))

	extRec, ok := decoded.Get("extended_info")
	require.True(t, ok)
	ext := extRec.(*schema.OrderedRecord)
	require.EqualValues(t, QualityUnique, ext.MustGet("quality"))
	require.EqualValues(t, 42, ext.MustGet("unique_id"))
	_, hasMagicPrefix := ext.Get("magic_prefix")
	require.False(t, hasMagicPrefix)

	specRec, ok := decoded.Get("specific_info")
	require.True(t, ok)
	spec := specRec.(*schema.OrderedRecord)
	require.EqualValues(t, 15, spec.MustGet("defense"))
	require.EqualValues(t, 40, spec.MustGet("max_durability"))
	require.EqualValues(t, 35, spec.MustGet("current_durability"))
	require.EqualValues(t, 3, spec.MustGet("num_sockets"))

	propsVal, ok := spec.Get("properties")
	require.True(t, ok)
	list := propsVal.(props.List)
	require.True(t, list.Terminated)
	require.Len(t, list.Properties, 1)
	require.EqualValues(t, 3, list.Properties[0].Definition.ID)
	require.Equal(t, []int64{27, 256}, list.Properties[0].Values)

	reEncoded, err := model.item.Encode(ctx, decoded)
	require.NoError(t, err)
	require.Equal(t, encoded, reEncoded)
}
