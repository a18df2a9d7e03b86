// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package stash

import (
	"bytes"
	"context"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/layout"
	"github.com/d2tools/stashsort/internal/schema"
	"github.com/d2tools/stashsort/internal/xerrors"
)

// Variant distinguishes the two stash header shapes (spec §4.5).
type Variant int

const (
	Personal Variant = iota
	Shared
)

func (v Variant) String() string {
	if v == Shared {
		return "shared"
	}
	return "personal"
}

// Stash is a fully decoded stash file: which header variant it used and
// the top-level record produced by that variant's schema.
type Stash struct {
	Variant Variant
	Record  *schema.OrderedRecord
}

// Decode discriminates the header (spec §4.5: shared stash's magic is
// checked first, personal otherwise) and decodes data with the matching
// schema.
func (m *Model) Decode(ctx context.Context, data []byte) (*Stash, error) {
	bits := bitbuf.FromBytes(data)
	variant := Personal
	s := m.personal
	if bytes.HasPrefix(data, sharedMagic) {
		variant = Shared
		s = m.shared
	}
	rec, err := s.Decode(ctx, bits)
	if err != nil {
		return nil, err
	}
	return &Stash{Variant: variant, Record: rec}, nil
}

// Encode re-derives the exact byte stream Decode would have consumed to
// produce st (spec §3's round-trip invariant), honoring whatever edits
// were made to st.Record in between -- notably a replaced page list.
func (m *Model) Encode(ctx context.Context, st *Stash) ([]byte, error) {
	s := m.personal
	if st.Variant == Shared {
		s = m.shared
	}
	bits, err := s.Encode(ctx, st.Record)
	if err != nil {
		return nil, err
	}
	return bitbuf.ToBytes(bits)
}

// Pages returns the stash's page records in file order.
func (st *Stash) Pages() []*schema.OrderedRecord {
	v, ok := st.Record.Get("pages")
	if !ok {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]*schema.OrderedRecord, 0, len(raw))
	for _, p := range raw {
		if rec, ok := p.(*schema.OrderedRecord); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Items returns every top-level item record (container.item) across
// every page, in file order. Gems are not included: they travel with
// their parent item and are never independently placed.
func (st *Stash) Items() []*schema.OrderedRecord {
	var items []*schema.OrderedRecord
	for _, page := range st.Pages() {
		raw, ok := page.Get("items")
		if !ok {
			continue
		}
		containers, ok := raw.([]interface{})
		if !ok {
			continue
		}
		for _, c := range containers {
			container, ok := c.(*schema.OrderedRecord)
			if !ok {
				continue
			}
			itemVal, ok := container.Get("item")
			if !ok {
				continue
			}
			if item, ok := itemVal.(*schema.OrderedRecord); ok {
				items = append(items, item)
			}
		}
	}
	return items
}

// GemCount returns how many gem sub-items container holds.
func GemCount(container *schema.OrderedRecord) int {
	v, ok := container.Get("gems")
	if !ok {
		return 0
	}
	gems, ok := v.([]interface{})
	if !ok {
		return 0
	}
	return len(gems)
}

// Repack replaces st's page list with newly laid-out pages (spec §4.7),
// rewriting each page's header, item_count, and item containers, and
// the stash's own page_count. Gem sub-items travel with their parent
// item's container unchanged -- the layout engine only repositions
// top-level items.
func (st *Stash) Repack(pages []layout.Page) error {
	containerByItem := make(map[*schema.OrderedRecord]*schema.OrderedRecord)
	for _, page := range st.Pages() {
		raw, ok := page.Get("items")
		if !ok {
			continue
		}
		containers, ok := raw.([]interface{})
		if !ok {
			continue
		}
		for _, c := range containers {
			container, ok := c.(*schema.OrderedRecord)
			if !ok {
				continue
			}
			itemVal, ok := container.Get("item")
			if !ok {
				continue
			}
			if item, ok := itemVal.(*schema.OrderedRecord); ok {
				containerByItem[item] = container
			}
		}
	}

	newPages := make([]interface{}, 0, len(pages))
	for _, p := range pages {
		pageRec := schema.NewRecord()
		pageRec.Set("header", bitbuf.FromBytes(pageHeaderBytes))
		pageRec.Set("item_count", uint64(len(p.Items)))
		containers := make([]interface{}, 0, len(p.Items))
		for _, item := range p.Items {
			container, ok := containerByItem[item]
			if !ok {
				return xerrors.MissingFieldf("repack: no container found for placed item")
			}
			containers = append(containers, container)
		}
		pageRec.Set("items", containers)
		newPages = append(newPages, pageRec)
	}
	st.Record.Set("page_count", uint64(len(newPages)))
	st.Record.Set("pages", newPages)
	return nil
}

// ItemTypeCode returns the item_type field of item, empty if missing.
func ItemTypeCode(item *schema.OrderedRecord) string {
	v, ok := item.Get("item_type")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
