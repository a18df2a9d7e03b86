// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package props implements the variable-length property-list codec
// (spec §4.4): a sequence of (definition, values) entries, each a 9-bit
// id followed by its declared fields, terminated by the 9-bit sentinel
// 0x1FF unless an unknown id is encountered first.
package props

import (
	"context"
	"fmt"

	"github.com/cockroachdb/swiss"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/codec"
	"github.com/d2tools/stashsort/internal/diag"
	"github.com/d2tools/stashsort/internal/xerrors"
)

// ListTerminator is the 9-bit sentinel ending a terminated property list.
const ListTerminator = 0x1ff

const idWidth = 9

// Definition describes one property id's wire shape: the width in bits
// of each value field, a human-readable format string (for tooling, not
// consulted by the codec itself), and optional per-field offsets that
// bias the stored unsigned value into the field's logical (possibly
// negative) range.
type Definition struct {
	ID         uint16
	FieldWidth []int
	Format     string
	Offsets    []int64
}

// Property is one decoded entry: a definition plus its logical
// (offset-adjusted) values, in field order.
type Property struct {
	Definition Definition
	Values     []int64
}

// List is an ordered property list plus whether it ended with the
// terminator sentinel (spec §3: a property list, if parsed at all, ends
// with the terminator unless an unknown id was encountered).
type List struct {
	Properties []Property
	Terminated bool
}

// Table is a read-only lookup from property id to Definition, keyed over
// a swiss-table map for hot-path lookups during item decode (every
// non-trivial item has at least one property list).
type Table struct {
	byID *swiss.Map[uint16, Definition]
}

// NewTable builds a Table from defs. Later entries with a duplicate id
// overwrite earlier ones, matching a plain map literal's semantics.
func NewTable(defs []Definition) *Table {
	m := swiss.New[uint16, Definition](len(defs))
	for _, d := range defs {
		m.Put(d.ID, d)
	}
	return &Table{byID: m}
}

// Lookup returns the Definition for id, if known.
func (t *Table) Lookup(id uint16) (Definition, bool) {
	return t.byID.Get(id)
}

// Decode reads a property list from bits using defs to resolve ids. An
// id the table doesn't know about is not an error: the codec rewinds
// past the id, marks the list unterminated, and stops, leaving the
// remaining bits for the caller (typically an Until tail field) to
// preserve verbatim -- this is what keeps the round-trip lossless
// without requiring full knowledge of every property id the game might
// emit (spec §4.4 rationale).
func Decode(bits bitbuf.Bits, defs *Table, rec *diag.Recorder) (List, int, error) {
	position := 0
	var list List
	idCodec := codec.Integer{Width: idWidth}
	for {
		raw, consumed, err := idCodec.Decode(bits[position:])
		if err != nil {
			return List{}, 0, err
		}
		id := uint16(raw.(uint64))
		if id == ListTerminator {
			list.Terminated = true
			position += consumed
			return list, position, nil
		}
		def, ok := defs.Lookup(id)
		if !ok {
			if rec != nil {
				rec.UnknownPropertyID(id)
			}
			list.Terminated = false
			return list, position, nil
		}
		position += consumed
		values := make([]int64, len(def.FieldWidth))
		for i, w := range def.FieldWidth {
			fv, fconsumed, err := codec.Integer{Width: w}.Decode(bits[position:])
			if err != nil {
				return List{}, 0, fmt.Errorf("property %d field %d: %w", id, i, err)
			}
			position += fconsumed
			value := int64(fv.(uint64))
			if i < len(def.Offsets) {
				value -= def.Offsets[i]
			}
			values[i] = value
		}
		list.Properties = append(list.Properties, Property{Definition: def, Values: values})
	}
}

// Encode writes list back to bits: each property's id, then its values
// re-biased by the definition's offsets, then the terminator if the list
// was terminated.
func Encode(list List) (bitbuf.Bits, error) {
	idCodec := codec.Integer{Width: idWidth}
	var out bitbuf.Bits
	for _, p := range list.Properties {
		idBits, err := idCodec.Encode(uint64(p.Definition.ID))
		if err != nil {
			return nil, err
		}
		out = append(out, idBits...)
		for i, v := range p.Values {
			stored := v
			if i < len(p.Definition.Offsets) {
				stored += p.Definition.Offsets[i]
			}
			fieldBits, err := (codec.Integer{Width: p.Definition.FieldWidth[i]}).Encode(uint64(stored))
			if err != nil {
				return nil, fmt.Errorf("property %d field %d: %w", p.Definition.ID, i, err)
			}
			out = append(out, fieldBits...)
		}
	}
	if list.Terminated {
		termBits, err := idCodec.Encode(uint64(ListTerminator))
		if err != nil {
			return nil, err
		}
		out = append(out, termBits...)
	}
	return out, nil
}

// Codec adapts Decode/Encode to schema.ContextCodec (satisfied
// structurally -- this package never imports package schema), so a
// property list can be used directly as a schema field type. Decode
// records unknown ids on the diag.Recorder attached to ctx, if any.
type Codec struct {
	Defs *Table
}

// Decode implements schema.ContextCodec.
func (c Codec) Decode(bits bitbuf.Bits, ctx context.Context) (interface{}, int, error) {
	return Decode(bits, c.Defs, diag.FromContext(ctx))
}

// Encode implements schema.ContextCodec.
func (c Codec) Encode(value interface{}, ctx context.Context) (bitbuf.Bits, error) {
	list, ok := value.(List)
	if !ok {
		return nil, xerrors.MissingFieldf("property list codec: value is not a List: %T", value)
	}
	return Encode(list)
}
