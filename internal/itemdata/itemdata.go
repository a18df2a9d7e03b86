// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package itemdata loads the static item-type metadata table (spec §4.6):
// a lookup from a 4-character item-type code to its display name, grid
// footprint, and capability flags. The table itself is out-of-scope game
// data, not codec logic -- this package only owns loading it once and
// serving lookups.
package itemdata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"

	"github.com/d2tools/stashsort/internal/diag"
)

//go:embed data/items.csv
var itemsCSV []byte

// Info is what the table knows about one item type: its display name and
// its footprint in the 10x10 grid (Width, Height in [1, 10]).
type Info struct {
	Code          string
	Name          string
	Width         int
	Height        int
	HasDefense    bool
	HasDurability bool
	Stackable     bool
}

// unknown returns the placeholder Info substituted for a code the table
// has never heard of (spec §4.6): a default footprint 2 wide and 4 high,
// and a name that makes the gap visually obvious in --debug dumps.
func unknown(code string) Info {
	return Info{Code: code, Name: "??????????", Width: 2, Height: 4}
}

// Table is a read-only item-type lookup, safe for concurrent use once
// built (spec §5: static tables are initialized before any decode call
// and are read-only thereafter).
type Table struct {
	byCode *swiss.Map[string, Info]
}

// NewTable parses a CSV reader in "id,name,width,height,has_defense,
// has_durability,stackable" form into a Table.
func NewTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "itemdata: parsing item table")
	}
	if len(records) == 0 {
		return &Table{byCode: swiss.New[string, Info](0)}, nil
	}
	m := swiss.New[string, Info](len(records) - 1)
	for _, row := range records[1:] {
		if len(row) < 7 {
			return nil, errors.Newf("itemdata: short row %v", row)
		}
		width, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, errors.Wrapf(err, "itemdata: width for %q", row[0])
		}
		height, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, errors.Wrapf(err, "itemdata: height for %q", row[0])
		}
		info := Info{
			Code:          row[0],
			Name:          row[1],
			Width:         width,
			Height:        height,
			HasDefense:    row[4] == "1",
			HasDurability: row[5] == "1",
			Stackable:     row[6] == "1",
		}
		m.Put(info.Code, info)
	}
	return &Table{byCode: m}, nil
}

// Default returns the Table built from the module's embedded CSV,
// loaded once at package init (spec §5).
func Default() *Table {
	return defaultTable
}

var defaultTable = mustLoadDefault()

func mustLoadDefault() *Table {
	t, err := NewTable(bytes.NewReader(itemsCSV))
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the Info for code, substituting the unknown placeholder
// and recording the miss on rec if code is not in the table.
func (t *Table) Lookup(code string, rec *diag.Recorder) Info {
	if info, ok := t.byCode.Get(code); ok {
		return info
	}
	if rec != nil {
		rec.UnknownItemType(code)
	}
	return unknown(code)
}
