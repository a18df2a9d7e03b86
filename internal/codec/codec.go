// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package codec implements the atomic parse/emit primitives the schema
// engine composes: fixed-width unsigned integers, raw opaque bit runs,
// fixed-count and NUL-terminated character strings, and "read until a
// pattern" scans. Every primitive satisfies the Codec interface, so the
// schema engine (package schema) never needs to know which one it is
// driving.
package codec

import (
	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/xerrors"
)

// Codec is an atomic parse/emit unit. Decode consumes a prefix of bits
// and returns the decoded value plus how many bits it consumed; Encode
// is its inverse, returning the exact bits Decode would have consumed to
// produce an equal value.
type Codec interface {
	Decode(bits bitbuf.Bits) (value interface{}, consumed int, err error)
	Encode(value interface{}) (bitbuf.Bits, error)
}

// Integer decodes/encodes an unsigned integer stored in Width
// consecutive LSB-first bits.
type Integer struct {
	Width int
}

func (c Integer) Decode(bits bitbuf.Bits) (interface{}, int, error) {
	if len(bits) < c.Width {
		return nil, 0, xerrors.Truncatedf("integer(%d): only %d bits available", c.Width, len(bits))
	}
	return bitbuf.BitsToInt(bits[:c.Width]), c.Width, nil
}

func (c Integer) Encode(value interface{}) (bitbuf.Bits, error) {
	v, ok := toUint64(value)
	if !ok {
		return nil, xerrors.Overflowf("integer(%d): value %v is not an unsigned integer", c.Width, value)
	}
	if c.Width < 64 && v >= uint64(1)<<uint(c.Width) {
		return nil, xerrors.Overflowf("integer(%d): value %d does not fit in %d bits", c.Width, v, c.Width)
	}
	return bitbuf.IntToBits(v, c.Width), nil
}

func toUint64(value interface{}) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// Raw is a pass-through codec for "unknown but must be preserved" bit
// runs: decode returns the literal bits, encode writes them back
// unchanged.
type Raw struct {
	Width int
}

func (c Raw) Decode(bits bitbuf.Bits) (interface{}, int, error) {
	if len(bits) < c.Width {
		return nil, 0, xerrors.Truncatedf("raw(%d): only %d bits available", c.Width, len(bits))
	}
	return bits[:c.Width].Clone(), c.Width, nil
}

func (c Raw) Encode(value interface{}) (bitbuf.Bits, error) {
	bits, ok := value.(bitbuf.Bits)
	if !ok {
		return nil, xerrors.MissingFieldf("raw(%d): value is not a bit run: %T", c.Width, value)
	}
	if len(bits) != c.Width {
		return nil, xerrors.Alignmentf("raw(%d): value has %d bits", c.Width, len(bits))
	}
	return bits.Clone(), nil
}

// Chars decodes/encodes Count sub-fields, each a little-endian unsigned
// CharSize-bit char code. Non-zero codes concatenate into an ASCII
// string; zero codes are padding. CharSize defaults to 8 when zero.
type Chars struct {
	Count    int
	CharSize int
}

func (c Chars) charSize() int {
	if c.CharSize == 0 {
		return 8
	}
	return c.CharSize
}

func (c Chars) Decode(bits bitbuf.Bits) (interface{}, int, error) {
	size := c.charSize()
	need := c.Count * size
	if len(bits) < need {
		return nil, 0, xerrors.Truncatedf("chars(%d): only %d bits available, need %d", c.Count, len(bits), need)
	}
	out := make([]byte, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		code := bitbuf.BitsToInt(bits[i*size : (i+1)*size])
		if code != 0 {
			out = append(out, byte(code))
		}
	}
	return string(out), need, nil
}

func (c Chars) Encode(value interface{}) (bitbuf.Bits, error) {
	s, ok := value.(string)
	if !ok {
		return nil, xerrors.MissingFieldf("chars(%d): value is not a string: %T", c.Count, value)
	}
	if len(s) > c.Count {
		return nil, xerrors.Overflowf("chars(%d): string %q is longer than field", c.Count, s)
	}
	size := c.charSize()
	out := make(bitbuf.Bits, 0, c.Count*size)
	for i := 0; i < c.Count; i++ {
		var code uint64
		if i < len(s) {
			code = uint64(s[i])
		}
		out = append(out, bitbuf.IntToBits(code, size)...)
	}
	return out, nil
}

// NullTerminatedChars reads CharSize-bit chars until an all-zero char is
// seen, returning the string before the terminator and consuming the
// terminator. Encode emits the chars followed by one zero char.
type NullTerminatedChars struct {
	CharSize int
}

func (c NullTerminatedChars) charSize() int {
	if c.CharSize == 0 {
		return 8
	}
	return c.CharSize
}

func (c NullTerminatedChars) Decode(bits bitbuf.Bits) (interface{}, int, error) {
	size := c.charSize()
	var out []byte
	pos := 0
	for {
		if pos+size > len(bits) {
			return nil, 0, xerrors.Truncatedf("null-terminated chars: no terminator within %d bits", len(bits))
		}
		code := bitbuf.BitsToInt(bits[pos : pos+size])
		pos += size
		if code == 0 {
			return string(out), pos, nil
		}
		out = append(out, byte(code))
	}
}

func (c NullTerminatedChars) Encode(value interface{}) (bitbuf.Bits, error) {
	s, ok := value.(string)
	if !ok {
		return nil, xerrors.MissingFieldf("null-terminated chars: value is not a string: %T", value)
	}
	size := c.charSize()
	out := make(bitbuf.Bits, 0, (len(s)+1)*size)
	for i := 0; i < len(s); i++ {
		out = append(out, bitbuf.IntToBits(uint64(s[i]), size)...)
	}
	out = append(out, bitbuf.IntToBits(0, size)...)
	return out, nil
}

// Until reads bits until one of Patterns would begin at the cursor, or
// until end of buffer, returning the bits skipped. Encode writes the
// stored bits back verbatim: Until never interprets what it skips, so
// there is nothing to re-derive.
type Until struct {
	Patterns []bitbuf.Bits
}

func (c Until) Decode(bits bitbuf.Bits) (interface{}, int, error) {
	if len(c.Patterns) == 0 {
		return nil, 0, xerrors.UnresolvedReferencef("until: no patterns configured")
	}
	minIndex := len(bits)
	for _, p := range c.Patterns {
		if len(p) == 0 {
			return nil, 0, xerrors.UnresolvedReferencef("until: zero-length pattern is invalid")
		}
		if idx := bits.Find(p, 0); idx >= 0 && idx < minIndex {
			minIndex = idx
		}
	}
	return bits[:minIndex].Clone(), minIndex, nil
}

func (c Until) Encode(value interface{}) (bitbuf.Bits, error) {
	bits, ok := value.(bitbuf.Bits)
	if !ok {
		return nil, xerrors.MissingFieldf("until: value is not a bit run: %T", value)
	}
	return bits.Clone(), nil
}
