// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package schema composes the primitive codecs of package codec into
// ordered field lists with per-field conditions, repetition counts, and
// scoped parent references, and drives both decode and encode from the
// single field-list definition (spec §4.3).
package schema

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/d2tools/stashsort/internal/bitbuf"
	"github.com/d2tools/stashsort/internal/codec"
	"github.com/d2tools/stashsort/internal/diag"
	"github.com/d2tools/stashsort/internal/xerrors"
)

// ContextCodec is a codec whose decode/encode needs more than the bits
// in front of it -- the property-list codec, for instance, needs the
// property-definition table and a diagnostics recorder. Fields typed
// with a ContextCodec receive the context.Context passed to the
// enclosing Schema.Decode/Encode call.
type ContextCodec interface {
	Decode(bits bitbuf.Bits, ctx context.Context) (value interface{}, consumed int, err error)
	Encode(value interface{}, ctx context.Context) (bitbuf.Bits, error)
}

// FieldType is either an int (a run of opaque bits, equivalent to
// codec.Raw), a codec.Codec, or a *Schema (a nested record).
type FieldType interface{}

// Field is a named schema entry with an optional condition and
// multiplicity.
type Field struct {
	Name      string
	Type      FieldType
	Condition Condition // nil means Always
	Multiple  Count     // nil means scalar
}

// Schema is an ordered list of fields, decoded/encoded left to right.
type Schema struct {
	Fields []Field
}

// New builds a Schema from fields.
func New(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

func resolveType(t FieldType) (codecOrSchema interface{}) {
	switch v := t.(type) {
	case int:
		return codec.Raw{Width: v}
	default:
		return v
	}
}

func (f Field) condition() Condition {
	if f.Condition == nil {
		return Always
	}
	return f.Condition
}

// decodeFields fills scope.Record from bits, starting at position 0,
// and returns how many bits it consumed. It is the schema-engine
// equivalent of the original tool's BinarySchema.from_bits: unlike
// Decode, it never claims a trailing __unparsed residue, since a nested
// schema is expected to consume exactly what its own fields describe.
func (s *Schema) decodeFields(ctx context.Context, bits bitbuf.Bits, scope *Scope) (int, error) {
	position := 0
	for _, field := range s.Fields {
		present, err := field.condition().Eval(scope)
		if err != nil {
			return 0, errAt(field.Name, err)
		}
		if !present {
			continue
		}
		ft := resolveType(field.Type)
		if field.Multiple != nil {
			count, err := field.Multiple.Eval(scope)
			if err != nil {
				return 0, errAt(field.Name, err)
			}
			values := make([]interface{}, 0, count)
			for i := 0; i < count; i++ {
				if position > len(bits) {
					return 0, xerrors.Truncatedf("field %q[%d]: end of data", field.Name, i)
				}
				value, consumed, err := decodeOne(ctx, ft, bits[position:], scope)
				if err != nil {
					return 0, errAt(field.Name, err)
				}
				position += consumed
				values = append(values, value)
			}
			scope.Record.Set(field.Name, values)
		} else {
			if position > len(bits) {
				return 0, xerrors.Truncatedf("field %q: end of data", field.Name)
			}
			value, consumed, err := decodeOne(ctx, ft, bits[position:], scope)
			if err != nil {
				return 0, errAt(field.Name, err)
			}
			position += consumed
			scope.Record.Set(field.Name, value)
		}
	}
	return position, nil
}

func decodeOne(ctx context.Context, ft interface{}, bits bitbuf.Bits, parent *Scope) (interface{}, int, error) {
	switch t := ft.(type) {
	case ContextCodec:
		return t.Decode(bits, ctx)
	case codec.Codec:
		return t.Decode(bits)
	case *Schema:
		child := &Scope{Record: NewRecord(), Parent: parent}
		consumed, err := t.decodeFields(ctx, bits, child)
		if err != nil {
			return nil, 0, err
		}
		return child.Record, consumed, nil
	default:
		return nil, 0, xerrors.UnresolvedReferencef("field type %T is neither a codec nor a schema", ft)
	}
}

// Decode parses bits as a top-level instance of s: it runs decodeFields
// with a fresh, parentless scope and then moves any bits decodeFields
// did not consume into the UnparsedField key, so Encode can reproduce
// them verbatim (spec §3, §4.3). ctx carries the run's diag.Recorder
// through to any ContextCodec field (e.g. the property-list codec).
func (s *Schema) Decode(ctx context.Context, bits bitbuf.Bits) (*OrderedRecord, error) {
	scope := &Scope{Record: NewRecord()}
	position, err := s.decodeFields(ctx, bits, scope)
	if err != nil {
		return nil, err
	}
	if position < len(bits) {
		scope.Record.Set(UnparsedField, bits[position:].Clone())
	}
	return scope.Record, nil
}

// encodeFields concatenates the bits produced by encoding each present
// field of rec, in declaration order, against the given scope.
func (s *Schema) encodeFields(ctx context.Context, scope *Scope) (bitbuf.Bits, error) {
	var out bitbuf.Bits
	for _, field := range s.Fields {
		present, err := field.condition().Eval(scope)
		if err != nil {
			return nil, errAt(field.Name, err)
		}
		if !present {
			continue
		}
		ft := resolveType(field.Type)
		if field.Multiple != nil {
			count, err := field.Multiple.Eval(scope)
			if err != nil {
				return nil, errAt(field.Name, err)
			}
			raw, ok := scope.Record.Get(field.Name)
			if !ok {
				return nil, xerrors.MissingFieldf("encode: missing required field %q", field.Name)
			}
			values, ok := raw.([]interface{})
			if !ok {
				return nil, xerrors.MissingFieldf("encode: field %q is not a list: %T", field.Name, raw)
			}
			if len(values) != count {
				// Tolerant policy (spec §4.3): still encode exactly what
				// was supplied, but warn so the mismatch isn't silent.
				diag.FromContext(ctx).CountMismatch(field.Name)
			}
			for _, value := range values {
				bits, err := encodeOne(ctx, ft, value, scope)
				if err != nil {
					return nil, errAt(field.Name, err)
				}
				out = append(out, bits...)
			}
		} else {
			value, ok := scope.Record.Get(field.Name)
			if !ok {
				return nil, xerrors.MissingFieldf("encode: missing required field %q", field.Name)
			}
			bits, err := encodeOne(ctx, ft, value, scope)
			if err != nil {
				return nil, errAt(field.Name, err)
			}
			out = append(out, bits...)
		}
	}
	return out, nil
}

func encodeOne(ctx context.Context, ft interface{}, value interface{}, parent *Scope) (bitbuf.Bits, error) {
	switch t := ft.(type) {
	case ContextCodec:
		return t.Encode(value, ctx)
	case codec.Codec:
		return t.Encode(value)
	case *Schema:
		rec, ok := value.(*OrderedRecord)
		if !ok {
			return nil, xerrors.MissingFieldf("nested schema value is not a record: %T", value)
		}
		child := &Scope{Record: rec, Parent: parent}
		return t.encodeFields(ctx, child)
	default:
		return nil, xerrors.UnresolvedReferencef("field type %T is neither a codec nor a schema", ft)
	}
}

// Encode re-derives the bits rec was decoded from, appending any
// UnparsedField residue (spec §3, §4.3's round-trip contract).
func (s *Schema) Encode(ctx context.Context, rec *OrderedRecord) (bitbuf.Bits, error) {
	scope := &Scope{Record: rec}
	out, err := s.encodeFields(ctx, scope)
	if err != nil {
		return nil, err
	}
	if tail, ok := rec.Get(UnparsedField); ok {
		bits, ok := tail.(bitbuf.Bits)
		if !ok {
			return nil, xerrors.MissingFieldf("%s is not a bit run: %T", UnparsedField, tail)
		}
		out = append(out, bits...)
	}
	return out, nil
}

// errAt annotates err with the field that was being decoded/encoded when
// it occurred, preserving whatever taxonomy marker (xerrors.Truncated,
// xerrors.Overflow, ...) it already carries so errors.Is keeps working
// through nested schemas.
func errAt(field string, err error) error {
	return errors.Wrapf(err, "field %q", field)
}
