// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package schema

// OrderedRecord is a decoded record: an ordered mapping from field name
// to decoded value. Keys reports names in the sequence they were bound;
// Encode does not use that order, it walks the schema's field list in
// declaration order (spec §4.3's encode algorithm).
type OrderedRecord struct {
	keys   []string
	values map[string]interface{}
}

// UnparsedField is the reserved key holding trailing bits a schema did
// not consume, so Encode can append them verbatim (spec §3).
const UnparsedField = "__unparsed"

// NewRecord returns an empty OrderedRecord.
func NewRecord() *OrderedRecord {
	return &OrderedRecord{values: make(map[string]interface{})}
}

// Set binds name to value, appending name to the key order the first
// time it is set.
func (r *OrderedRecord) Set(name string, value interface{}) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

// Get returns the value bound to name, if any.
func (r *OrderedRecord) Get(name string) (interface{}, bool) {
	v, ok := r.values[name]
	return v, ok
}

// MustGet returns the value bound to name, or nil if absent.
func (r *OrderedRecord) MustGet(name string) interface{} {
	return r.values[name]
}

// Keys returns the field names in binding order.
func (r *OrderedRecord) Keys() []string {
	return r.keys
}

// Truthy reports whether name is bound to a value Go/Python-style
// conditions would treat as true: present, non-nil, and not a numeric
// zero / empty string / false.
func (r *OrderedRecord) Truthy(name string) bool {
	v, ok := r.values[name]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case uint64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// Scope is an explicit, stack-shaped binding of the record currently
// being decoded/encoded plus a link to the enclosing schema's scope, so
// that a field's condition or multiplicity can look either at its
// siblings (same scope) or its ancestor's siblings (Parent.Record) --
// never at hidden global state (Design Note "Parent-scope lookup").
type Scope struct {
	Record *OrderedRecord
	Parent *Scope
}

// Field looks up name in s.Record.
func (s *Scope) Field(name string) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	return s.Record.Get(name)
}

// ParentField looks up name in s.Parent.Record, failing if there is no
// enclosing scope.
func (s *Scope) ParentField(name string) (interface{}, bool, error) {
	if s == nil || s.Parent == nil {
		return nil, false, errNoParentScope(name)
	}
	v, ok := s.Parent.Record.Get(name)
	return v, ok, nil
}
