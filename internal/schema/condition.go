// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package schema

import "github.com/d2tools/stashsort/internal/xerrors"

func errNoParentScope(name string) error {
	return xerrors.UnresolvedReferencef("field %q references parent scope, but there is none", name)
}

// Condition decides whether a field is present for a given scope. It
// replaces the "predicate closures over record state" of the original
// tool (Design Note) with a small closed set of named shapes, so a
// schema stays introspectable and serializable in principle even though
// this codec builds it directly in Go.
type Condition interface {
	Eval(scope *Scope) (bool, error)
}

// conditionFunc adapts a plain function to Condition, for the cases that
// need a genuine predicate over several fields (e.g. "quality == 7 and
// not in the soul set") rather than a bare field/parent-field name.
type conditionFunc func(scope *Scope) (bool, error)

func (f conditionFunc) Eval(scope *Scope) (bool, error) { return f(scope) }

// IfFunc builds a Condition from an arbitrary predicate over the current
// scope.
func IfFunc(f func(scope *Scope) (bool, error)) Condition {
	return conditionFunc(f)
}

type alwaysCondition struct{}

func (alwaysCondition) Eval(*Scope) (bool, error) { return true, nil }

// Always is the absent condition: the field is present unconditionally.
var Always Condition = alwaysCondition{}

type fieldCondition struct{ name string }

func (c fieldCondition) Eval(scope *Scope) (bool, error) {
	v, ok := scope.Field(c.name)
	if !ok {
		return false, nil
	}
	return truthy(v), nil
}

// IfField is present iff the current scope binds name to a truthy value.
func IfField(name string) Condition { return fieldCondition{name} }

type parentFieldCondition struct{ name string }

func (c parentFieldCondition) Eval(scope *Scope) (bool, error) {
	v, ok, err := scope.ParentField(c.name)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return truthy(v), nil
}

// IfParentField looks in the immediately enclosing scope (the "../name"
// notation of spec §4.3); it is an error if there is no enclosing scope.
func IfParentField(name string) Condition { return parentFieldCondition{name} }

// IfNotField is present iff name is bound and falsy, or absent.
func IfNotField(name string) Condition {
	return IfFunc(func(scope *Scope) (bool, error) {
		v, ok := scope.Field(name)
		if !ok {
			return true, nil
		}
		return !truthy(v), nil
	})
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
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

// Count decides how many repetitions a multiple field has.
type Count interface {
	Eval(scope *Scope) (int, error)
}

type countFunc func(scope *Scope) (int, error)

func (f countFunc) Eval(scope *Scope) (int, error) { return f(scope) }

// CountFunc builds a Count from an arbitrary function of the current scope.
func CountFunc(f func(scope *Scope) (int, error)) Count { return countFunc(f) }

type fixedCount int

func (c fixedCount) Eval(*Scope) (int, error) { return int(c), nil }

// Fixed is a multiplicity that never varies.
func Fixed(n int) Count { return fixedCount(n) }

type fieldCount struct{ name string }

func (c fieldCount) Eval(scope *Scope) (int, error) {
	v, ok := scope.Field(c.name)
	if !ok {
		return 0, xerrors.UnresolvedReferencef("multiplicity references unknown field %q", c.name)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, xerrors.UnresolvedReferencef("field %q is not a count: %v", c.name, v)
	}
	return n, nil
}

// FromField reads the repetition count from a sibling field in the
// current scope.
func FromField(name string) Count { return fieldCount{name} }

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case uint64:
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}
}
