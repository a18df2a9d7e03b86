// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package xerrors defines the error taxonomy used across the codec: a
// small set of sentinel markers built on github.com/cockroachdb/errors,
// so callers can test the category of a failure with errors.Is while
// still getting a wrapped, annotated message for humans.
package xerrors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel markers for the taxonomy in spec §7. Each constructor below
// wraps a fmt.Errorf-style message with errors.Mark against the
// matching sentinel, so `errors.Is(err, xerrors.Truncated)` works
// regardless of how many times the error was subsequently wrapped.
var (
	Truncated           = errors.New("truncated")
	Alignment           = errors.New("alignment")
	Overflow            = errors.New("overflow")
	MissingField        = errors.New("missing field")
	UnresolvedReference = errors.New("unresolved reference")
	UnknownPropertyID   = errors.New("unknown property id")
	UnknownItemType     = errors.New("unknown item type")
	Boundary            = errors.New("boundary")
	IO                  = errors.New("io")
)

func mark(sentinel error, format string, args ...interface{}) error {
	return errors.Mark(fmt.Errorf(format, args...), sentinel)
}

// Truncatedf reports a decode that ran past the end of the buffer.
func Truncatedf(format string, args ...interface{}) error {
	return mark(Truncated, format, args...)
}

// Alignmentf reports an encode result whose bit count isn't a multiple of 8.
func Alignmentf(format string, args ...interface{}) error {
	return mark(Alignment, format, args...)
}

// Overflowf reports a value that doesn't fit in its declared width.
func Overflowf(format string, args ...interface{}) error {
	return mark(Overflow, format, args...)
}

// MissingFieldf reports an encode that needed an absent required field.
func MissingFieldf(format string, args ...interface{}) error {
	return mark(MissingField, format, args...)
}

// UnresolvedReferencef reports a condition/multiplicity naming an unknown field.
func UnresolvedReferencef(format string, args ...interface{}) error {
	return mark(UnresolvedReference, format, args...)
}

// Boundaryf reports an out-of-range index or slice into a Bits value.
func Boundaryf(format string, args ...interface{}) error {
	return mark(Boundary, format, args...)
}

// IOf reports a failure reading or writing a file.
func IOf(format string, args ...interface{}) error {
	return mark(IO, format, args...)
}

// Fatal reports whether err belongs to one of the three taxonomy entries
// that abort CLI processing (spec §7): Truncated, Overflow, or IO.
func Fatal(err error) bool {
	return errors.Is(err, Truncated) || errors.Is(err, Overflow) || errors.Is(err, IO)
}
