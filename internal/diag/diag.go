// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package diag carries per-invocation diagnostics (unknown item types,
// unknown property ids) through a context.Context, replacing the
// original tool's module-level MISSING_ITEM_TYPES / MISSING_PROPERTY_IDS
// globals (Design Note "Global mutable counters"). A Recorder belongs to
// exactly one decode/encode run and is never shared across goroutines or
// invocations.
package diag

import (
	"context"
	"sort"
	"sync"
)

type contextKey struct{}

// Recorder accumulates diagnostics for a single run: unknown item type
// codes, unknown property ids, and Multiple-field count mismatches seen
// on encode, each with an occurrence count.
type Recorder struct {
	mu               sync.Mutex
	unknownItemTypes map[string]int
	unknownPropIDs   map[uint16]int
	countMismatches  map[string]int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		unknownItemTypes: make(map[string]int),
		unknownPropIDs:   make(map[uint16]int),
		countMismatches:  make(map[string]int),
	}
}

// WithRecorder returns a context carrying rec, retrievable with FromContext.
func WithRecorder(ctx context.Context, rec *Recorder) context.Context {
	return context.WithValue(ctx, contextKey{}, rec)
}

// FromContext returns the Recorder attached to ctx, or a fresh one
// (discarded after use) if none was attached -- so callers that don't
// care about diagnostics never need a nil check.
func FromContext(ctx context.Context) *Recorder {
	if rec, ok := ctx.Value(contextKey{}).(*Recorder); ok && rec != nil {
		return rec
	}
	return NewRecorder()
}

// UnknownItemType records that itemType had no entry in the metadata table.
func (r *Recorder) UnknownItemType(itemType string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unknownItemTypes[itemType]++
}

// UnknownPropertyID records that id had no entry in the property table.
func (r *Recorder) UnknownPropertyID(id uint16) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unknownPropIDs[id]++
}

// CountMismatch records that an encode supplied a different number of
// values for a Multiple field than its declared Count evaluated to
// (spec §4.3's tolerant policy: still encode what was supplied, but warn).
func (r *Recorder) CountMismatch(field string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countMismatches[field]++
}

// CountMismatches returns the distinct field names with a count
// mismatch seen, sorted.
func (r *Recorder) CountMismatches() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.countMismatches))
	for k := range r.countMismatches {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// UnknownItemTypes returns the distinct unknown item type codes seen, sorted.
func (r *Recorder) UnknownItemTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.unknownItemTypes))
	for k := range r.unknownItemTypes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// UnknownPropertyIDs returns the distinct unknown property ids seen, sorted.
func (r *Recorder) UnknownPropertyIDs() []uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint16, 0, len(r.unknownPropIDs))
	for k := range r.unknownPropIDs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
