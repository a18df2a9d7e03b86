// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cespare/xxhash/v2"
	"github.com/guptarohit/asciigraph"
	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/d2tools/stashsort/internal/diag"
	"github.com/d2tools/stashsort/internal/fileio"
	"github.com/d2tools/stashsort/internal/itemdata"
	"github.com/d2tools/stashsort/internal/layout"
	"github.com/d2tools/stashsort/internal/props"
	"github.com/d2tools/stashsort/internal/schema"
	"github.com/d2tools/stashsort/internal/sortpolicy"
	"github.com/d2tools/stashsort/internal/termlog"
	"github.com/d2tools/stashsort/internal/xerrors"
	"github.com/d2tools/stashsort/stash"
)

func newParseCmd() *cobra.Command {
	var debug, patch, profile bool
	cmd := &cobra.Command{
		Use:   "parse <filename>",
		Short: "Decode a stash file, re-sort its items, and re-encode it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], debug, patch, profile)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "log every item and its position")
	cmd.Flags().BoolVar(&patch, "patch", false, "overwrite the input in place, keeping a timestamped backup")
	cmd.Flags().BoolVar(&profile, "profile", false, "print a per-page fill/item-count report")
	return cmd
}

func runParse(cmd *cobra.Command, path string, debug, patch, profile bool) error {
	log := termlog.New(cmd.OutOrStdout())
	prof := newProfiler()

	data, err := os.ReadFile(path)
	if err != nil {
		return xerrors.IOf("reading %q: %v", path, err)
	}

	rec := diag.NewRecorder()
	ctx := diag.WithRecorder(context.Background(), rec)
	model := stash.NewModel(itemdata.Default(), props.NewDefaultTable())

	done := log.Section("decoding %s (%d bytes, fingerprint %016x)", path, len(data), xxhash.Sum64(data))
	st, err := model.Decode(ctx, data)
	done()
	if err != nil {
		return reportFailure(log, err)
	}

	pages := st.Pages()
	log.Info("%s stash, %d page(s)", st.Variant, len(pages))
	if debug {
		dumpDebug(log, st)
	}

	items := st.Items()
	filters := sortpolicy.BuiltinFilters(nil)
	newPages := layout.Arrange(ctx, items, filters, defaultScript(), model.Items)
	prof.record(newPages, model.Items)
	if err := st.Repack(newPages); err != nil {
		return err
	}
	log.Info("re-laid-out into %d page(s)", len(newPages))

	out, err := model.Encode(ctx, st)
	if err != nil {
		return reportFailure(log, err)
	}

	log.Info("re-encoded fingerprint %016x", xxhash.Sum64(out))

	if patch {
		backup, err := fileio.Patch(path, out, time.Now().Unix())
		if err != nil {
			return err
		}
		log.Info("backed up original to %s, overwrote %s", backup, path)
	}

	reportDiagnostics(log, rec)
	if profile {
		prof.report(cmd.OutOrStdout())
	}
	return nil
}

func reportFailure(log *termlog.Logger, err error) error {
	log.Error("%s", err)
	return err
}

func dumpDebug(log *termlog.Logger, st *stash.Stash) {
	pages := st.Pages()
	for pageNo, page := range pages {
		done := log.Section("page %d/%d", pageNo+1, len(pages))
		raw, _ := page.Get("items")
		containers, _ := raw.([]interface{})
		for itemNo, c := range containers {
			container, ok := c.(*schema.OrderedRecord)
			if !ok {
				continue
			}
			itemVal, _ := container.Get("item")
			item, ok := itemVal.(*schema.OrderedRecord)
			if !ok {
				continue
			}
			x, _ := item.Get("position_x")
			y, _ := item.Get("position_y")
			typ, _ := item.Get("item_type")
			log.Info("item %d: type=%v pos=(%v,%v)", itemNo+1, typ, x, y)
			if info, ok := item.Get("extended_info"); ok {
				log.Info("%# v", pretty.Formatter(info))
			}
		}
		done()
	}
}

func reportDiagnostics(log *termlog.Logger, rec *diag.Recorder) {
	if types := rec.UnknownItemTypes(); len(types) > 0 {
		log.Warn("unknown item types: %v", types)
	}
	if ids := rec.UnknownPropertyIDs(); len(ids) > 0 {
		log.Warn("unknown property ids: %v", ids)
	}
	if fields := rec.CountMismatches(); len(fields) > 0 {
		log.Warn("multiple-field count mismatches: %v", fields)
	}
}

// defaultScript pours the three built-in filters into their own rows,
// leaving everything else to layout.Arrange's automatic trailing
// placement by item-type code.
func defaultScript() sortpolicy.Script {
	return sortpolicy.Script{
		sortpolicy.Page{
			sortpolicy.Row{sortpolicy.FilterPiece("uniques")},
			sortpolicy.Row{sortpolicy.FilterPiece("sets")},
			sortpolicy.Row{sortpolicy.FilterPiece("souls")},
		},
	}
}

// profiler reports how densely the re-laid-out pages pack, not how
// long the run took: a fill histogram (in basis points, 0-10000, one
// sample per page) and a per-page item-count sparkline.
type profiler struct {
	hist            *hdrhistogram.Histogram
	itemsPerPage    []float64
	fillBasisPoints []int64
}

func newProfiler() *profiler {
	return &profiler{hist: hdrhistogram.New(0, 10_000, 3)}
}

// record samples every page's fill ratio (occupied cells / 100, as
// basis points) and item count, looking up each placed item's
// footprint in table.
func (p *profiler) record(pages []layout.Page, table *itemdata.Table) {
	for _, page := range pages {
		occupied := 0
		for _, item := range page.Items {
			v, _ := item.Get("item_type")
			code, _ := v.(string)
			info := table.Lookup(code, nil)
			occupied += info.Width * info.Height
		}
		basisPoints := int64(occupied * 10_000 / (layout.PageWidth * layout.PageHeight))
		_ = p.hist.RecordValue(basisPoints)
		p.fillBasisPoints = append(p.fillBasisPoints, basisPoints)
		p.itemsPerPage = append(p.itemsPerPage, float64(len(page.Items)))
	}
}

func (p *profiler) report(w interface{ Write([]byte) (int, error) }) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"page", "items", "fill %"})
	for i, n := range p.itemsPerPage {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", int(n)),
			fmt.Sprintf("%.1f", float64(p.fillBasisPoints[i])/100),
		})
	}
	table.Render()
	if len(p.itemsPerPage) >= 2 {
		fmt.Fprintln(w, asciigraph.Plot(p.itemsPerPage, asciigraph.Height(8), asciigraph.Caption("items/page")))
	}
	fmt.Fprintf(w, "fill%% p50=%.1f p99=%.1f max=%.1f\n",
		float64(p.hist.ValueAtQuantile(50))/100,
		float64(p.hist.ValueAtQuantile(99))/100,
		float64(p.hist.Max())/100)
}
