// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package migrate runs the lexeme migration over the source trees of a
// set of front-end modules: it declares each module's multi-character
// lexemes in its dispatcher, rewrites every source file with the
// module's rule catalog, and writes back (or diffs) what changed.
package migrate

import (
	"context"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ivanshim/lexmigrate/catalog"
	"github.com/ivanshim/lexmigrate/lexeme"
	"github.com/ivanshim/lexmigrate/refactor"
)

// A Driver migrates the modules found under a root directory.
type Driver struct {
	Root    string   // directory holding the src_<module> trees
	Ext     string   // source file extension, usually ".rs"
	Exclude []string // directory names skipped during enumeration
	Diff    bool     // print unified diffs instead of writing files
	Jobs    int      // files loaded and rewritten in parallel; <= 1 is sequential
	Verbose bool     // also report skipped dispatchers

	Stdout io.Writer
	Logger *log.Logger
}

// Run migrates the given modules in order. Modules whose directory does
// not exist are reported as Missing. Failures on individual files are
// reported and counted without stopping the run; Run returns an error
// only if the root cannot be opened or ctx is done.
func (d *Driver) Run(ctx context.Context, specs []lexeme.ModuleSpec) (*Report, error) {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	stdout := d.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	r, err := refactor.New(d.Root)
	if err != nil {
		return nil, err
	}
	p := newPrinter(stdout, d.Verbose)

	report := new(Report)
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		m, err := d.module(ctx, r, spec, p, logger)
		if err != nil {
			return report, err
		}
		report.add(m)
	}
	p.summary(report)
	logger.Debug("run complete", "examined", report.Examined, "changed", report.Changed, "failed", report.Failed)
	return report, nil
}

func (d *Driver) module(ctx context.Context, r *refactor.Refactor, spec lexeme.ModuleSpec, p *printer, logger *log.Logger) (ModuleReport, error) {
	m := ModuleReport{Name: spec.Name}
	if !r.IsDir(spec.Dir()) {
		logger.Debug("module not found", "module", spec.Name, "dir", spec.Dir())
		m.Missing = true
		return m, nil
	}
	p.module(spec.Name)

	s := r.Snapshot()
	m.Augment = augment(s, spec)

	names, err := r.Files(spec.Dir(), d.Ext, d.Exclude)
	if err != nil {
		logger.Error("listing files", "module", spec.Name, "err", err)
		m.Err = err
		p.augmented(&m, spec.Dispatcher())
		return m, nil
	}

	// Load and rewrite. Each goroutine fills only its own slot.
	cat := catalog.ForModule(spec)
	results := make([]FileResult, len(names))
	index := make(map[string]int, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(d.Jobs, 1))
	for i, name := range names {
		index[name] = i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = FileResult{Name: name}
			f, err := s.Load(name)
			if err != nil {
				return nil
			}
			f.SetText(cat.Apply(f.Text()))
			results[i].Changed = f.Changed()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return m, err
	}

	if !d.Diff {
		// Failures are collected in s.Errors.
		_ = s.Write()
	}
	for _, e := range s.Errors.Errors() {
		if i, ok := index[e.Path]; ok {
			results[i].Changed = false
			results[i].Err = e.Err
		}
		if e.Path == spec.Dispatcher() && m.Augment.Status != lexeme.Skipped {
			m.Augment = lexeme.Result{Status: lexeme.Failed, Err: e.Err}
		}
	}
	if err := s.Errors.Err(); err != nil {
		logger.Error("files failed", "module", spec.Name, "count", s.Errors.Len(), "err", err)
	}

	// A dispatcher that is also a listed source file reports its
	// failure on its own file line.
	switch {
	case m.Augment.Status == lexeme.Failed && slices.Contains(names, spec.Dispatcher()):
	case m.Augment.Status == lexeme.Applied && d.Diff:
	default:
		p.augmented(&m, spec.Dispatcher())
	}
	for _, fr := range results {
		p.file(fr)
		m.add(fr)
	}
	if d.Diff {
		if err := s.Diff(p.w); err != nil {
			return m, err
		}
	}
	return m, nil
}

// augment declares spec's lexemes in its dispatcher. The rewritten text
// stays in s, so the dispatcher is written once with the rest of the
// module's files. A module without a dispatcher file is left alone.
// Read failures are recorded in s.Errors.
func augment(s *refactor.Snapshot, spec lexeme.ModuleSpec) lexeme.Result {
	if len(spec.Lexemes) == 0 {
		return lexeme.Result{Status: lexeme.Skipped, Reason: lexeme.ReasonNoLexemes}
	}
	if !s.Refactor().Exists(spec.Dispatcher()) {
		return lexeme.Result{Status: lexeme.Skipped, Reason: lexeme.ReasonNoDispatcher}
	}
	f, err := s.Load(spec.Dispatcher())
	if err != nil {
		return lexeme.Result{Status: lexeme.Failed, Err: err}
	}
	text, res := lexeme.Augment(f.Text(), spec)
	if res.Status == lexeme.Applied {
		f.SetText(text)
	}
	return res
}
