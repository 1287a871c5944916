// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivanshim/lexmigrate/lexeme"
)

// A FileResult is the outcome for one source file.
type FileResult struct {
	Name    string
	Changed bool
	Err     error
}

// A ModuleReport summarizes the migration of one module.
type ModuleReport struct {
	Name    string
	Missing bool // the module directory does not exist
	Augment lexeme.Result
	Files   []FileResult // in file name order
	Err     error        // the module's files could not be listed

	Examined, Changed, Failed int
}

func (m *ModuleReport) add(fr FileResult) {
	m.Files = append(m.Files, fr)
	m.Examined++
	switch {
	case fr.Err != nil:
		m.Failed++
	case fr.Changed:
		m.Changed++
	}
}

// A Report summarizes a migration run.
type Report struct {
	Modules []ModuleReport

	Examined, Changed, Failed int
}

func (r *Report) add(m ModuleReport) {
	r.Modules = append(r.Modules, m)
	r.Examined += m.Examined
	r.Changed += m.Changed
	r.Failed += m.Failed
}

const rule = "============================================================"

// A printer writes the progress lines of a run.
type printer struct {
	w       io.Writer
	ok      lipgloss.Style
	fail    lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	verbose bool
}

func newPrinter(w io.Writer, verbose bool) *printer {
	// Styles are bound to w so that output to a file or pipe is plain text.
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		ok:      r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		verbose: verbose,
	}
}

func (p *printer) banner(text string) {
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", p.muted.Render(rule), p.title.Render(text), p.muted.Render(rule))
}

func (p *printer) module(name string) {
	p.banner("Processing " + name + "...")
}

func (p *printer) augmented(m *ModuleReport, dispatcher string) {
	switch m.Augment.Status {
	case lexeme.Applied:
		fmt.Fprintf(p.w, "Updated dispatcher: %s\n", dispatcher)
	case lexeme.Failed:
		fmt.Fprintf(p.w, "%s %s: %v\n", p.fail.Render("✗"), dispatcher, m.Augment.Err)
	case lexeme.Skipped:
		if p.verbose {
			fmt.Fprintf(p.w, "%s\n", p.muted.Render("Dispatcher "+dispatcher+" skipped: "+m.Augment.Reason))
		}
	}
}

func (p *printer) file(fr FileResult) {
	switch {
	case fr.Err != nil:
		fmt.Fprintf(p.w, "%s %s: %v\n", p.fail.Render("✗"), fr.Name, fr.Err)
	case fr.Changed:
		fmt.Fprintf(p.w, "%s %s\n", p.ok.Render("✓"), fr.Name)
	}
}

func (p *printer) summary(r *Report) {
	text := fmt.Sprintf("Complete! Changed %d/%d files", r.Changed, r.Examined)
	if r.Failed > 0 {
		text += fmt.Sprintf(" (%d failed)", r.Failed)
	}
	p.banner(text)
}

// Summary returns the one-line summary of r.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Changed %d/%d files", r.Changed, r.Examined)
	if r.Failed > 0 {
		fmt.Fprintf(&b, ", %d failed", r.Failed)
	}
	return b.String()
}
