// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ui renders suite runs on a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/slukits/xunit"
)

// PrintSummary writes given result's summary followed by a new line to
// given writer.  The summary's first line is green if no test failed
// and red otherwise, its error line is yellow.  With color.NoColor set
// the written summary is the plain result summary.
func PrintSummary(w io.Writer, r *xunit.Result) {
	lines := strings.SplitN(r.Summary(), "\n", 2)
	counts := color.New(color.FgGreen)
	if r.Failed() > 0 {
		counts = color.New(color.FgRed)
	}
	counts.Fprint(w, lines[0])
	if len(lines) > 1 {
		fmt.Fprint(w, "\n")
		color.New(color.FgYellow).Fprint(w, lines[1])
	}
	fmt.Fprint(w, "\n")
}

// Progress is a xunit.Reporter decorator rendering a progress bar of a
// suite run while it forwards all reports to the decorated reporter.
type Progress struct {
	reporter        xunit.Reporter
	bar             *progressbar.ProgressBar
	started, failed int
}

// NewProgress decorates given reporter with a progress bar of given
// number of cases rendered to given writer.
func NewProgress(r xunit.Reporter, count int, w io.Writer) *Progress {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(label(0, 0)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Progress{reporter: r, bar: bar}
}

func label(passed, failed int) string {
	return color.CyanString("Running cases: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// TestStarted advances the progress bar and forwards the report.
func (p *Progress) TestStarted() {
	p.started++
	p.reporter.TestStarted()
	p.update()
}

// TestFailed updates the failure count and forwards the report.
func (p *Progress) TestFailed(description string) error {
	p.failed++
	p.update()
	return p.reporter.TestFailed(description)
}

// update renders the completed cases, i.e. all started cases but the
// running one.  A started case counts as passed until it reports a
// failure.
func (p *Progress) update() {
	p.bar.Describe(label(p.started-p.failed, p.failed))
	_ = p.bar.Set(p.started - 1)
}

// Finish completes the progress bar, i.e. the last started case.
func (p *Progress) Finish() {
	_ = p.bar.Finish()
}

// Started returns the number of forwarded start reports.
func (p *Progress) Started() int { return p.started }

// Failed returns the number of forwarded failure reports.
func (p *Progress) Failed() int { return p.failed }
