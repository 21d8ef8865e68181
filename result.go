// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Reporter is informed by a running [Case] about its progress.  A case
// calls TestStarted exactly once before anything else and TestFailed
// at most once.  An error returned by TestFailed is not handled by a
// case but returned by its Run method after its fixture was torn down.
type Reporter interface {
	TestStarted()
	TestFailed(description string) error
}

// Result aggregates the outcome of case runs.  The zero value is ready
// to use; a Result mustn't be copied after its first use.
type Result struct {
	run, failed int
	failures    []string
}

// TestStarted counts a started test.
func (r *Result) TestStarted() { r.run++ }

// TestFailed counts a failed test and records given description iff it
// is not empty.  It never returns an error.
func (r *Result) TestFailed(description string) error {
	r.failed++
	if description != "" {
		r.failures = append(r.failures, description)
	}
	return nil
}

// Run returns the number of started tests.
func (r *Result) Run() int { return r.run }

// Failed returns the number of failed tests.
func (r *Result) Failed() int { return r.failed }

// Failures returns a copy of the recorded failure descriptions in the
// order they were reported.
func (r *Result) Failures() []string { return slices.Clone(r.failures) }

// Summary renders
//
//	<run> run, <failed> failed
//
// which is followed by a second line
//
//	Errors: <description1>,<description2>,...
//
// iff at least one failure description was recorded.  Note a failure
// reported without description is counted but not listed.
func (r *Result) Summary() string {
	summary := fmt.Sprintf("%d run, %d failed", r.run, r.failed)
	if len(r.failures) == 0 {
		return summary
	}
	return summary + "\nErrors: " + strings.Join(r.failures, ",")
}
