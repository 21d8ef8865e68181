// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package selftest provides fixtures exercising the xunit engine with
// itself.
//
// WasRun and WasRunSetUpBroken log their lifecycle steps to their Log
// property which then can be evaluated after a case ran.  BrokenResult
// is a reporter failing to take failure reports.  CaseTest finally is
// the fixture whose tests verify the engine's behavior leveraging the
// former fixtures.
package selftest

import (
	"errors"

	"github.com/slukits/xunit"
	"golang.org/x/exp/slices"
)

// WasRun logs its setup, its tests and its tear down.
type WasRun struct {
	xunit.Base
	Log string
}

// NewWasRun returns a new WasRun fixture.
func NewWasRun() *WasRun { return &WasRun{} }

// SetUp starts the log with "setUp ".
func (f *WasRun) SetUp() error {
	f.Log = "setUp "
	return nil
}

// Register registers testMethod and testBrokenMethod.
func (f *WasRun) Register(r *xunit.Registry) {
	r.Test("testMethod", f.testMethod).
		Test("testBrokenMethod", f.testBrokenMethod)
}

func (f *WasRun) testMethod() error {
	f.Log += "testMethod "
	return nil
}

// testBrokenMethod fails with a plain error, i.e. an Exception.
func (f *WasRun) testBrokenMethod() error {
	f.Log += "testBrokenMethod "
	return errors.New("broken method")
}

// TearDown appends "tearDown " to the log.
func (f *WasRun) TearDown() error {
	f.Log += "tearDown "
	return nil
}

// WasRunSetUpBroken fails in its setup after it started its log.  Its
// tests are the ones of WasRun.
type WasRunSetUpBroken struct {
	WasRun
}

// NewWasRunSetUpBroken returns a new WasRunSetUpBroken fixture.
func NewWasRunSetUpBroken() *WasRunSetUpBroken {
	return &WasRunSetUpBroken{}
}

// SetUp starts the log with "setUp " and fails.
func (f *WasRunSetUpBroken) SetUp() error {
	f.Log = "setUp "
	return errors.New("broken setup")
}

// BrokenResult fails every failure report.
type BrokenResult struct {
	xunit.Result
}

// TestFailed reports an Exception instead of recording the failure.
func (r *BrokenResult) TestFailed(string) error {
	return xunit.Fail(xunit.Exception, "broken result")
}

// Suites maps the names of the fixtures which may be run as a whole to
// their suite factories.
var Suites = map[string]func() *xunit.Suite{
	"CaseTest": func() *xunit.Suite { return xunit.FromFixture(NewCaseTest) },
	"WasRun":   func() *xunit.Suite { return xunit.FromFixture(NewWasRun) },
}

// SuiteNames returns the keys of Suites in lexical order.
func SuiteNames() []string {
	nn := make([]string, 0, len(Suites))
	for n := range Suites {
		nn = append(nn, n)
	}
	slices.Sort(nn)
	return nn
}
