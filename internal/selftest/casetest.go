// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selftest

import (
	"errors"

	"github.com/slukits/xunit"
)

// CaseTest verifies the engine's case, suite and result behavior.  Each
// of its tests gets a fresh result from SetUp.
type CaseTest struct {
	xunit.Base
	result *xunit.Result
}

// NewCaseTest returns a new CaseTest fixture.
func NewCaseTest() *CaseTest { return &CaseTest{} }

// SetUp provides a fresh result.
func (f *CaseTest) SetUp() error {
	f.result = &xunit.Result{}
	return nil
}

// Register registers the engine's self tests in execution order.
func (f *CaseTest) Register(r *xunit.Registry) {
	r.Test("testTemplateMethod", f.testTemplateMethod).
		Test("testResult", f.testResult).
		Test("testFailedResult", f.testFailedResult).
		Test("testFailedResultFormatting", f.testFailedResultFormatting).
		Test("testSuite", f.testSuite).
		Test("testTearDownOnBrokenMethod", f.testTearDownOnBrokenMethod).
		Test("testTearDownOnBrokenTestFailed",
			f.testTearDownOnBrokenTestFailed).
		Test("testTearDownOnBrokenSetUp", f.testTearDownOnBrokenSetUp).
		Test("testSuiteFromTestCase", f.testSuiteFromTestCase).
		Test("testRerunIsRefused", f.testRerunIsRefused)
}

const brokenMethodSummary = "1 run, 1 failed\n" +
	"Errors: WasRun.testBrokenMethod -- Exception"

func (f *CaseTest) testTemplateMethod() error {
	fx := NewWasRun()
	if err := xunit.NewCase(fx, "testMethod").Run(f.result); err != nil {
		return err
	}
	return xunit.Eq(fx.Log, "setUp testMethod tearDown ")
}

func (f *CaseTest) testResult() error {
	if err := xunit.NewCase(NewWasRun(), "testMethod").Run(
		f.result); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), "1 run, 0 failed")
}

func (f *CaseTest) testFailedResult() error {
	if err := xunit.NewCase(NewWasRun(), "testBrokenMethod").Run(
		f.result); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), brokenMethodSummary)
}

func (f *CaseTest) testFailedResultFormatting() error {
	f.result.TestStarted()
	if err := f.result.TestFailed(""); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), "1 run, 1 failed")
}

func (f *CaseTest) testSuite() error {
	suite := (&xunit.Suite{}).
		Add(xunit.NewCase(NewWasRun(), "testMethod")).
		Add(xunit.NewCase(NewWasRun(), "testBrokenMethod"))
	if err := suite.Run(f.result); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), "2 run, 1 failed\n"+
		"Errors: WasRun.testBrokenMethod -- Exception")
}

func (f *CaseTest) testTearDownOnBrokenMethod() error {
	fx := NewWasRun()
	if err := xunit.NewCase(fx, "testBrokenMethod").Run(
		f.result); err != nil {
		return err
	}
	return xunit.Eq(fx.Log, "setUp testBrokenMethod tearDown ")
}

// testTearDownOnBrokenTestFailed expects a failing failure report to be
// returned by a case's run after its fixture was torn down.
func (f *CaseTest) testTearDownOnBrokenTestFailed() error {
	fx := NewWasRun()
	err := xunit.NewCase(fx, "testBrokenMethod").Run(&BrokenResult{})
	if err := xunit.True(err != nil); err != nil {
		return err
	}
	return xunit.Eq(fx.Log, "setUp testBrokenMethod tearDown ")
}

func (f *CaseTest) testTearDownOnBrokenSetUp() error {
	fx := NewWasRunSetUpBroken()
	if err := xunit.NewCase(fx, "testMethod").Run(f.result); err != nil {
		return err
	}
	if err := xunit.Eq(fx.Log, "setUp "); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), "1 run, 1 failed\n"+
		"Errors: WasRunSetUpBroken.setUp -- Exception")
}

func (f *CaseTest) testSuiteFromTestCase() error {
	suite := xunit.FromFixture(NewWasRun)
	if err := xunit.Eq(suite.Len(), 2); err != nil {
		return err
	}
	if err := suite.Run(f.result); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), "2 run, 1 failed\n"+
		"Errors: WasRun.testBrokenMethod -- Exception")
}

func (f *CaseTest) testRerunIsRefused() error {
	c := xunit.NewCase(NewWasRun(), "testMethod")
	if err := c.Run(f.result); err != nil {
		return err
	}
	if err := xunit.True(errors.Is(c.Run(f.result), xunit.ErrRerun)); err != nil {
		return err
	}
	return xunit.Eq(f.result.Summary(), "1 run, 0 failed")
}
