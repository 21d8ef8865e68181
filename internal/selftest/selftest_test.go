// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selftest_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/slukits/xunit"
	"github.com/slukits/xunit/internal/selftest"
)

func TestCaseTest(t *testing.T) {
	xunit.RunT(t, xunit.FromFixture(selftest.NewCaseTest))
}

func Test_the_case_test_suite_passes_completely(t *testing.T) {
	r := &xunit.Result{}
	if err := selftest.Suites["CaseTest"]().Run(r); err != nil {
		t.Fatalf("expected no error; got: %v", err)
	}
	if got := r.Summary(); got != "10 run, 0 failed" {
		t.Errorf("expected all case tests passing; got: %q", got)
	}
}

func Test_the_was_run_suite_fails_its_broken_method(t *testing.T) {
	r := &xunit.Result{}
	if err := selftest.Suites["WasRun"]().Run(r); err != nil {
		t.Fatalf("expected no error; got: %v", err)
	}
	exp := "2 run, 1 failed\nErrors: WasRun.testBrokenMethod -- Exception"
	if diff := cmp.Diff(exp, r.Summary()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func Test_a_broken_result_fails_failure_reports(t *testing.T) {
	r := &selftest.BrokenResult{}
	r.TestStarted()
	if err := r.TestFailed("x"); xunit.KindOf(err) != xunit.Exception {
		t.Errorf("expected Exception; got: %v", err)
	}
	if r.Summary() != "1 run, 0 failed" {
		t.Errorf("expected unrecorded failure; got: %q", r.Summary())
	}
}

func Test_suite_names_are_sorted(t *testing.T) {
	if diff := cmp.Diff(
		[]string{"CaseTest", "WasRun"}, selftest.SuiteNames()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}
