// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/slukits/xunit"
)

// NOTE RunT reports a case failure as error of the case's sub-test,
// i.e. failing fixtures are run by Test_run_t_child in a child process
// of the test binary whose outcome is then evaluated.

type runT struct {
	xunit.Base
	Log *string
}

func (s *runT) SetUp() error {
	*s.Log += "s"
	return nil
}

func (s *runT) TearDown() error {
	*s.Log += "t "
	return nil
}

func (s *runT) Register(r *xunit.Registry) {
	r.Test("testA", func() error { *s.Log += "a"; return nil }).
		Test("testB", func() error { *s.Log += "b"; return nil })
}

func Test_run_t_runs_each_case_as_sub_test(t *testing.T) {
	log, names := "", []string{}
	suite := xunit.FromFixture(func() *runT { return &runT{Log: &log} })
	t.Run("suite", func(t *testing.T) {
		xunit.RunT(t, suite)
	})
	suite.ForCase(func(c *xunit.Case) { names = append(names, c.Name()) })
	if log != "sat sbt " {
		t.Errorf("expected each case bracketed; got: %q", log)
	}
	if len(names) != 2 || names[0] != "runT.testA" {
		t.Errorf("expected sub-tests named by cases; got: %v", names)
	}
}

func Test_t_reports_no_error_for_started_tests(t *testing.T) {
	r := xunit.NewT(t)
	r.TestStarted()
	if r.GoT() != t {
		t.Error("expected wrapped testing.T instance")
	}
}

// envRunTChild selects the fixture Test_run_t_child runs.
const envRunTChild = "XUNIT_RUN_T_CHILD"

// failingT's test fails.
type failingT struct{ xunit.Base }

func (s *failingT) Register(r *xunit.Registry) {
	r.Test("testFails", func() error {
		return xunit.Fail(xunit.AssertionError, "expected failure")
	})
}

// tearDownT's test passes but its tear down fails.
type tearDownT struct{ xunit.Base }

func (s *tearDownT) TearDown() error {
	return errors.New("tear down broke")
}

func (s *tearDownT) Register(r *xunit.Registry) {
	r.Test("testPasses", func() error { return nil })
}

func Test_run_t_child(t *testing.T) {
	switch os.Getenv(envRunTChild) {
	case "failing":
		xunit.RunT(t, xunit.FromFixture(func() *failingT {
			return &failingT{}
		}))
	case "tearDown":
		xunit.RunT(t, xunit.FromFixture(func() *tearDownT {
			return &tearDownT{}
		}))
		t.Log("after fatal sub-test")
	case "bare":
		_ = xunit.NewT(t).TestFailed("")
	default:
		t.Skip("runs only as child process")
	}
}

// runTChild runs Test_run_t_child for given fixture selector in a child
// process and returns its combined output and whether it failed.
func runTChild(t *testing.T, fixture string) (string, bool) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^Test_run_t_child$",
		"-test.v")
	cmd.Env = append(os.Environ(), envRunTChild+"="+fixture)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		t.Fatalf("child process didn't run: %v", err)
	}
	return string(out), err != nil
}

func Test_run_t_reports_failure_description_as_error(t *testing.T) {
	out, failed := runTChild(t, "failing")
	if !failed {
		t.Fatalf("expected failing child; got:\n%s", out)
	}
	if !strings.Contains(out, "failingT.testFails -- AssertionError") {
		t.Errorf("expected reported failure; got:\n%s", out)
	}
	if !strings.Contains(out, "--- FAIL: Test_run_t_child/failingT.testFails") {
		t.Errorf("expected failing sub-test; got:\n%s", out)
	}
}

func Test_run_t_fails_sub_test_fatally_on_case_error(t *testing.T) {
	out, failed := runTChild(t, "tearDown")
	if !failed {
		t.Fatalf("expected failing child; got:\n%s", out)
	}
	if !strings.Contains(out, "tearDownT.tearDown: tear down broke") {
		t.Errorf("expected fatal case error; got:\n%s", out)
	}
	if !strings.Contains(out, "--- FAIL: Test_run_t_child/tearDownT.testPasses") {
		t.Errorf("expected failing sub-test; got:\n%s", out)
	}
	if !strings.Contains(out, "after fatal sub-test") {
		t.Errorf("expected fatal to end only the sub-test; got:\n%s", out)
	}
}

func Test_t_fails_without_message_on_bare_failure(t *testing.T) {
	out, failed := runTChild(t, "bare")
	if !failed {
		t.Fatalf("expected failing child; got:\n%s", out)
	}
	if !strings.Contains(out, "--- FAIL: Test_run_t_child") {
		t.Errorf("expected failed test; got:\n%s", out)
	}
}
