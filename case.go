// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"errors"
	"fmt"
)

// ErrRerun is returned by a case's Run method if the case has run
// before.
var ErrRerun = errors.New("xunit: case: already run")

// setUpName names the setup step in failure records.
const setUpName = "setUp"

// Case binds a fixture instance to the name of one of its registered
// tests.  A case runs at most once.
type Case struct {
	fixture Fixture
	name    string
	ran     bool
}

// NewCase returns a case running given fixture's test registered under
// given name.
func NewCase(f Fixture, name string) *Case {
	return &Case{fixture: f, name: name}
}

// Fixture returns the fixture instance of a case.
func (c *Case) Fixture() Fixture { return c.fixture }

// TestName returns the test name of a case.
func (c *Case) TestName() string { return c.name }

// Name identifies a case by its fixture type and test name, e.g.
// "MyFixture.testLogs".
func (c *Case) Name() string {
	return TypeName(c.fixture) + "." + c.name
}

// Run informs given reporter that the case started, sets up its
// fixture, runs its test and tears the fixture down again.  A failing
// setup is reported and ends the run, neither the test nor the tear
// down is executed.  A failing test is reported and the fixture is torn
// down nevertheless.  Run returns an error iff the reporter fails to
// take a failure report or the tear down fails; in the former case the
// fixture has been torn down before Run returns.  A fixture registering
// a test name twice panics before the case is reported as started.
func (c *Case) Run(r Reporter) (err error) {
	if c.ran {
		return ErrRerun
	}
	c.ran = true
	test := c.test()

	r.TestStarted()
	if failure := call(c.fixture.SetUp); failure != nil {
		return r.TestFailed(c.record(setUpName, failure))
	}

	defer func() {
		if failure := call(c.fixture.TearDown); failure != nil {
			err = errors.Join(err, fmt.Errorf("%s.tearDown: %w",
				TypeName(c.fixture), failure))
		}
	}()

	if failure := call(test); failure != nil {
		return r.TestFailed(c.record(c.name, failure))
	}
	return nil
}

// test looks up a case's test in its fixture's registry.  A test which
// isn't registered fails with an UnknownTest failure once it is called.
func (c *Case) test() func() error {
	fn, ok := registryOf(c.fixture).lookup(c.name)
	if !ok {
		return func() error {
			return Failf(UnknownTest, "%s has no test %q",
				TypeName(c.fixture), c.name)
		}
	}
	return fn
}

func (c *Case) record(member string, failure error) string {
	return fmt.Sprintf("%s.%s -- %s",
		TypeName(c.fixture), member, KindOf(failure))
}

// call executes given function and turns a panic into an error.
func call(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = panicked(v)
		}
	}()
	return fn()
}
