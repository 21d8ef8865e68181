// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"errors"
	"strings"
)

// Suite is an ordered collection of cases which are run one after
// another against the same reporter, e.g.:
//
//	suite := (&xunit.Suite{}).
//	    Add(xunit.NewCase(&MyFixture{}, "testLogs")).
//	    Add(xunit.NewCase(&MyFixture{}, "testOther"))
//	result := &xunit.Result{}
//	suite.Run(result)
//	fmt.Println(result.Summary())
//
// or leveraging the discovery of a fixture's tests:
//
//	suite := xunit.FromFixture(func() *MyFixture { return &MyFixture{} })
//
// The zero value is an empty suite ready to use.
type Suite struct {
	cases  []*Case
	logger func(...interface{})
}

// FromFixture returns a suite with a case for each test given fixture
// registers whose name starts with [TestPrefix].  The cases are added
// in registration order and each case gets its own fixture instance
// created by given factory.
func FromFixture[F Fixture](newFixture func() F) *Suite {
	s := &Suite{}
	for _, name := range registryOf(newFixture()).Names() {
		if !strings.HasPrefix(name, TestPrefix) {
			continue
		}
		s.Add(NewCase(newFixture(), name))
	}
	return s
}

// Add appends given case to a suite.
func (s *Suite) Add(c *Case) *Suite {
	s.cases = append(s.cases, c)
	return s
}

// Len returns the number of cases of a suite.
func (s *Suite) Len() int { return len(s.cases) }

// ForCase calls back for each case of a suite in execution order.
func (s *Suite) ForCase(cb func(*Case)) {
	for _, c := range s.cases {
		cb(c)
	}
}

// SetLogger sets the function a suite logs its progress to.  A suite
// without logger doesn't log.
func (s *Suite) SetLogger(logger func(...interface{})) *Suite {
	s.logger = logger
	return s
}

func (s *Suite) log(args ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger(args...)
}

// Run runs each case of a suite in the order they were added against
// given reporter.  A case's error doesn't stop the run, all errors
// returned by the cases are joined and returned after the last case
// has run.
func (s *Suite) Run(r Reporter) error {
	var errs []error
	for _, c := range s.cases {
		s.log("run ", c.Name())
		if err := c.Run(r); err != nil {
			s.log(c.Name(), ": ", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
