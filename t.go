// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"testing"
)

// RunT runs the cases of given suite as sub-tests of given test,
// e.g.:
//
//	func TestMyFixture(t *testing.T) {
//	    xunit.RunT(t, xunit.FromFixture(NewMyFixture))
//	}
//
// A case's failure description is reported as error of its sub-test
// while an error returned by a case fails its sub-test fatally.
func RunT(t *testing.T, s *Suite) {
	t.Helper()
	s.ForCase(func(c *Case) {
		t.Run(c.Name(), func(t *testing.T) {
			if err := c.Run(&T{t: t}); err != nil {
				t.Fatal(err)
			}
		})
	})
}

// T is a [Reporter] forwarding failure reports to a wrapped testing.T
// instance.
type T struct {
	t *testing.T
}

// NewT wraps given testing.T instance into a reporter.
func NewT(t *testing.T) *T { return &T{t: t} }

// GoT returns the wrapped testing.T instance.
func (t *T) GoT() *testing.T { return t.t }

// TestStarted logs nothing, the testing framework reports started
// tests itself.
func (t *T) TestStarted() {}

// TestFailed flags the wrapped test as failed logging given
// description.  A failure without description is still a failure.
func (t *T) TestFailed(description string) error {
	t.t.Helper()
	if description == "" {
		t.t.Fail()
		return nil
	}
	t.t.Error(description)
	return nil
}
