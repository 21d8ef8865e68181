// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Fixture is implemented by test fixtures.  SetUp and TearDown bracket
// every test a fixture instance runs while Register declares the
// fixture's tests.  Embed [Base] to get no-op defaults for SetUp and
// TearDown:
//
//	type MyFixture struct {
//	    xunit.Base
//	    log string
//	}
//
//	func (f *MyFixture) SetUp() error { f.log = "setUp "; return nil }
//
//	func (f *MyFixture) Register(r *xunit.Registry) {
//	    r.Test("testLogs", f.testLogs)
//	}
//
//	func (f *MyFixture) testLogs() error {
//	    return xunit.Eq(f.log, "setUp ")
//	}
type Fixture interface {
	SetUp() error
	TearDown() error
	Register(*Registry)
}

// Base provides no-op SetUp and TearDown implementations for fixture
// embedders.
type Base struct{}

// SetUp does nothing.
func (Base) SetUp() error { return nil }

// TearDown does nothing.
func (Base) TearDown() error { return nil }

// TestPrefix is the name prefix of tests which are discovered by
// [FromFixture].
const TestPrefix = "test"

type test struct {
	name string
	fn   func() error
}

// Registry holds the named tests of a fixture instance in the order of
// their registration.
type Registry struct {
	tests []test
}

// Test registers given function under given name.  Test panics if name
// is already registered; the panic escapes FromFixture as well as
// Case.Run.
func (r *Registry) Test(name string, fn func() error) *Registry {
	if r.index(name) >= 0 {
		panic(fmt.Sprintf("xunit: registry: duplicate test %q", name))
	}
	r.tests = append(r.tests, test{name: name, fn: fn})
	return r
}

// Names returns the registered test names in registration order.
func (r *Registry) Names() []string {
	nn := make([]string, len(r.tests))
	for i, t := range r.tests {
		nn[i] = t.name
	}
	return nn
}

// Len returns the number of registered tests.
func (r *Registry) Len() int { return len(r.tests) }

// lookup returns the function registered under given name.
func (r *Registry) lookup(name string) (func() error, bool) {
	idx := r.index(name)
	if idx < 0 {
		return nil, false
	}
	return r.tests[idx].fn, true
}

func (r *Registry) index(name string) int {
	return slices.IndexFunc(r.tests, func(t test) bool {
		return t.name == name
	})
}

// registryOf returns the tests given fixture registers.
func registryOf(f Fixture) *Registry {
	r := &Registry{}
	f.Register(r)
	return r
}

// TypeName returns the name of given fixture's dynamic type as it
// appears in failure records, e.g. "MyFixture" for a *MyFixture.
func TypeName(f Fixture) string { return typeName(f) }
