// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit_test

import (
	"testing"
	"time"

	"github.com/slukits/xunit"
)

type stringer string

func (s stringer) String() string { return string(s) }

// assertion verifies the assertions' outcomes.
type assertion struct{ xunit.Base }

func newAssertion() *assertion { return &assertion{} }

func (s *assertion) Register(r *xunit.Registry) {
	r.Test("testTruePassesTrueValue", func() error {
		return xunit.Eq(xunit.True(true) == nil, true)
	}).Test("testTrueFailsFalseValue", func() error {
		return failsAssertion(xunit.True(false))
	}).Test("testEqPassesEqualStrings", func() error {
		return xunit.True(xunit.Eq("a", "a") == nil)
	}).Test("testEqFailsDifferentStrings", func() error {
		return failsAssertion(xunit.Eq("a", "b"))
	}).Test("testEqFailsDifferentTypes", func() error {
		return failsAssertion(xunit.Eq(1, "1"))
	}).Test("testEqComparesStringerWithString", func() error {
		return xunit.True(xunit.Eq(stringer("a"), "a") == nil)
	}).Test("testEqComparesStringRepresentations", func() error {
		return xunit.True(xunit.Eq(
			2*time.Millisecond, 2*time.Millisecond) == nil)
	}).Test("testEqComparesPointers", func() error {
		a, b := new(int), new(int)
		if err := xunit.True(xunit.Eq(a, a) == nil); err != nil {
			return err
		}
		return failsAssertion(xunit.Eq(a, b))
	}).Test("testContainsPassesSubString", func() error {
		return xunit.True(xunit.Contains("abc", "b") == nil)
	}).Test("testContainsFailsMissingSubString", func() error {
		return failsAssertion(xunit.Contains("abc", "d"))
	})
}

func failsAssertion(err error) error {
	return xunit.Eq(xunit.KindOf(err), xunit.AssertionError)
}

func TestAssertion(t *testing.T) {
	xunit.RunT(t, xunit.FromFixture(newAssertion))
}
