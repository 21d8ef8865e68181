// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// assertErr is the format-string for assertion failures.
const assertErr = "assert %s:\n%v"

// trueErr default message for failed 'true'-assertion.
const trueErr = "expected given value to be true"

// True returns an AssertionError failure iff given value is false;
// otherwise nil.
func True(value bool) error {
	if !value {
		return Failf(AssertionError, assertErr, "true", trueErr)
	}
	return nil
}

const eqTypeErr = "types mismatch %v != %v"

// Eq returns an AssertionError failure carrying a diff if given values
// are not considered equal; otherwise nil.  got and want are considered
// equal if they are of the same type or one of them is string while the
// other one is a Stringer implementation and
//   - got == want in case of two pointers
//   - got == want in case of two strings
//   - got.String() == want.String() in case of Stringer implementations
//   - fmt.Sprintf("%v", got) == fmt.Sprintf("%v", want) in other cases
func Eq(got, want interface{}) error {
	differentTypes := fmt.Sprintf("%T", got) != fmt.Sprintf("%T", want)
	if differentTypes && !isStringers(got, want) {
		return Failf(AssertionError, assertErr, "equal: types", fmt.Sprintf(
			eqTypeErr, fmt.Sprintf("%T", got), fmt.Sprintf("%T", want)))
	}

	if reflect.ValueOf(got).Kind() == reflect.Ptr {
		if got != want {
			return Failf(AssertionError, assertErr, "equal: pointer",
				fmt.Sprintf("%p != %p", got, want))
		}
		return nil
	}

	if diff := diff(toString(want), toString(got)); diff != "" {
		return Failf(AssertionError, assertErr,
			"equal: string-representations", diff)
	}
	return nil
}

func isStringers(a, b interface{}) bool {
	_, okA := a.(fmt.Stringer)
	_, okB := b.(fmt.Stringer)
	if !okA && !okB {
		return false
	}
	if okA && okB {
		return true
	}
	if okA {
		_, ok := b.(string)
		return ok
	}
	_, ok := a.(string)
	return ok
}

// diff reports the differences of given strings as (-want +got).
func diff(want, got string) string {
	if want == got {
		return ""
	}
	return cmp.Diff(want, got)
}

// containsErr default message for failed 'Contains'-assertion.
const containsErr = "%s doesn't contain %s"

// Contains returns an AssertionError failure iff given value's string
// representation doesn't contain given sub-string; otherwise nil.
func Contains(value interface{}, sub string) error {
	str := toString(value)
	if strings.Contains(str, sub) {
		return nil
	}
	if !strings.HasSuffix(str, "\n") {
		str += "\n"
	}
	if !strings.HasPrefix(sub, "\n") {
		sub = "\n" + sub
	}
	return Failf(AssertionError, assertErr, "contains",
		fmt.Sprintf(containsErr, str, sub))
}

// toString returns given value if it is a string, its String result if
// it is a Stringer and its %v-formatting otherwise.
func toString(value interface{}) string {
	switch value := value.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
