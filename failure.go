// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xunit

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
)

// Kind is the categorical name of a failure.  It is what a failure
// record reports, a failure's message is never part of a record.
type Kind string

const (
	// Exception is the kind of any error which carries no better
	// discriminator, e.g. errors created by errors.New or fmt.Errorf.
	Exception Kind = "Exception"

	// AssertionError is the kind of failed assertions, see [Eq].
	AssertionError Kind = "AssertionError"

	// UnknownTest is the kind of a case whose test name isn't
	// registered by its fixture.
	UnknownTest Kind = "UnknownTest"

	// Panic is the kind of a recovered panic whose value isn't an
	// error.
	Panic Kind = "Panic"
)

// Failure is an error tagged with a kind:
//
//	func (f *MyFixture) testDivision() error {
//	    if f.quotient != 2 {
//	        return xunit.Failf("ArithmeticError", "got %d", f.quotient)
//	    }
//	    return nil
//	}
type Failure struct {
	Kind Kind
	Msg  string
}

func (f *Failure) Error() string {
	if f.Msg == "" {
		return string(f.Kind)
	}
	return string(f.Kind) + ": " + f.Msg
}

// Fail returns a failure of given kind with an optional message.
func Fail(kind Kind, msg ...interface{}) error {
	return &Failure{Kind: kind, Msg: fmt.Sprint(msg...)}
}

// Failf returns a failure of given kind whose message is formatted
// leveraging fmt.Sprintf.
func Failf(kind Kind, format string, args ...interface{}) error {
	return &Failure{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf classifies given error: a wrapped *Failure reports its kind,
// an error of an exported type reports that type's name and everything
// else is an Exception.  KindOf(nil) is the empty kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	name := typeName(err)
	if name == "" || !unicode.IsUpper([]rune(name)[0]) {
		return Exception
	}
	return Kind(name)
}

// panicked turns a recovered panic value into an error.
func panicked(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}
	return Failf(Panic, "%v", v)
}

// typeName returns the name of given value's dynamic type with all
// pointer indirections removed.
func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
