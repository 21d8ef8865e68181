// Package xunit is a minimal xUnit test execution engine.  A fixture
// declares its tests and optionally SetUp and TearDown methods
// bracketing each of them:
//
//	import "github.com/slukits/xunit"
//
//	type Stack struct {
//	    xunit.Base
//	    s []int
//	}
//
//	func NewStack() *Stack { return &Stack{} }
//
//	func (f *Stack) SetUp() error { f.s = []int{1}; return nil }
//
//	func (f *Stack) Register(r *xunit.Registry) {
//	    r.Test("testPush", f.testPush).
//	        Test("testPop", f.testPop)
//	}
//
//	func (f *Stack) testPush() error {
//	    f.s = append(f.s, 2)
//	    return xunit.Eq(len(f.s), 2)
//	}
//
//	func (f *Stack) testPop() error {
//	    f.s = f.s[:0]
//	    return xunit.True(len(f.s) == 0)
//	}
//
// A [Case] binds a fixture instance to one of its tests.  Running a
// case reports to a [Reporter], typically a [Result], that it started
// and whether it failed:
//
//	result := &xunit.Result{}
//	xunit.NewCase(NewStack(), "testPush").Run(result)
//	fmt.Println(result.Summary()) // 1 run, 0 failed
//
// A [Suite] runs cases one after another against the same reporter.
// [FromFixture] creates a suite having a case with a fresh fixture
// instance for every registered test whose name starts with "test":
//
//	result := &xunit.Result{}
//	xunit.FromFixture(NewStack).Run(result)
//	fmt.Println(result.Summary()) // 2 run, 0 failed
//
// A test fails by returning an error or by panicking.  The failure is
// recorded as
//
//	<fixture type>.<test name> -- <failure kind>
//
// where the failure kind is the [Kind] of a returned [Failure], the
// name of an exported error type or "Exception" otherwise, see
// [KindOf].  If SetUp fails the failure is recorded for "setUp" and
// neither the test nor TearDown is run.  If the test fails TearDown
// runs nevertheless.
//
// Suites may also be run by go test leveraging [RunT]:
//
//	func TestStack(t *testing.T) {
//	    xunit.RunT(t, xunit.FromFixture(NewStack))
//	}
package xunit
