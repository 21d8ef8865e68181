/*
Xunit runs a self-test suite of the xunit engine and prints its summary.

Usage:

	xunit [flags]
	xunit list
	xunit report [--report path]

By default the CaseTest suite is run, i.e. the fixture whose tests
verify the engine by running the WasRun fixtures.  A run prints

	10 run, 0 failed

respectively, if cases failed, a second line listing the failures:

	2 run, 1 failed
	Errors: WasRun.testBrokenMethod -- Exception

The command exits successfully regardless of failed tests.  It exits
with 1 if its configuration is broken, a run report can't be written or
the engine returns an error, e.g. from a failing tear down.

Settings are read from .xunit.yaml, the environment (XUNIT_SUITE,
XUNIT_PROGRESS, XUNIT_VERBOSE, XUNIT_REPORT, NO_COLOR; optionally
populated from a .env file) and the command's flags in that order.
*/
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
