// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/slukits/xunit"
	"github.com/slukits/xunit/internal/config"
	"github.com/slukits/xunit/internal/report"
	"github.com/slukits/xunit/internal/selftest"
	"github.com/slukits/xunit/internal/ui"
)

// flags holds the command-line flags.
type flags struct {
	config   string
	envFile  string
	suite    string
	progress bool
	verbose  bool
	noColor  bool
	report   string
}

// newRootCmd creates the xunit command with its sub-commands.
func newRootCmd() *cobra.Command {
	ff := &flags{}
	rootCmd := &cobra.Command{
		Use:   "xunit",
		Short: "Run an xunit self-test suite",
		Long: "Run a self-test suite of the xunit engine against a fresh " +
			"result and print its summary.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ff.load(cmd)
			if err != nil {
				return err
			}
			return runSuite(cmd, cfg)
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&ff.config, "config", config.DefaultFile,
		"YAML configuration file")
	pf.StringVar(&ff.envFile, "env", config.DefaultEnvFile,
		"env file populating the environment")
	pf.StringVarP(&ff.report, "report", "r", "",
		"path of the YAML run report")
	rootCmd.Flags().StringVarP(&ff.suite, "suite", "s", config.DefaultSuite,
		"suite to run: "+strings.Join(selftest.SuiteNames(), ", "))
	rootCmd.Flags().BoolVarP(&ff.progress, "progress", "p", false,
		"render a progress bar on stderr")
	rootCmd.Flags().BoolVarP(&ff.verbose, "verbose", "v", false,
		"log each case run to stderr")
	rootCmd.Flags().BoolVar(&ff.noColor, "no-color", false,
		"disable colored output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the runnable suites and their cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listSuites(cmd)
			return nil
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Print the summary of the last stored run report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ff.load(cmd)
			if err != nil {
				return err
			}
			return printReport(cmd, cfg)
		},
	})
	return rootCmd
}

// load layers the configuration file, the environment and the
// explicitly set flags of given command.
func (ff *flags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(ff.config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(ff.envFile); err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed
	if changed("suite") {
		cfg.Suite = ff.suite
	}
	if changed("progress") {
		cfg.Progress = ff.progress
	}
	if changed("verbose") {
		cfg.Verbose = ff.verbose
	}
	if changed("no-color") {
		cfg.Color = !ff.noColor
	}
	if changed("report") {
		cfg.Report = ff.report
	}
	return cfg, nil
}

// runSuite runs the configured suite against a fresh result, prints
// the result's summary and stores a run report if configured.  Failed
// tests are not an error.
func runSuite(cmd *cobra.Command, cfg *config.Config) error {
	newSuite, ok := selftest.Suites[cfg.Suite]
	if !ok {
		return fmt.Errorf("unknown suite %q; have: %s", cfg.Suite,
			strings.Join(selftest.SuiteNames(), ", "))
	}
	if !cfg.Color {
		defer func(noColor bool) { color.NoColor = noColor }(color.NoColor)
		color.NoColor = true
	}

	suite := newSuite()
	if cfg.Verbose {
		suite.SetLogger(log.New(cmd.ErrOrStderr(), "xunit: ", 0).Print)
	}

	result := &xunit.Result{}
	var reporter xunit.Reporter = result
	var progress *ui.Progress
	if cfg.Progress {
		progress = ui.NewProgress(result, suite.Len(), cmd.ErrOrStderr())
		reporter = progress
	}

	start := time.Now()
	runErr := suite.Run(reporter)
	if progress != nil {
		progress.Finish()
	}
	ui.PrintSummary(cmd.OutOrStdout(), result)

	if cfg.Report != "" {
		err := report.Save(cfg.Report,
			report.New(cfg.Suite, result, time.Since(start)))
		if err != nil {
			return err
		}
	}
	return runErr
}

func listSuites(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	for _, name := range selftest.SuiteNames() {
		fmt.Fprintln(w, name)
		selftest.Suites[name]().ForCase(func(c *xunit.Case) {
			fmt.Fprintf(w, "    %s\n", c.Name())
		})
	}
}

func printReport(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Report == "" {
		return errors.New("no report configured; use --report")
	}
	r, err := report.Load(cfg.Report)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n%s\n",
		r.Suite, r.Timestamp, r.Duration, r.Summary)
	return nil
}
