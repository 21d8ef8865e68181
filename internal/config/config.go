// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides the xunit command's settings.  Settings are
// layered: defaults, an optional .xunit.yaml file, the environment
// (optionally populated from a .env file) and finally command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultSuite is the suite run if none is configured.
	DefaultSuite = "CaseTest"
	// DefaultFile is the name of the optional configuration file.
	DefaultFile = ".xunit.yaml"
	// DefaultEnvFile is the name of the optional env file.
	DefaultEnvFile = ".env"
)

// Environment variables overriding file settings.
const (
	EnvSuite    = "XUNIT_SUITE"
	EnvProgress = "XUNIT_PROGRESS"
	EnvVerbose  = "XUNIT_VERBOSE"
	EnvReport   = "XUNIT_REPORT"
	EnvNoColor  = "NO_COLOR"
)

// Config holds the xunit command's settings.
type Config struct {
	// Suite names the self-test suite to run.
	Suite string `yaml:"suite"`

	// Color switches colored output on or off.
	Color bool `yaml:"color"`

	// Progress renders a progress bar on stderr during a run.
	Progress bool `yaml:"progress"`

	// Verbose logs each case run to stderr.
	Verbose bool `yaml:"verbose"`

	// Report is the path of the YAML run report; no report is written
	// if empty.
	Report string `yaml:"report"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Suite: DefaultSuite,
		Color: true,
	}
}

// Load creates a Config with defaults and applies the settings of the
// YAML file at given path.  A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	data, err := os.ReadFile(path) // #nosec G304 - path is user provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads given env file into the environment, if it exists,
// and applies the XUNIT_* variables and NO_COLOR to a Config.
func (c *Config) ApplyEnv(envFile string) error {
	if err := godotenv.Load(envFile); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	if v := os.Getenv(EnvSuite); v != "" {
		c.Suite = v
	}
	if v := os.Getenv(EnvReport); v != "" {
		c.Report = v
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.Color = false
	}
	var err error
	if c.Progress, err = envBool(EnvProgress, c.Progress); err != nil {
		return err
	}
	if c.Verbose, err = envBool(EnvVerbose, c.Verbose); err != nil {
		return err
	}
	return nil
}

func envBool(name string, dflt bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return dflt, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return dflt, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
