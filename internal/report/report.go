// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report stores the outcome of a suite run as YAML document
// and loads it again.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/slukits/xunit"
)

// Report is the persisted outcome of a suite run.
type Report struct {
	Suite     string   `yaml:"suite"`
	Run       int      `yaml:"run"`
	Failed    int      `yaml:"failed"`
	Errors    []string `yaml:"errors,omitempty"`
	Summary   string   `yaml:"summary"`
	Duration  string   `yaml:"duration"`
	Timestamp string   `yaml:"timestamp"`
}

// New creates the report of given suite's run with given result which
// took given duration.
func New(suite string, r *xunit.Result, d time.Duration) *Report {
	return &Report{
		Suite:     suite,
		Run:       r.Run(),
		Failed:    r.Failed(),
		Errors:    r.Failures(),
		Summary:   r.Summary(),
		Duration:  d.String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Save writes given report to given path creating missing directories.
func Save(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the report stored at given path.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is user provided
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	r := &Report{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return r, nil
}
