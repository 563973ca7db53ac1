// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

// Package config handles .panorama.yaml configuration files and the
// environment overrides used by the serve command.
package config

// Config represents the contents of a .panorama.yaml file.
type Config struct {
	// CSVPath and JSONPath point at the analysis inputs. Empty values fall
	// back to the default search locations.
	CSVPath  string `yaml:"csv,omitempty"`
	JSONPath string `yaml:"json,omitempty"`

	// Output is the default report path for the render command.
	Output string `yaml:"output,omitempty"`

	// Format is the default report format (html, json, markdown, text).
	Format string `yaml:"format,omitempty"`

	// Addr is the default listen address for the serve command.
	Addr string `yaml:"addr,omitempty"`

	// Sample forces the synthetic demo dataset even when input files exist.
	Sample bool `yaml:"sample,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".panorama.yaml"