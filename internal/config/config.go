// Package config loads interval sets from YAML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/crystalix007/centered-intervals/interval"
)

// DefaultPath is the file loaded when no path is given.
const DefaultPath = "intervals.yaml"

// Config is the top level of an interval file.
//
//	intervals:
//	  - name: a
//	    start: 5
//	    end: 10
//	    center: 7 # optional, defaults to the midpoint
type Config struct {
	Intervals []Entry `yaml:"intervals"`
}

// Entry is one named interval.
type Entry struct {
	Name   string `yaml:"name"`
	Lo     int64  `yaml:"start"`
	Hi     int64  `yaml:"end"`
	Anchor *int64 `yaml:"center,omitempty"`
}

// Ensure that Entry implements the [interval.Interval] interface.
var _ interval.Interval[int64] = Entry{}

// Start returns the lower bound of the entry.
func (e Entry) Start() int64 { return e.Lo }

// End returns the upper bound of the entry.
func (e Entry) End() int64 { return e.Hi }

// Center returns the explicit center if one was configured, and the
// midpoint otherwise.
func (e Entry) Center() int64 {
	if e.Anchor != nil {
		return *e.Anchor
	}

	return e.Lo + (e.Hi-e.Lo)/2
}

func (e Entry) String() string {
	return fmt.Sprintf("%s[%d,%d]", e.Name, e.Lo, e.Hi)
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return cfg, nil
}

// Parse decodes a YAML document. Unknown fields are rejected, and unnamed
// entries are named after their position.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WithStack(err)
	}

	for i := range cfg.Intervals {
		if cfg.Intervals[i].Name == "" {
			cfg.Intervals[i].Name = fmt.Sprintf("#%d", i)
		}
	}

	return &cfg, nil
}
