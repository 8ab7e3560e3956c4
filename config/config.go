// Package config loads user preferences from a YAML file.
//
// A missing file is not an error: every key is optional and the defaults
// of d3d8.DefaultConfig apply. Unknown keys are rejected so typos surface.
//
//	anisotropy: 8
//	antialias: 4
//	borderless: false
//	show_in_taskbar: true
//	center_window: true
//	present_interval: 1     # 0 keeps the client value, 255 never waits
//	backend: d3d9
//	trace_file: d3d8.log
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/d3d8"
)

// DefaultPath is the file read when no path is given.
const DefaultPath = "d3d8.yaml"

// File is the decoded configuration file.
type File struct {
	Anisotropy      uint32 `yaml:"anisotropy"`
	Antialias       uint32 `yaml:"antialias"`
	Borderless      bool   `yaml:"borderless"`
	ShowInTaskbar   *bool  `yaml:"show_in_taskbar"`
	CenterWindow    *bool  `yaml:"center_window"`
	PresentInterval uint8  `yaml:"present_interval"`

	// Backend names the modern runtime backend. Empty selects the default.
	Backend string `yaml:"backend"`

	// TraceFile enables the diagnostic trace when set.
	TraceFile string `yaml:"trace_file"`
}

// Load reads and validates path. A missing file yields the zero File.
func Load(path string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates YAML data.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Config returns the device creation preferences, starting from
// d3d8.DefaultConfig for keys that were not set.
func (f *File) Config() d3d8.Config {
	c := d3d8.DefaultConfig()
	c.AnisotropyLevel = f.Anisotropy
	c.AntialiasLevel = f.Antialias
	c.Borderless = f.Borderless
	c.PresentInterval = f.PresentInterval
	if f.ShowInTaskbar != nil {
		c.ShowInTaskbar = *f.ShowInTaskbar
	}
	if f.CenterWindow != nil {
		c.CenterWindow = *f.CenterWindow
	}
	return c
}

// Validate checks every value is in range.
func (f *File) Validate() error {
	return f.Config().Validate()
}

// Options returns the factory options the file selects.
func (f *File) Options() []d3d8.Option {
	opts := []d3d8.Option{d3d8.WithConfig(f.Config())}
	if f.TraceFile != "" {
		opts = append(opts, d3d8.WithTraceFile(f.TraceFile))
	}
	return opts
}
