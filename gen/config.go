// SPDX-License-Identifier: MIT

package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/layout"
)

// MaxElements bounds R*C of a generated type; values live in fixed arrays.
const MaxElements = 1 << 12

// Instance is one requested instantiation.
type Instance struct {
	Type       string `yaml:"type"`
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	Order      string `yaml:"order"`
	StartIndex int    `yaml:"start_index"`
	Const      bool   `yaml:"const"`
}

// Config is the generator input.
type Config struct {
	Package   string     `yaml:"package"`
	Instances []Instance `yaml:"instances"`
}

// LoadConfig reads and validates the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen.LoadConfig(%q): %w", path, err)
	}

	return ParseConfig(raw)
}

// ParseConfig decodes and validates a YAML document. Unknown keys are rejected.
func ParseConfig(raw []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("gen.ParseConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every instance; the first violation is returned.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("gen: package %q: %w", c.Package, ErrInvalidConfig)
	}
	if len(c.Instances) == 0 {
		return fmt.Errorf("gen: no instances: %w", ErrInvalidConfig)
	}
	for i, in := range c.Instances {
		if _, _, err := in.resolve(); err != nil {
			return fmt.Errorf("gen: instance %d: %w: %w", i, ErrInvalidConfig, err)
		}
	}

	return nil
}

// resolve turns the textual instance into a kind and a layout.
func (in Instance) resolve() (dtype.Kind, layout.Layout, error) {
	kind, err := dtype.Parse(in.Type)
	if err != nil {
		return dtype.Invalid, layout.Layout{}, err
	}
	order, err := layout.ParseOrder(in.Order)
	if err != nil {
		return dtype.Invalid, layout.Layout{}, err
	}
	l, err := layout.New(in.Rows, in.Cols, order, in.StartIndex)
	if err != nil {
		return dtype.Invalid, layout.Layout{}, err
	}
	if l.Size() > MaxElements {
		return dtype.Invalid, layout.Layout{}, fmt.Errorf("%dx%d exceeds %d elements", in.Rows, in.Cols, MaxElements)
	}

	return kind, l, nil
}
