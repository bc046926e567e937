// Package config loads drawing settings for toothgeom from YAML files.
//
// A file looks like this; every key is optional:
//
//	inset:
//	  scale: 0.96
//	  offset_x: 0
//	  offset_y: 0
//	tolerance: 0.1
//	orientation:
//	  "21-28":
//	    inside: {flip: true}
//	    topview: {}
//	    outside: {flip: true}
//
// Orientation entries replace the built-in entry of their quadrant as a whole.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dentchart/toothgeom"
)

var (
	ErrInvalidInset          = errors.New("invalid inset")
	ErrInvalidTolerance      = errors.New("invalid tolerance")
	ErrInvalidOrientationKey = errors.New("invalid orientation key")
)

// Config holds the settings of a drawing engine and the chart renderer.
type Config struct {
	Inset       Inset                            `yaml:"inset"`
	Tolerance   float64                          `yaml:"tolerance"`
	Orientation map[string]toothgeom.OrientGroup `yaml:"orientation,omitempty"`
}

// Inset mirrors toothgeom.Inset with YAML keys.
type Inset struct {
	Scale   float64 `yaml:"scale"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	toothgeom.Logger().Debug("toothgeom: config loaded",
		slog.String("path", path),
		slog.Float64("inset", c.Inset.Scale),
		slog.Float64("tolerance", c.Tolerance),
		slog.Int("orientation_overrides", len(c.Orientation)))
	return c, nil
}

// Parse parses YAML data into a Config, fills in defaults and validates the
// result.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal serializes c to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in zero values. Negative values are left for Validate
// to reject.
func applyDefaults(c *Config) {
	if c.Inset.Scale == 0 {
		c.Inset.Scale = toothgeom.DefaultInset.Scale
	}
	if c.Tolerance == 0 {
		c.Tolerance = toothgeom.DefaultTolerance
	}
}

// Validate checks the ranges of all settings.
func (c *Config) Validate() error {
	if !(c.Inset.Scale > 0 && c.Inset.Scale <= 1) {
		return fmt.Errorf("%w: scale %g is outside (0, 1]", ErrInvalidInset, c.Inset.Scale)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: %g is not positive", ErrInvalidTolerance, c.Tolerance)
	}
	for key := range c.Orientation {
		if _, err := parseQuadrantKey(key); err != nil {
			return err
		}
	}
	return nil
}

// Options returns the engine options described by c.
func (c *Config) Options() toothgeom.Options {
	return toothgeom.Options{
		Inset: toothgeom.Inset{
			Scale:   c.Inset.Scale,
			OffsetX: c.Inset.OffsetX,
			OffsetY: c.Inset.OffsetY,
		},
		Tolerance: c.Tolerance,
	}
}

// Engine returns a drawing engine configured by c.
func (c *Config) Engine() *toothgeom.Engine {
	return toothgeom.NewEngine(c.Options())
}

// OrientationTable returns toothgeom.DefaultOrientation with the entries of
// c applied on top. c must have passed Validate.
func (c *Config) OrientationTable() toothgeom.OrientationTable {
	tab := maps.Clone(toothgeom.DefaultOrientation)
	for key, g := range c.Orientation {
		q, err := parseQuadrantKey(key)
		if err != nil {
			continue
		}
		tab[q] = g
	}
	return tab
}

// parseQuadrantKey turns a key such as "21-28" into its quadrant. A bare
// quadrant number such as "2" is accepted as well.
func parseQuadrantKey(key string) (int, error) {
	lo, hi, ranged := strings.Cut(strings.TrimSpace(key), "-")
	a, err := strconv.Atoi(lo)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidOrientationKey, key, err)
	}
	if !ranged {
		if a < 1 || a > 4 {
			return 0, fmt.Errorf("%w %q: quadrant must be 1 to 4", ErrInvalidOrientationKey, key)
		}
		return a, nil
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidOrientationKey, key, err)
	}
	q := a / 10
	if q < 1 || q > 4 || a%10 != 1 || b != q*10+8 {
		return 0, fmt.Errorf("%w %q: want a full quadrant such as \"11-18\"", ErrInvalidOrientationKey, key)
	}
	return q, nil
}
