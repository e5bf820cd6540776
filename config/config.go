// Package config holds the tunable parameters of a rotor scan.
//
// A Config starts from Default, is overlaid by an optional YAML file
// (Load), then by an optional dotenv file (ApplyEnvFile), and finally by
// command-line flags. Zero values in the YAML file count as unset and keep
// their defaults; use the env file or flags to force a zero.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reentry/aggregate"
	"github.com/katalvlaran/reentry/cycle"
)

// ErrInvalidConfig is returned by Validate and by malformed env values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every key read by ApplyEnv.
const EnvPrefix = "ROTORSCAN_"

// Heatmap holds the colour thresholds in ms.
type Heatmap struct {
	MaxMillis float64 `yaml:"max_ms"`
	MidMillis float64 `yaml:"mid_ms"`
}

// Config is the full parameter set of a scan.
type Config struct {
	Bounds          cycle.Bounds `yaml:"bounds"`
	Penalizer       float64      `yaml:"penalizer"`
	Workers         int          `yaml:"workers"` // < 0: one per CPU
	OpenClosingTime bool         `yaml:"open_closing_time"`
	Heatmap         Heatmap      `yaml:"heatmap"`
	CachePath       string       `yaml:"cache_path"` // empty: no cache
}

// Default returns the stock parameters.
func Default() Config {
	return Config{
		Bounds:    cycle.DefaultBounds(),
		Penalizer: 1,
		Workers:   1,
		Heatmap: Heatmap{
			MaxMillis: aggregate.ReentryMillis,
			MidMillis: aggregate.MidReentryMillis,
		},
	}
}

// Load reads a YAML file and fills every unset field from Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse is Load on a reader.
func Parse(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := mergo.Merge(&c, Default()); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return c, nil
}

// ApplyEnvFile overlays the ROTORSCAN_* keys of a dotenv file.
func (c *Config) ApplyEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return c.ApplyEnv(env)
}

// ApplyEnv overlays ROTORSCAN_* keys from env. Recognised suffixes:
// MIN_DIST, MAX_DIST, MIN_TIME, MAX_TIME, PENALIZER, WORKERS,
// OPEN_CLOSING_TIME, HEATMAP_MAX_MS, HEATMAP_MID_MS, CACHE_PATH.
// Other keys are ignored.
func (c *Config) ApplyEnv(env map[string]string) error {
	floats := map[string]*float64{
		"MIN_DIST":       &c.Bounds.MinDist,
		"MAX_DIST":       &c.Bounds.MaxDist,
		"PENALIZER":      &c.Penalizer,
		"HEATMAP_MAX_MS": &c.Heatmap.MaxMillis,
		"HEATMAP_MID_MS": &c.Heatmap.MidMillis,
	}
	ints := map[string]*int{
		"MIN_TIME": &c.Bounds.MinTime,
		"MAX_TIME": &c.Bounds.MaxTime,
		"WORKERS":  &c.Workers,
	}

	for key, dst := range floats {
		if s, ok := env[EnvPrefix+key]; ok {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, s, ErrInvalidConfig)
			}
			*dst = v
		}
	}
	for key, dst := range ints {
		if s, ok := env[EnvPrefix+key]; ok {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, s, ErrInvalidConfig)
			}
			*dst = v
		}
	}
	if s, ok := env[EnvPrefix+"OPEN_CLOSING_TIME"]; ok {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%sOPEN_CLOSING_TIME=%q: %w", EnvPrefix, s, ErrInvalidConfig)
		}
		c.OpenClosingTime = v
	}
	if s, ok := env[EnvPrefix+"CACHE_PATH"]; ok {
		c.CachePath = s
	}

	return nil
}

// Validate checks bounds, penalizer and heatmap thresholds.
func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch {
	case !(c.Penalizer > 0) || math.IsInf(c.Penalizer, 0):
		return fmt.Errorf("penalizer %g: %w", c.Penalizer, ErrInvalidConfig)
	case !(c.Heatmap.MidMillis > 0) || !(c.Heatmap.MidMillis < c.Heatmap.MaxMillis):
		return fmt.Errorf("heatmap thresholds mid=%g max=%g: %w",
			c.Heatmap.MidMillis, c.Heatmap.MaxMillis, ErrInvalidConfig)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
