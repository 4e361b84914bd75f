// Package config holds the run configuration of the estimator.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/aretw0/montepi/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultSamples is the number of points drawn when nothing else is configured.
const DefaultSamples = 1_000_000

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "montepi.yaml"

// Config is the full run configuration.
type Config struct {
	// Samples is N, the number of points to draw.
	Samples int `yaml:"samples" mapstructure:"samples"`

	// Seed fixes the random source. Nil means a fresh seed per run.
	Seed *uint64 `yaml:"seed" mapstructure:"seed"`

	// OutputDir receives inside.dat and outside.dat.
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`

	// Progress enables the progress bar on interactive terminals.
	Progress bool `yaml:"progress" mapstructure:"progress"`

	// MetricsFile, when set, receives the run metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file" mapstructure:"metrics_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		Samples:   DefaultSamples,
		OutputDir: ".",
		Progress:  true,
		LogLevel:  "info",
	}
}

// Load reads a YAML config file on top of Default().
// If path is empty, DefaultFile is tried and silently skipped when missing.
// An explicitly requested file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
		DecodeHook:       exactIntegers,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// exactIntegers rejects numbers that weak typing would silently truncate or
// wrap: fractions into integer fields and negatives into unsigned ones.
func exactIntegers(_ reflect.Type, to reflect.Type, data any) (any, error) {
	v := reflect.ValueOf(data)
	if !v.IsValid() {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	unsigned := to.Kind() >= reflect.Uint && to.Kind() <= reflect.Uint64

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
		if unsigned && f < 0 {
			return nil, fmt.Errorf("expected a non-negative integer, got %v", f)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if unsigned && v.Int() < 0 {
			return nil, fmt.Errorf("expected a non-negative integer, got %d", v.Int())
		}
	}
	return data, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// WithSeed returns a copy of c with the seed fixed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}
