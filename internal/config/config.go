// Package config loads the configuration of the quickdecimal command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/potswa/quickdecimal/internal/verify"
)

var errInvalidConfig = errors.New("invalid config")

// ─── Sections ───────────────────────────────────────────────────────────

type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn or error
	Development bool   `yaml:"development"` // console encoding and stack traces on warnings
}

type VerifyConfig struct {
	From          uint32   `yaml:"from"`
	To            uint32   `yaml:"to"`
	Workers       int      `yaml:"workers"` // 0 = one per CPU
	ChunkSize     uint32   `yaml:"chunk_size"`
	References    []string `yaml:"references"`
	MaxMismatches int      `yaml:"max_mismatches"`
}

type BenchConfig struct {
	Samples int   `yaml:"samples"` // values per benchmark iteration
	Seed    int64 `yaml:"seed"`
}

// Config is the top-level structure of the configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Verify VerifyConfig `yaml:"verify"`
	Bench  BenchConfig  `yaml:"bench"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Verify: VerifyConfig{
			From:          0,
			To:            math.MaxUint32,
			ChunkSize:     verify.DefaultChunkSize,
			References:    []string{"strconv"},
			MaxMismatches: verify.DefaultMaxMismatches,
		},
		Bench: BenchConfig{
			Samples: 1024,
			Seed:    1,
		},
	}
}

// ─── Loaders ────────────────────────────────────────────────────────────

// Load reads and validates the configuration file at path.
// Keys missing from the file keep their [Default] values.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration document.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that YAML decoding cannot.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w: %w", err, errInvalidConfig)
	}
	if c.Verify.From > c.Verify.To {
		return fmt.Errorf("verify.from %v is greater than verify.to %v: %w", c.Verify.From, c.Verify.To, errInvalidConfig)
	}
	if c.Verify.Workers < 0 {
		return fmt.Errorf("verify.workers %v is negative: %w", c.Verify.Workers, errInvalidConfig)
	}
	if c.Verify.MaxMismatches < 0 {
		return fmt.Errorf("verify.max_mismatches %v is negative: %w", c.Verify.MaxMismatches, errInvalidConfig)
	}
	if _, err := verify.ReferencesByName(c.Verify.References); err != nil {
		return fmt.Errorf("verify.references: %w", err)
	}
	if c.Bench.Samples <= 0 {
		return fmt.Errorf("bench.samples %v is not positive: %w", c.Bench.Samples, errInvalidConfig)
	}
	return nil
}

// Logger builds the zap logger described by the log section.
func (c LogConfig) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
