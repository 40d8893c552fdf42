// SPDX-License-Identifier: MIT

// Package config holds the settings shared by cmd/kembed and cmd/kgen.
//
// Values resolve in viper order: explicit Set (command-line flags), then
// KEMBED_* environment variables, then an optional config file, then the
// defaults from NewConfig. Keys are dotted ("solver.algorithm"); in the
// environment the dots become underscores (KEMBED_SOLVER_ALGORITHM).
package config

import (
	"io"
	"strings"

	"github.com/katalvlaran/kembed/embed"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "KEMBED"

// Keys.
const (
	KeyAlgorithm = "solver.algorithm"
	KeyLogLevel  = "logging.level"
	KeyPretty    = "output.pretty"

	KeyHostKind     = "generator.host_kind"
	KeyHostSize     = "generator.host_size"
	KeyPatternKind  = "generator.pattern_kind"
	KeyPatternSize  = "generator.pattern_size"
	KeyParam        = "generator.param"
	KeyCopies       = "generator.copies"
	KeySeed         = "generator.seed"
	KeyLoops        = "generator.loops"
	KeyMultiplicity = "generator.max_multiplicity"
)

// Config wraps a private viper instance.
type Config struct {
	v *viper.Viper
}

// NewConfig returns a configuration populated with defaults and bound to the
// KEMBED_* environment.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(KeyAlgorithm, embed.Exact.String())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyPretty, false)

	v.SetDefault(KeyHostKind, "sparse")
	v.SetDefault(KeyHostSize, 5)
	v.SetDefault(KeyPatternKind, "chain")
	v.SetDefault(KeyPatternSize, 3)
	v.SetDefault(KeyParam, 0.5)
	v.SetDefault(KeyCopies, 1)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyLoops, false)
	v.SetDefault(KeyMultiplicity, 3)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges settings from a YAML, JSON or TOML file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)

	return c.v.ReadInConfig()
}

// Set overrides a key, typically from a command-line flag.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Algorithm resolves solver.algorithm.
func (c *Config) Algorithm() (embed.Algorithm, error) {
	return embed.ParseAlgorithm(c.v.GetString(KeyAlgorithm))
}

// LogLevel returns log.level, a zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Pretty reports whether report.pretty asks for gonum matrix rendering.
func (c *Config) Pretty() bool { return c.v.GetBool(KeyPretty) }

// HostKind returns the builder kind used for generated hosts.
func (c *Config) HostKind() string { return c.v.GetString(KeyHostKind) }

// HostSize returns the vertex count of generated hosts.
func (c *Config) HostSize() int { return c.v.GetInt(KeyHostSize) }

// PatternKind returns the builder kind used for generated patterns.
func (c *Config) PatternKind() string { return c.v.GetString(KeyPatternKind) }

// PatternSize returns the vertex count of generated patterns.
func (c *Config) PatternSize() int { return c.v.GetInt(KeyPatternSize) }

// Param returns the shape parameter passed to builder.ByName.
func (c *Config) Param() float64 { return c.v.GetFloat64(KeyParam) }

// Copies returns the k written into generated instances.
func (c *Config) Copies() int { return c.v.GetInt(KeyCopies) }

// Seed returns the RNG seed for stochastic builders.
func (c *Config) Seed() int64 { return c.v.GetInt64(KeySeed) }

// Loops reports whether stochastic builders may emit self-loops.
func (c *Config) Loops() bool { return c.v.GetBool(KeyLoops) }

// MaxMultiplicity returns the upper bound for the multi builder.
func (c *Config) MaxMultiplicity() int { return c.v.GetInt(KeyMultiplicity) }

// CreateLogger returns a console logger on out at the configured level.
// Unknown levels fall back to info.
func (c *Config) CreateLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "kembed").Logger()
}
