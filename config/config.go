// SPDX-License-Identifier: MIT

// Package config loads lvrank settings from defaults, an optional config
// file, LVRANK_* environment variables and CLI flags via viper, then
// validates them and translates them into the option types of the
// algorithm packages.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/montecarlo"
	"github.com/katalvlaran/lvrank/power"
	"github.com/katalvlaran/lvrank/report"
	"github.com/katalvlaran/lvrank/topk"
)

// EnvPrefix is prepended to every environment override (LVRANK_NODES, ...).
const EnvPrefix = "LVRANK"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig selects the report sink.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Config holds all runtime configuration for one experiment.
type Config struct {
	Nodes      int          `mapstructure:"nodes"`
	Iterations int          `mapstructure:"iterations"`
	Teleport   float64      `mapstructure:"teleport"`
	Tolerance  float64      `mapstructure:"tolerance"`
	Walks      []int        `mapstructure:"walks"`
	TopK       []int        `mapstructure:"top_k"`
	Seed       int64        `mapstructure:"seed"`
	Workers    int          `mapstructure:"workers"`
	Dangling   string       `mapstructure:"dangling"`
	Duplicates string       `mapstructure:"duplicates"`
	StartVisit bool         `mapstructure:"start_visit"`
	Order      string       `mapstructure:"order"`
	Log        LogConfig    `mapstructure:"log"`
	Output     OutputConfig `mapstructure:"output"`
}

// New returns a viper instance with defaults registered and environment
// overrides enabled. Nested keys map to env names with '_' (log.level ⇒
// LVRANK_LOG_LEVEL).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("nodes", 100)
	v.SetDefault("iterations", power.DefaultIterations)
	v.SetDefault("teleport", power.DefaultTeleport)
	v.SetDefault("tolerance", 0.0)
	v.SetDefault("walks", []int{1, 3, 5})
	v.SetDefault("top_k", []int{10, 30, 50, 100})
	v.SetDefault("seed", int64(0))
	v.SetDefault("workers", montecarlo.DefaultWorkers)
	v.SetDefault("dangling", matrix.DefaultDangling.String())
	v.SetDefault("duplicates", matrix.DefaultDuplicates.String())
	v.SetDefault("start_visit", montecarlo.DefaultStartVisit)
	v.SetDefault("order", topk.ByApprox.String())
	v.SetDefault("log.level", zerolog.InfoLevel.String())
	v.SetDefault("output.format", report.FormatText)
}

// Load reads v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("Load: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enum names. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 1:
		return invalid("nodes=%d must be >= 1", c.Nodes)
	case c.Iterations < 1:
		return invalid("iterations=%d must be >= 1", c.Iterations)
	case !(c.Teleport > 0 && c.Teleport < 1):
		return invalid("teleport=%g must be in (0,1)", c.Teleport)
	case !(c.Tolerance >= 0):
		return invalid("tolerance=%g must be >= 0", c.Tolerance)
	case len(c.Walks) == 0:
		return invalid("walks must not be empty")
	case c.Workers < 1:
		return invalid("workers=%d must be >= 1", c.Workers)
	}
	for _, w := range c.Walks {
		if w < 1 {
			return invalid("walks entry %d must be >= 1", w)
		}
	}
	for _, k := range c.TopK {
		if k < 1 {
			return invalid("top_k entry %d must be >= 1", k)
		}
	}
	if _, err := matrix.ParseDanglingPolicy(c.Dangling); err != nil {
		return invalid("%v", err)
	}
	if _, err := matrix.ParseDuplicatePolicy(c.Duplicates); err != nil {
		return invalid("%v", err)
	}
	if _, err := topk.ParseRanking(strings.ToLower(c.Order)); err != nil {
		return invalid("%v", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return invalid("log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Output.Format) {
	case report.FormatText, report.FormatJSON, report.FormatLog:
	default:
		return invalid("output.format %q", c.Output.Format)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("Validate: %s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// MatrixOptions returns the loader options. c must be valid.
func (c Config) MatrixOptions() []matrix.Option {
	dangling, _ := matrix.ParseDanglingPolicy(c.Dangling)
	duplicates, _ := matrix.ParseDuplicatePolicy(c.Duplicates)

	return []matrix.Option{matrix.WithDangling(dangling), matrix.WithDuplicates(duplicates)}
}

// PowerOptions returns the solver options.
func (c Config) PowerOptions() power.Options {
	return power.Options{
		Teleport:   c.Teleport,
		Iterations: c.Iterations,
		Tolerance:  c.Tolerance,
	}
}

// SamplerOptions returns the sampler options for the given base seed.
// c must be valid.
func (c Config) SamplerOptions(seed int64) []montecarlo.Option {
	return []montecarlo.Option{
		montecarlo.WithTeleport(c.Teleport),
		montecarlo.WithSeed(seed),
		montecarlo.WithWorkers(c.Workers),
		montecarlo.WithStartVisit(c.StartVisit),
	}
}

// TopKOptions returns the evaluator options. c must be valid.
func (c Config) TopKOptions() []topk.Option {
	ranking, _ := topk.ParseRanking(strings.ToLower(c.Order))

	return []topk.Option{topk.WithRanking(ranking)}
}

// Logger builds a console logger on stderr at the configured level.
func (c Config) Logger() zerolog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo is Logger with an explicit writer.
func (c Config) LoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "lvrank").Logger()
}
