// SPDX-License-Identifier: MIT

// Package config holds the optimizer's run configuration.
//
// A Config is built once (Default, then file, environment and flags through
// viper), validated, and passed by value to the components that need it.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/grouping"
)

// ErrInvalid is returned by Validate for any out-of-range setting.
var ErrInvalid = errors.New("config: invalid")

// Defaults.
const (
	DefaultGroupSize          = 3
	DefaultMaxAttempts        = 10
	DefaultMaxLocalIterations = grouping.DefaultMaxIterations
	DefaultKMeansRestarts     = 10
	DefaultParallelism        = 1
)

// StrategyWeights sets how many slots of every ten consecutive attempts each
// clustering strategy receives.
type StrategyWeights struct {
	KMeans   int `mapstructure:"kmeans" yaml:"kmeans"`
	Spectral int `mapstructure:"spectral" yaml:"spectral"`
	Random   int `mapstructure:"random" yaml:"random"`
}

// Total returns the schedule period.
func (s StrategyWeights) Total() int { return s.KMeans + s.Spectral + s.Random }

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig selects metrics export.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Namespace string `mapstructure:"namespace" yaml:"namespace"`
	// Textfile, when set, receives the registry in Prometheus text format
	// after the run.
	Textfile string `mapstructure:"textfile" yaml:"textfile,omitempty"`
}

// Config is the full run configuration.
type Config struct {
	GroupSize          int      `mapstructure:"groupSize" yaml:"groupSize"`
	TotalPoints        float64  `mapstructure:"totalPoints" yaml:"totalPoints"`
	Tolerance          float64  `mapstructure:"tolerance" yaml:"tolerance"`
	MutualBonus        float64  `mapstructure:"mutualBonus" yaml:"mutualBonus"`
	UnilateralWeight   float64  `mapstructure:"unilateralWeight" yaml:"unilateralWeight"`
	EquityWeight       float64  `mapstructure:"equityWeight" yaml:"equityWeight"`
	SatisfactionWeight float64  `mapstructure:"satisfactionWeight" yaml:"satisfactionWeight"`
	MaxAttempts        int      `mapstructure:"maxAttempts" yaml:"maxAttempts"`
	MaxLocalIterations int      `mapstructure:"maxLocalIterations" yaml:"maxLocalIterations"`
	KMeansRestarts     int      `mapstructure:"kmeansRestarts" yaml:"kmeansRestarts"`
	Seed               int64    `mapstructure:"seed" yaml:"seed"`
	Parallelism        int      `mapstructure:"parallelism" yaml:"parallelism"`
	Exclusions         []string `mapstructure:"exclusions" yaml:"exclusions"`

	// Strategy, when set, pins every attempt to one clustering strategy
	// and Strategies is ignored.
	Strategy   string          `mapstructure:"strategy" yaml:"strategy,omitempty"`
	Strategies StrategyWeights `mapstructure:"strategies" yaml:"strategies"`
	Log        LogConfig       `mapstructure:"log" yaml:"log"`
	Metrics    MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
}

// Default returns the configuration of the reference system.
func Default() Config {
	return Config{
		GroupSize:          DefaultGroupSize,
		TotalPoints:        affinity.DefaultTotalPoints,
		Tolerance:          affinity.DefaultTolerance,
		MutualBonus:        affinity.DefaultMutualBonus,
		UnilateralWeight:   affinity.DefaultUnilateralWeight,
		EquityWeight:       grouping.DefaultEquityWeight,
		SatisfactionWeight: grouping.DefaultSatisfactionWeight,
		MaxAttempts:        DefaultMaxAttempts,
		MaxLocalIterations: DefaultMaxLocalIterations,
		KMeansRestarts:     DefaultKMeansRestarts,
		Parallelism:        DefaultParallelism,
		Exclusions:         []string{},
		Strategies:         StrategyWeights{KMeans: 3, Spectral: 3, Random: 4},
		Log:                LogConfig{Level: "info", Format: "console"},
		Metrics:            MetricsConfig{Namespace: "camarades"},
	}
}

// Validate checks every setting and returns the first violation wrapped in ErrInvalid.
func (c Config) Validate() error {
	if err := c.AffinityParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"equityWeight", c.EquityWeight},
		{"satisfactionWeight", c.SatisfactionWeight},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s must be finite and >= 0, got %g", ErrInvalid, f.name, f.v)
		}
	}
	switch {
	case c.GroupSize < 1:
		return fmt.Errorf("%w: groupSize must be >= 1, got %d", ErrInvalid, c.GroupSize)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: maxAttempts must be >= 1, got %d", ErrInvalid, c.MaxAttempts)
	case c.MaxLocalIterations < 0:
		return fmt.Errorf("%w: maxLocalIterations must be >= 0, got %d", ErrInvalid, c.MaxLocalIterations)
	case c.KMeansRestarts < 1:
		return fmt.Errorf("%w: kmeansRestarts must be >= 1, got %d", ErrInvalid, c.KMeansRestarts)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be >= 1, got %d", ErrInvalid, c.Parallelism)
	case c.Strategies.KMeans < 0 || c.Strategies.Spectral < 0 || c.Strategies.Random < 0:
		return fmt.Errorf("%w: strategy weights must be >= 0, got %+v", ErrInvalid, c.Strategies)
	case c.Strategies.Total() == 0:
		return fmt.Errorf("%w: at least one strategy weight must be positive", ErrInvalid)
	}
	if c.Strategy != "" {
		if _, err := cluster.ParseKind(c.Strategy); err != nil {
			return fmt.Errorf("%w: strategy: %w", ErrInvalid, err)
		}
	}
	for _, name := range c.Exclusions {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty exclusion", ErrInvalid)
		}
	}

	return nil
}

// AffinityParams maps the affinity settings.
func (c Config) AffinityParams() affinity.Params {
	return affinity.Params{
		TotalPoints:      c.TotalPoints,
		Tolerance:        c.Tolerance,
		MutualBonus:      c.MutualBonus,
		UnilateralWeight: c.UnilateralWeight,
	}
}

// ScoreParams maps the scoring settings.
func (c Config) ScoreParams() grouping.ScoreParams {
	return grouping.ScoreParams{
		TargetSize:         c.GroupSize,
		TotalPoints:        c.TotalPoints,
		MutualBonus:        c.MutualBonus,
		EquityWeight:       c.EquityWeight,
		SatisfactionWeight: c.SatisfactionWeight,
	}
}

// SearchOptions maps the local search settings.
func (c Config) SearchOptions() grouping.SearchOptions {
	opts := grouping.DefaultSearchOptions(c.GroupSize)
	opts.MaxIterations = c.MaxLocalIterations

	return opts
}

// ScheduleWeights returns the weights attempts are scheduled with: a single
// slot for Strategy when it names a strategy, Strategies otherwise.
func (c Config) ScheduleWeights() StrategyWeights {
	if c.Strategy == "" {
		return c.Strategies
	}
	k, err := cluster.ParseKind(c.Strategy)
	if err != nil {
		return c.Strategies
	}
	switch k {
	case cluster.KindSpectral:
		return StrategyWeights{Spectral: 1}
	case cluster.KindRandom:
		return StrategyWeights{Random: 1}
	default:
		return StrategyWeights{KMeans: 1}
	}
}

// Marshal renders c as a YAML document readable by Load.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
