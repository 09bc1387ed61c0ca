// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
)

// EnvPrefix prefixes environment overrides, e.g. CAMARADES_GROUPSIZE or
// CAMARADES_LOG_LEVEL.
const EnvPrefix = "CAMARADES"

// ErrRead wraps failures to read the configuration file.
var ErrRead = errors.New("config: read failed")

// Load resolves a Config from Default, the file at path (skipped when empty),
// CAMARADES_* environment variables and any flags already bound to v, in
// increasing precedence. The result is validated.
func Load(v *viper.Viper, path string) (Config, error) {
	return LoadWithDefaults(v, path, Default())
}

// LoadWithDefaults is Load with caller-supplied defaults.
func LoadWithDefaults(v *viper.Viper, path string, def Config) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	for key, value := range def.settings() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// settings flattens c into viper keys.
func (c Config) settings() map[string]any {
	return map[string]any{
		"groupSize":           c.GroupSize,
		"totalPoints":         c.TotalPoints,
		"tolerance":           c.Tolerance,
		"mutualBonus":         c.MutualBonus,
		"unilateralWeight":    c.UnilateralWeight,
		"equityWeight":        c.EquityWeight,
		"satisfactionWeight":  c.SatisfactionWeight,
		"maxAttempts":         c.MaxAttempts,
		"maxLocalIterations":  c.MaxLocalIterations,
		"kmeansRestarts":      c.KMeansRestarts,
		"seed":                c.Seed,
		"parallelism":         c.Parallelism,
		"exclusions":          c.Exclusions,
		"strategy":            c.Strategy,
		"strategies.kmeans":   c.Strategies.KMeans,
		"strategies.spectral": c.Strategies.Spectral,
		"strategies.random":   c.Strategies.Random,
		"log.level":           c.Log.Level,
		"log.format":          c.Log.Format,
		"metrics.enabled":     c.Metrics.Enabled,
		"metrics.namespace":   c.Metrics.Namespace,
		"metrics.textfile":    c.Metrics.Textfile,
	}
}

// flagKeys maps CLI flag names to viper keys.
var flagKeys = []struct{ flag, key string }{
	{"group-size", "groupSize"},
	{"total-points", "totalPoints"},
	{"tolerance", "tolerance"},
	{"mutual-bonus", "mutualBonus"},
	{"unilateral-weight", "unilateralWeight"},
	{"equity-weight", "equityWeight"},
	{"satisfaction-weight", "satisfactionWeight"},
	{"max-attempts", "maxAttempts"},
	{"max-local-iterations", "maxLocalIterations"},
	{"kmeans-restarts", "kmeansRestarts"},
	{"seed", "seed"},
	{"parallelism", "parallelism"},
	{"exclude", "exclusions"},
	{"strategy", "strategy"},
	{"log-level", "log.level"},
	{"log-format", "log.format"},
	{"metrics", "metrics.enabled"},
	{"metrics-textfile", "metrics.textfile"},
}

// kindNames lists the clustering strategies as a|b|c.
func kindNames() string {
	names := make([]string, len(cluster.Kinds))
	for i, k := range cluster.Kinds {
		names[i] = k.String()
	}

	return strings.Join(names, "|")
}

// BindFlags registers one flag per setting on fs, with def supplying the
// help defaults, and binds them to v. Only flags the user sets override
// file and environment values.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper, def Config) error {
	fs.Int("group-size", def.GroupSize, "target number of people per group")
	fs.Float64("total-points", def.TotalPoints, "points each participant distributes")
	fs.Float64("tolerance", def.Tolerance, "allowed deviation from total-points before a warning")
	fs.Float64("mutual-bonus", def.MutualBonus, "multiplier for reciprocated points")
	fs.Float64("unilateral-weight", def.UnilateralWeight, "multiplier for one-way points")
	fs.Float64("equity-weight", def.EquityWeight, "weight of the size equity term")
	fs.Float64("satisfaction-weight", def.SatisfactionWeight, "weight of the satisfaction term")
	fs.Int("max-attempts", def.MaxAttempts, "number of clustering attempts")
	fs.Int("max-local-iterations", def.MaxLocalIterations, "accepted local search moves per attempt")
	fs.Int("kmeans-restarts", def.KMeansRestarts, "k-means++ restarts per clustering")
	fs.Int64("seed", def.Seed, "base random seed (0 selects the default stream)")
	fs.Int("parallelism", def.Parallelism, "attempts evaluated concurrently")
	fs.StringSlice("exclude", def.Exclusions, "participant names to leave out")
	fs.String("strategy", def.Strategy, "run every attempt with one strategy ("+kindNames()+"); empty mixes them by weight")
	fs.String("log-level", def.Log.Level, "log level (trace|debug|info|warn|error)")
	fs.String("log-format", def.Log.Format, "log format (console|json)")
	fs.Bool("metrics", def.Metrics.Enabled, "record Prometheus metrics")
	fs.String("metrics-textfile", def.Metrics.Textfile, "write metrics in text format to this file")

	for _, fk := range flagKeys {
		if err := v.BindPFlag(fk.key, fs.Lookup(fk.flag)); err != nil {
			return fmt.Errorf("config: bind --%s: %w", fk.flag, err)
		}
	}

	return nil
}
