// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/config"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/hybrid"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/ingest"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/logging"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/metrics"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/report"
)

// cliDefaults are config.Default with parallelism matched to the CPU quota.
func cliDefaults() config.Config {
	def := config.Default()
	def.Parallelism = runtime.GOMAXPROCS(0)

	return def
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "camarades",
		Short:         "Form balanced groups from preference ballots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newConfigCmd())

	return root
}

type runFlags struct {
	configPath string
	output     string
	identity   string
}

func newRunCmd() *cobra.Command {
	var (
		f   runFlags
		v   = viper.New()
		def = cliDefaults()
	)
	cmd := &cobra.Command{
		Use:   "run BALLOTS",
		Short: "Optimize groups for a CSV, YAML or JSON ballot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithDefaults(v, f.configPath, def)
			if err != nil {
				return err
			}

			return run(cmd, cfg, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&f.output, "output", "o", report.FormatText, "report format (text|yaml|json)")
	cmd.Flags().StringVar(&f.identity, "identity-column", ingest.DefaultIdentityColumn, "CSV column holding the voter name")
	cobra.CheckErr(config.BindFlags(cmd.Flags(), v, def))

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config, f runFlags, path string) error {
	log, err := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ballots, err := ingest.LoadFile(path, ingest.CSVOptions{IdentityColumn: f.identity})
	if err != nil {
		return err
	}
	log.V(logging.DEBUG).Info("ballots loaded", "file", path, "ballots", len(ballots))

	opts := []hybrid.Option{hybrid.WithLogger(log)}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		opts = append(opts, hybrid.WithRecorder(metrics.NewPrometheus(reg, cfg.Metrics.Namespace)))
	}
	opt, err := hybrid.New(cfg, opts...)
	if err != nil {
		return err
	}

	sol, err := opt.Run(cmd.Context(), ballots)
	if err != nil {
		return err
	}
	summary, err := report.FromSolution(sol, cfg.GroupSize)
	if err != nil {
		return err
	}
	if err = report.Write(cmd.OutOrStdout(), summary, f.output); err != nil {
		return err
	}

	if reg != nil && cfg.Metrics.Textfile != "" {
		if err = prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}

func newConfigCmd() *cobra.Command {
	var (
		path string
		v    = viper.New()
		def  = cliDefaults()
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWithDefaults(v, path, def)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "YAML configuration file")
	cobra.CheckErr(config.BindFlags(cmd.Flags(), v, def))

	return cmd
}
