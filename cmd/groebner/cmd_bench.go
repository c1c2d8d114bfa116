package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-groebner/bench"
)

var (
	benchConfigPath string
	benchOverrides  bench.Config
	benchOut        string
	benchChart      string

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Compare pair selection strategies on random binomial ideals",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
)

// loadBenchConfig reads the config file, if any, and applies the flags that were set.
func loadBenchConfig(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if benchConfigPath != "" {
		var err error
		if cfg, err = bench.LoadConfig(benchConfigPath); err != nil {
			return bench.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("vars") {
		cfg.NVar = benchOverrides.NVar
	}
	if flags.Changed("max-degree") {
		cfg.MaxDegree = benchOverrides.MaxDegree
	}
	if flags.Changed("generators") {
		cfg.Generators = benchOverrides.Generators
	}
	if flags.Changed("ideals") {
		cfg.Ideals = benchOverrides.Ideals
	}
	if flags.Changed("mode") {
		cfg.Mode = benchOverrides.Mode
	}
	if flags.Changed("seed") {
		cfg.Seed = benchOverrides.Seed
	}
	if flags.Changed("workers") {
		cfg.Workers = benchOverrides.Workers
	}

	return cfg, cfg.Validate()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadBenchConfig(cmd)
	if err != nil {
		return err
	}

	log.Infow("starting benchmark", "ideals", cfg.Ideals, "nvar", cfg.NVar, "mode", cfg.Mode)

	rep, err := bench.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := printSummary(cmd.OutOrStdout(), rep); err != nil {
		return err
	}

	if benchOut != "" {
		if err := writeFile(benchOut, func(w io.Writer) error { return bench.WriteJSON(w, rep) }); err != nil {
			return err
		}
	}

	if benchChart != "" {
		if err := writeFile(benchChart, func(w io.Writer) error { return bench.RenderChart(w, rep) }); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(w io.Writer, rep *bench.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "strategy\tmean\tmedian\tmin\tmax\ttotal")
	for _, s := range rep.Summary {
		fmt.Fprintf(tw, "%s\t%.2f\t%.1f\t%d\t%d\t%d\n", s.Strategy, s.Mean, s.Median, s.Min, s.Max, s.Total)
	}

	return tw.Flush()
}

func writeFile(path string, write func(io.Writer) error) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(fd); err != nil {
		fd.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Infow("wrote file", "path", path)

	return fd.Close()
}
