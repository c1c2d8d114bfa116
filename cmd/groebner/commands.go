package main

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-groebner/field"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "groebner",
		Short: "Gröbner bases over small prime fields with Buchberger's algorithm",
		Long: `groebner computes Gröbner bases of polynomial ideals over Z/pZ and
compares critical pair selection strategies by the number of reduction steps.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.LevelFromString(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}

			logging.SetAllLoggers(level)

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	basisCmd.Flags().IntVarP(&basisNVar, "vars", "n", 2, "number of variables x1..xn")
	basisCmd.Flags().Uint64VarP(&basisPrime, "prime", "p", field.DefaultPrime, "field modulus, must be prime")
	basisCmd.Flags().StringVarP(&basisStrategy, "strategy", "s", "first", "pair selection: random, first or degree")
	basisCmd.Flags().Uint64Var(&basisSeed, "seed", 0, "seed for the random choices")
	basisCmd.Flags().BoolVar(&basisMonic, "monic", false, "print basis elements scaled to leading coefficient 1")

	benchCmd.Flags().StringVarP(&benchConfigPath, "config", "c", "", "YAML benchmark configuration")
	benchCmd.Flags().IntVar(&benchOverrides.NVar, "vars", 0, "number of variables")
	benchCmd.Flags().IntVar(&benchOverrides.MaxDegree, "max-degree", 0, "maximal degree of a generator")
	benchCmd.Flags().IntVar(&benchOverrides.Generators, "generators", 0, "generators per ideal")
	benchCmd.Flags().IntVar(&benchOverrides.Ideals, "ideals", 0, "number of random ideals")
	benchCmd.Flags().StringVar(&benchOverrides.Mode, "mode", "", "sampling mode: weighted or uniform")
	benchCmd.Flags().Uint64Var(&benchOverrides.Seed, "seed", 0, "base seed")
	benchCmd.Flags().IntVar(&benchOverrides.Workers, "workers", 0, "ideals processed concurrently")
	benchCmd.Flags().StringVarP(&benchOut, "out", "o", "", "write the JSON report to this file")
	benchCmd.Flags().StringVar(&benchChart, "chart", "", "write an HTML chart to this file")

	rootCmd.AddCommand(basisCmd, benchCmd)
}
