package main

import (
	"fmt"

	"github.com/spf13/cobra"

	groebner "github.com/jonathanmweiss/go-groebner"
	"github.com/jonathanmweiss/go-groebner/field"
)

var (
	basisNVar     int
	basisPrime    uint64
	basisStrategy string
	basisSeed     uint64
	basisMonic    bool

	basisCmd = &cobra.Command{
		Use:     "basis [polynomial...]",
		Short:   "Compute a Gröbner basis of the ideal generated by the given polynomials",
		Example: `  groebner basis -n 2 "x1^2 - x2" "x1*x2 - 1"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runBasis,
	}
)

func runBasis(cmd *cobra.Command, args []string) error {
	f, err := field.NewPrimeField(basisPrime)
	if err != nil {
		return fmt.Errorf("prime %d: %w", basisPrime, err)
	}

	ring, err := field.NewPolyRing(f, basisNVar)
	if err != nil {
		return err
	}

	F, err := ring.ParseAll(args)
	if err != nil {
		return err
	}

	strategy, err := groebner.ParseStrategy(basisStrategy)
	if err != nil {
		return err
	}

	opts := []groebner.Option{groebner.WithStrategy(strategy)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, groebner.WithSeed(basisSeed))
	}

	engine, err := groebner.NewEngine(opts...)
	if err != nil {
		return err
	}

	res, err := engine.Run(F)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, g := range res.Basis {
		if basisMonic {
			g = g.Monic()
		}

		fmt.Fprintln(out, g)
	}

	fmt.Fprintf(out, "# strategy=%s basis=%d iterations=%d steps=%d\n",
		res.Strategy, len(res.Basis), res.Iterations, res.Steps)

	return nil
}
