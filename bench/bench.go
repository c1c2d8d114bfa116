// Package bench compares pair selection strategies by their step counts on random binomial ideals.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	groebner "github.com/jonathanmweiss/go-groebner"
	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/ideal"
)

var log = logging.Logger("bench")

var ErrStrategiesDisagree = errors.New("strategies produced different leading-term ideals")

// Trial holds the results of every strategy on one generated ideal.
type Trial struct {
	Index      int            `json:"index"`
	Generators []string       `json:"generators"`
	Steps      map[string]int `json:"steps"`
	BasisSize  map[string]int `json:"basis_size"`
	Iterations map[string]int `json:"iterations"`
}

type Summary struct {
	Strategy string  `json:"strategy"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Total    int     `json:"total"`
}

type Report struct {
	Config  Config    `json:"config"`
	Trials  []Trial   `json:"trials"`
	Summary []Summary `json:"summary"`
}

// trialSeed derives independent, reproducible seeds for every trial.
func trialSeed(base uint64, index int) uint64 {
	return base*0x100000001b3 + uint64(index)
}

/*
Run generates cfg.Ideals ideals and computes a basis of each with every
strategy. Ideals are processed concurrently, but each run gets its own engine
and random source, so results only depend on cfg.
*/
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := field.NewPrimeField(cfg.Prime)
	if err != nil {
		return nil, fmt.Errorf("%w: prime %d: %v", ErrInvalidConfig, cfg.Prime, err)
	}

	ring, err := field.NewPolyRing(f, cfg.NVar)
	if err != nil {
		return nil, err
	}

	mode, err := ideal.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	trials := make([]Trial, cfg.Ideals)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range trials {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t, err := runTrial(ring, mode, cfg, i)
			if err != nil {
				return fmt.Errorf("ideal %d: %w", i, err)
			}

			trials[i] = t

			log.Infow("trial done", "ideal", i, "steps", t.Steps)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Config:  cfg,
		Trials:  trials,
		Summary: summarize(trials),
	}, nil
}

func runTrial(ring *field.PolyRing, mode ideal.Mode, cfg Config, index int) (Trial, error) {
	seed := trialSeed(cfg.Seed, index)

	gen, err := ideal.NewGenerator(ring, cfg.MaxDegree, cfg.MaxCoeff, groebner.NewRand(seed))
	if err != nil {
		return Trial{}, err
	}

	F, err := gen.Ideal(cfg.Generators, mode)
	if err != nil {
		return Trial{}, err
	}

	t := Trial{
		Index:      index,
		Generators: make([]string, len(F)),
		Steps:      make(map[string]int, len(groebner.Strategies)),
		BasisSize:  make(map[string]int, len(groebner.Strategies)),
		Iterations: make(map[string]int, len(groebner.Strategies)),
	}

	for i, p := range F {
		t.Generators[i] = p.String()
	}

	var reference []*field.Polynomial
	for k, s := range groebner.Strategies {
		e, err := groebner.NewEngine(groebner.WithStrategy(s), groebner.WithSeed(seed+uint64(k)+1))
		if err != nil {
			return Trial{}, err
		}

		res, err := e.Run(F)
		if err != nil {
			return Trial{}, err
		}

		t.Steps[res.Strategy] = res.Steps
		t.BasisSize[res.Strategy] = len(res.Basis)
		t.Iterations[res.Strategy] = res.Iterations

		if !cfg.Verify {
			continue
		}

		if reference == nil {
			reference = res.Basis
		} else if !groebner.SameLeadingTermIdeal(reference, res.Basis) {
			return Trial{}, fmt.Errorf("%w: %s on %v", ErrStrategiesDisagree, s, t.Generators)
		}
	}

	return t, nil
}

func summarize(trials []Trial) []Summary {
	out := make([]Summary, 0, len(groebner.Strategies))

	for _, s := range groebner.Strategies {
		name := string(s)

		steps := make([]int, len(trials))
		for i, t := range trials {
			steps[i] = t.Steps[name]
		}

		out = append(out, summarizeSteps(name, steps))
	}

	return out
}

func summarizeSteps(name string, steps []int) Summary {
	sm := Summary{Strategy: name}
	if len(steps) == 0 {
		return sm
	}

	sorted := slices.Clone(steps)
	slices.Sort(sorted)

	for _, v := range sorted {
		sm.Total += v
	}

	n := len(sorted)
	sm.Min, sm.Max = sorted[0], sorted[n-1]
	sm.Mean = float64(sm.Total) / float64(n)

	if n%2 == 1 {
		sm.Median = float64(sorted[n/2])
	} else {
		sm.Median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return sm
}
