package groebner

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/dolthub/swiss"
	logging "github.com/ipfs/go-log/v2"

	"github.com/jonathanmweiss/go-groebner/field"
)

var log = logging.Logger("groebner")

var (
	ErrNoGenerators  = errors.New("at least one generator is required")
	ErrNilGenerator  = errors.New("generator list contains a nil polynomial")
	ErrZeroGenerator = errors.New("generator list contains the zero polynomial")
	ErrFieldMismatch = errors.New("generators are defined over different fields")
)

// Iteration describes one pass of the Buchberger loop, as handed to a TraceFunc.
type Iteration struct {
	Index     int
	Pair      CriticalPair
	Remainder *field.Polynomial
	// Steps taken by the normal form of this iteration's S-polynomial.
	Steps int
	// Total is the running step count including this iteration.
	Total     int
	BasisSize int
	Pending   int
}

type TraceFunc func(Iteration)

// Result of a Buchberger run.
type Result struct {
	Strategy string
	// Basis is a Gröbner basis of the input ideal, neither minimal nor reduced.
	Basis []*field.Polynomial
	// Steps counts the S-polynomial constructions plus all reduction steps.
	Steps      int
	Iterations int
}

/*
Engine runs Buchberger's algorithm with a pluggable pair selection policy.

An Engine carries mutable selector and random state: it must not be used by
more than one goroutine at a time. Give every concurrent run its own engine.
*/
type Engine struct {
	strategy Strategy
	selector Selector
	rng      RandSource
	trace    TraceFunc
}

type Option func(*Engine) error

// WithStrategy selects one of the built-in strategies. Defaults to StrategyFirst.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) error {
		if _, err := ParseStrategy(string(s)); err != nil {
			return err
		}

		e.strategy = s

		return nil
	}
}

// WithSelector installs a custom selector, taking precedence over WithStrategy.
func WithSelector(sel Selector) Option {
	return func(e *Engine) error {
		if sel == nil {
			return errors.New("nil selector")
		}

		e.selector = sel

		return nil
	}
}

// WithRand sets the source for every random choice of the engine.
func WithRand(rng RandSource) Option {
	return func(e *Engine) error {
		if rng == nil {
			return errors.New("nil random source")
		}

		e.rng = rng

		return nil
	}
}

// WithSeed makes runs reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(NewRand(seed))
}

func WithTrace(fn TraceFunc) Option {
	return func(e *Engine) error {
		e.trace = fn

		return nil
	}
}

func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{strategy: StrategyFirst}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.rng == nil {
		e.rng = NewRand(rand.Uint64())
	}

	if e.selector == nil {
		sel, err := NewSelector(e.strategy, e.rng)
		if err != nil {
			return nil, err
		}

		e.selector = sel
	}

	return e, nil
}

func (e *Engine) Strategy() string {
	return e.selector.Name()
}

// basis is a duplicate-free, insertion-ordered collection of polynomials.
type basis struct {
	elems []*field.Polynomial
	index *swiss.Map[string, struct{}]
}

func newBasis(capacity int) *basis {
	return &basis{index: swiss.NewMap[string, struct{}](uint32(capacity))}
}

func (b *basis) add(p *field.Polynomial) (added bool) {
	if b.index.Has(p.Key()) {
		return false
	}

	b.index.Put(p.Key(), struct{}{})
	b.elems = append(b.elems, p)

	return true
}

func validateGenerators(F []*field.Polynomial) error {
	if len(F) == 0 {
		return ErrNoGenerators
	}

	for i, f := range F {
		if f == nil {
			return fmt.Errorf("%w: index %d", ErrNilGenerator, i)
		}

		if f.IsZero() {
			return fmt.Errorf("%w: index %d", ErrZeroGenerator, i)
		}

		if f.Field().Modulus() != F[0].Field().Modulus() {
			return fmt.Errorf("%w: index %d has modulus %d, expected %d",
				ErrFieldMismatch, i, f.Field().Modulus(), F[0].Field().Modulus())
		}

		if f.NVar() != F[0].NVar() {
			return fmt.Errorf("%w: index %d has %d variables, expected %d",
				field.ErrNVarMismatch, i, f.NVar(), F[0].NVar())
		}
	}

	return nil
}

/*
Run computes a Gröbner basis of the ideal generated by F.

Every pending critical pair is turned into an S-polynomial and top-reduced
against the current basis. A nonzero remainder joins the basis together with
its pairs against every other basis element. The loop ends once no pair is
pending; each accepted remainder enlarges the leading-term ideal of the basis,
which can only happen finitely often.

Steps adds one per S-polynomial and one per reduction step.
*/
func (e *Engine) Run(F []*field.Polynomial) (*Result, error) {
	if err := validateGenerators(F); err != nil {
		return nil, err
	}

	G := newBasis(len(F))
	for _, f := range F {
		G.add(f)
	}

	P := NewPendingSet()
	for i := range G.elems {
		for j := i + 1; j < len(G.elems); j++ {
			P.Add(NewCriticalPair(G.elems[i], G.elems[j]))
		}
	}

	total := 0
	iterations := 0

	for P.Len() > 0 {
		pair := e.selector.Select(P)
		iterations++

		s := SPolynomial(pair.F, pair.G)
		r, k := NormalForm(s, G.elems, e.rng)
		total += k + 1

		if !r.IsZero() && G.add(r) {
			for _, h := range G.elems {
				if h == r {
					continue
				}

				P.Add(NewCriticalPair(h, r))
			}
		}

		e.emit(Iteration{
			Index:     iterations,
			Pair:      pair,
			Remainder: r,
			Steps:     k,
			Total:     total,
			BasisSize: len(G.elems),
			Pending:   P.Len(),
		})
	}

	log.Debugw("basis complete",
		"strategy", e.selector.Name(),
		"generators", len(F),
		"basis", len(G.elems),
		"iterations", iterations,
		"steps", total,
	)

	return &Result{
		Strategy:   e.selector.Name(),
		Basis:      G.elems,
		Steps:      total,
		Iterations: iterations,
	}, nil
}

func (e *Engine) emit(it Iteration) {
	log.Debugw("iteration",
		"strategy", e.selector.Name(),
		"n", it.Index,
		"f", it.Pair.F,
		"g", it.Pair.G,
		"remainder", it.Remainder,
		"total", it.Total,
	)

	if e.trace != nil {
		e.trace(it)
	}
}
