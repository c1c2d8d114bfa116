package bench

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/ideal"
)

// Config describes one benchmark: Ideals random ideals, each with Generators
// binomials in NVar variables of degree at most MaxDegree.
type Config struct {
	NVar       int    `yaml:"nvar" json:"nvar"`
	MaxDegree  int    `yaml:"max_degree" json:"max_degree"`
	Generators int    `yaml:"generators" json:"generators"`
	Ideals     int    `yaml:"ideals" json:"ideals"`
	MaxCoeff   int    `yaml:"max_coeff" json:"max_coeff"`
	Mode       string `yaml:"mode" json:"mode"`
	Prime      uint64 `yaml:"prime" json:"prime"`
	Seed       uint64 `yaml:"seed" json:"seed"`
	// Workers bounds the number of ideals processed concurrently.
	Workers int `yaml:"workers" json:"workers"`
	// Verify checks that all strategies agree on the leading-term ideal.
	Verify bool `yaml:"verify" json:"verify"`
}

var ErrInvalidConfig = errors.New("invalid benchmark configuration")

func DefaultConfig() Config {
	return Config{
		NVar:       3,
		MaxDegree:  3,
		Generators: 3,
		Ideals:     20,
		MaxCoeff:   ideal.DefaultMaxCoeff,
		Mode:       string(ideal.ModeWeighted),
		Prime:      field.DefaultPrime,
		Seed:       1,
		Workers:    runtime.NumCPU(),
		Verify:     true,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.NVar < 1:
		return fmt.Errorf("%w: nvar must be positive, got %d", ErrInvalidConfig, c.NVar)
	case c.MaxDegree < 1:
		return fmt.Errorf("%w: max_degree must be positive, got %d", ErrInvalidConfig, c.MaxDegree)
	case c.Generators < 1:
		return fmt.Errorf("%w: generators must be positive, got %d", ErrInvalidConfig, c.Generators)
	case c.Ideals < 1:
		return fmt.Errorf("%w: ideals must be positive, got %d", ErrInvalidConfig, c.Ideals)
	case c.MaxCoeff < 1:
		return fmt.Errorf("%w: max_coeff must be positive, got %d", ErrInvalidConfig, c.MaxCoeff)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}

	if _, err := ideal.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
