package sampling

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-jury"
)

// Kind names a supported competence distribution.
type Kind string

const (
	UniformKind  Kind = "uniform"
	BetaKind     Kind = "beta"
	ConstantKind Kind = "constant"
)

// ErrUnknownKind is returned by New for an unsupported distribution kind.
var ErrUnknownKind = errors.New("unknown distribution kind")

// Config declares a competence distribution.
//
//	uniform:  Min, Max with 0 <= Min < Max <= 1
//	beta:     Alpha, Beta > 0
//	constant: Value in [0, 1]
//
// Name overrides the generated report name (e.g. "beta[2,2]").
type Config struct {
	Name  string  `yaml:"name,omitempty" json:"name,omitempty"`
	Kind  Kind    `yaml:"kind" json:"kind" validate:"required,oneof=uniform beta constant"`
	Min   float64 `yaml:"min,omitempty" json:"min,omitempty" validate:"min=0,max=1"`
	Max   float64 `yaml:"max,omitempty" json:"max,omitempty" validate:"min=0,max=1"`
	Alpha float64 `yaml:"alpha,omitempty" json:"alpha,omitempty" validate:"min=0"`
	Beta  float64 `yaml:"beta,omitempty" json:"beta,omitempty" validate:"min=0"`
	Value float64 `yaml:"value,omitempty" json:"value,omitempty" validate:"min=0,max=1"`
}

// New builds the sampler described by cfg, drawing randomness from src.
func New(cfg Config, src rand.Source) (jury.CompetenceSampler, error) {
	switch cfg.Kind {
	case UniformKind:
		if cfg.Min >= cfg.Max {
			return nil, errors.Errorf("uniform distribution needs min < max, got [%v, %v]", cfg.Min, cfg.Max)
		}

		u := NewUniform(cfg.Min, cfg.Max, src)
		if cfg.Name != "" {
			u.name = cfg.Name
		}
		return u, nil
	case BetaKind:
		if cfg.Alpha <= 0 || cfg.Beta <= 0 {
			return nil, errors.Errorf("beta distribution needs alpha, beta > 0, got (%v, %v)", cfg.Alpha, cfg.Beta)
		}

		b := NewBeta(cfg.Alpha, cfg.Beta, src)
		if cfg.Name != "" {
			b.name = cfg.Name
		}
		return b, nil
	case ConstantKind:
		c := NewConstant(cfg.Value)
		if cfg.Name != "" {
			c.name = cfg.Name
		}
		return c, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", cfg.Kind)
	}
}
