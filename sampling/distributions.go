// Package sampling provides competence distributions for simulated juries.
package sampling

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/timpalpant/go-jury"
)

var (
	_ jury.CompetenceSampler = (*Uniform)(nil)
	_ jury.CompetenceSampler = (*Beta)(nil)
	_ jury.CompetenceSampler = (*Constant)(nil)
)

// Uniform implements jury.CompetenceSampler by drawing competencies
// uniformly from [Min, Max].
type Uniform struct {
	name string
	dist distuv.Uniform
}

func NewUniform(min, max float64, src rand.Source) *Uniform {
	return &Uniform{
		name: fmt.Sprintf("uniform[%v,%v]", trim(min), trim(max)),
		dist: distuv.Uniform{Min: min, Max: max, Src: src},
	}
}

func (u *Uniform) Name() string { return u.name }

func (u *Uniform) Sample(dst []jury.Competence) {
	for i := range dst {
		dst[i] = u.dist.Rand()
	}
}

// Beta implements jury.CompetenceSampler by drawing competencies from
// a Beta(Alpha, Beta) distribution.
type Beta struct {
	name string
	dist distuv.Beta
}

func NewBeta(alpha, beta float64, src rand.Source) *Beta {
	return &Beta{
		name: fmt.Sprintf("beta[%v,%v]", trim(alpha), trim(beta)),
		dist: distuv.Beta{Alpha: alpha, Beta: beta, Src: src},
	}
}

func (b *Beta) Name() string { return b.name }

func (b *Beta) Sample(dst []jury.Competence) {
	for i := range dst {
		dst[i] = b.dist.Rand()
	}
}

// Constant implements jury.CompetenceSampler with a degenerate
// distribution: every expert has the same competence.
type Constant struct {
	name  string
	value float64
}

func NewConstant(value float64) *Constant {
	return &Constant{
		name:  fmt.Sprintf("constant[%v]", trim(value)),
		value: value,
	}
}

func (c *Constant) Name() string { return c.name }

func (c *Constant) Sample(dst []jury.Competence) {
	for i := range dst {
		dst[i] = c.value // memset
	}
}

// trim formats .1 rather than 0.1, matching the report names
// of the default sweep (e.g. "uniform[.1,.9]").
func trim(x float64) string {
	s := fmt.Sprintf("%v", x)
	if len(s) > 2 && s[0] == '0' && s[1] == '.' {
		return s[1:]
	}

	return s
}
