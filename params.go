package jury

import (
	"fmt"
	"math"
)

// PolicyKind selects the function of n used by a KPolicy.
type PolicyKind string

const (
	// ConstK always selects Value experts.
	ConstK PolicyKind = "const"
	// LogK selects the odd size just above ln(Scale*n).
	LogK PolicyKind = "log"
	// PowK selects the odd size just above (Scale*n)^Exponent.
	PowK PolicyKind = "pow"
)

// KPolicy decides how many of the most competent experts vote,
// as a function of the pool size n. An empty Scale is treated as 1.
//
// Examples:
//
//	{Kind: ConstK, Value: 3}                    -> 3
//	{Kind: LogK}                                -> odd above ln(n)
//	{Kind: PowK, Exponent: 0.4}                 -> odd above n^0.4
//	{Kind: PowK, Scale: 0.75, Exponent: 0.5}    -> odd above sqrt(3n/4)
//	{Kind: PowK, Scale: 0.5, Exponent: 1}       -> odd above n/2
type KPolicy struct {
	Name     string     `yaml:"name" json:"name" validate:"required"`
	Kind     PolicyKind `yaml:"kind" json:"kind" validate:"required,oneof=const log pow"`
	Value    int        `yaml:"value,omitempty" json:"value,omitempty" validate:"required_if=Kind const,min=0"`
	Scale    float64    `yaml:"scale,omitempty" json:"scale,omitempty" validate:"min=0"`
	Exponent float64    `yaml:"exponent,omitempty" json:"exponent,omitempty" validate:"required_if=Kind pow"`

	// Strict uses StrictOddLarger instead of SmallestOddLarger, so that
	// an ideal size which is already an odd integer is bumped by two.
	Strict bool `yaml:"strict,omitempty" json:"strict,omitempty"`
}

// Ideal returns the continuous jury size before rounding to an odd integer.
func (p KPolicy) Ideal(n int) float64 {
	x := p.scale() * float64(n)
	switch p.Kind {
	case ConstK:
		return float64(p.Value)
	case LogK:
		return math.Log(x)
	case PowK:
		return math.Pow(x, p.Exponent)
	default:
		panic(fmt.Errorf("unknown k-policy kind %q for policy %q", p.Kind, p.Name))
	}
}

// K returns the number of top experts that vote in a pool of n.
func (p KPolicy) K(n int) int {
	if p.Kind == ConstK {
		return p.Value
	}

	if p.Strict {
		return StrictOddLarger(p.Ideal(n))
	}

	return SmallestOddLarger(p.Ideal(n))
}

func (p KPolicy) scale() float64 {
	if p.Scale == 0 {
		return 1.0
	}

	return p.Scale
}

// PolicyNames returns the names of the given policies, in order.
func PolicyNames(policies []KPolicy) []string {
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.Name
	}

	return names
}
