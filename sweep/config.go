// Package sweep runs the top-k jury experiment over a grid of
// competence distributions and pool sizes.
package sweep

import (
	"bytes"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/go-jury"
	"github.com/timpalpant/go-jury/sampling"
)

var validate = validator.New()

// Config declares a parameter sweep. Every (distribution, n) pair is
// simulated Iterations times with batches of BatchSize juries.
type Config struct {
	// BatchSize is the number of juries simulated together.
	BatchSize int `yaml:"batch_size" json:"batch_size" validate:"required,min=1"`

	// Iterations is the number of batches per (distribution, n) pair.
	Iterations int `yaml:"iterations" json:"iterations" validate:"required,min=1"`

	// ProgressEvery logs progress every this many iterations. Zero disables it.
	ProgressEvery int `yaml:"progress_every" json:"progress_every" validate:"min=0"`

	NValues       []int             `yaml:"n_values" json:"n_values" validate:"required,min=1,dive,min=1"`
	Distributions []sampling.Config `yaml:"distributions" json:"distributions" validate:"required,min=1,dive"`

	// Policies are reported in this order.
	Policies []jury.KPolicy `yaml:"policies" json:"policies" validate:"required,min=1,dive"`

	// OutputDir receives the CSV report.
	OutputDir string `yaml:"output_dir" json:"output_dir" validate:"required"`

	// Seed makes runs reproducible. Zero seeds from the global generator.
	Seed uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Default returns the reference sweep: three competence
// distributions, five pool sizes and six k-policies, one million
// simulated juries per cell.
func Default() *Config {
	return &Config{
		BatchSize:     10000,
		Iterations:    100,
		ProgressEvery: 10,
		NValues:       []int{3, 10, 50, 200, 500},
		Distributions: []sampling.Config{
			{Name: "uniform[0,1]", Kind: sampling.UniformKind, Min: 0, Max: 1},
			{Name: "uniform[.1,.9]", Kind: sampling.UniformKind, Min: .1, Max: .9},
			{Name: "beta[2,2]", Kind: sampling.BetaKind, Alpha: 2, Beta: 2},
		},
		Policies: []jury.KPolicy{
			{Name: "const1", Kind: jury.ConstK, Value: 1},
			{Name: "const3", Kind: jury.ConstK, Value: 3},
			{Name: "logn", Kind: jury.LogK},
			{Name: "n^.4", Kind: jury.PowK, Exponent: .4},
			{Name: "sqrt", Kind: jury.PowK, Scale: .75, Exponent: .5},
			{Name: "n/2", Kind: jury.PowK, Scale: .5, Exponent: 1},
		},
		OutputDir: "data",
	}
}

// Load reads a YAML sweep definition from path. Fields missing from
// the file keep their values from Default; unknown fields are an error.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading sweep config")
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parsing sweep config %s", path)
	}

	return cfg, nil
}

// TotalRuns is the number of juries simulated per (distribution, n) pair.
func (c *Config) TotalRuns() int {
	return c.BatchSize * c.Iterations
}

// Validate checks the config's struct constraints, that every
// distribution builds under a unique report name, and that every policy
// selects between 1 and n experts for every configured n.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid sweep config")
	}

	dists := make(map[string]bool, len(c.Distributions))
	for i, dc := range c.Distributions {
		dist, err := sampling.New(dc, sampling.NewSource(1))
		if err != nil {
			return errors.Wrapf(err, "distribution %d", i)
		}

		if dists[dist.Name()] {
			return errors.Errorf("duplicate distribution name %q", dist.Name())
		}
		dists[dist.Name()] = true
	}

	seen := make(map[string]bool, len(c.Policies))
	for _, p := range c.Policies {
		if seen[p.Name] {
			return errors.Errorf("duplicate k-policy name %q", p.Name)
		}
		seen[p.Name] = true

		for _, n := range c.NValues {
			k := p.K(n)
			if k < 1 || k > n {
				return errors.Errorf("k-policy %q selects k=%d experts for n=%d, need 1 <= k <= n", p.Name, k, n)
			}

			if k%2 == 0 {
				glog.Warningf("k-policy %q selects even k=%d for n=%d; ties count as incorrect", p.Name, k, n)
			}
		}
	}

	return nil
}
