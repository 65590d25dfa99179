package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestUniform(t *testing.T) {
	u := NewUniform(.1, .9, NewSource(42))
	assert.Equal(t, "uniform[.1,.9]", u.Name())

	x := make([]float64, 100000)
	u.Sample(x)
	for _, v := range x {
		require.True(t, v >= .1 && v <= .9, "%v out of range", v)
	}

	assert.InDelta(t, 0.5, stat.Mean(x, nil), 0.01)
	assert.InDelta(t, 0.8*0.8/12, stat.Variance(x, nil), 0.005)
}

func TestBeta(t *testing.T) {
	b := NewBeta(2, 2, NewSource(42))
	assert.Equal(t, "beta[2,2]", b.Name())

	x := make([]float64, 100000)
	b.Sample(x)
	for _, v := range x {
		require.True(t, v >= 0 && v <= 1, "%v out of range", v)
	}

	// Beta(2,2) has mean 1/2 and variance 1/20.
	assert.InDelta(t, 0.5, stat.Mean(x, nil), 0.01)
	assert.InDelta(t, 0.05, stat.Variance(x, nil), 0.005)
}

func TestConstant(t *testing.T) {
	c := NewConstant(0.25)
	assert.Equal(t, "constant[.25]", c.Name())

	x := make([]float64, 10)
	c.Sample(x)
	for _, v := range x {
		assert.Equal(t, 0.25, v)
	}
}

func TestNewSource_Seeded(t *testing.T) {
	a := NewUniform(0, 1, NewSource(7))
	b := NewUniform(0, 1, NewSource(7))
	xa := make([]float64, 20)
	xb := make([]float64, 20)
	a.Sample(xa)
	b.Sample(xb)
	assert.Equal(t, xa, xb)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		expectedName string
		expectedErr  string
	}{
		{
			name:         "uniform with generated name",
			cfg:          Config{Kind: UniformKind, Min: 0, Max: 1},
			expectedName: "uniform[0,1]",
		},
		{
			name:         "uniform with explicit name",
			cfg:          Config{Name: "U", Kind: UniformKind, Min: .2, Max: .4},
			expectedName: "U",
		},
		{
			name:         "beta",
			cfg:          Config{Kind: BetaKind, Alpha: 2, Beta: 5},
			expectedName: "beta[2,5]",
		},
		{
			name:         "constant with explicit name",
			cfg:          Config{Name: "perfect", Kind: ConstantKind, Value: 1},
			expectedName: "perfect",
		},
		{
			name:        "empty uniform range",
			cfg:         Config{Kind: UniformKind, Min: .5, Max: .5},
			expectedErr: "min < max",
		},
		{
			name:        "non-positive beta shape",
			cfg:         Config{Kind: BetaKind, Alpha: 0, Beta: 2},
			expectedErr: "alpha, beta > 0",
		},
		{
			name:        "unknown kind",
			cfg:         Config{Kind: "gamma"},
			expectedErr: "unknown distribution kind",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.cfg, NewSource(1))
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, s.Name())
		})
	}
}

func TestNew_UnknownKindIsSentinel(t *testing.T) {
	_, err := New(Config{Kind: "gamma"}, NewSource(1))
	assert.ErrorIs(t, err, ErrUnknownKind)
}
