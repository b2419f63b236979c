// SPDX-License-Identifier: MIT

package evolution_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/spintools/evolution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shiftedBowl(x []float64) (float64, error) {
	dx, dy := x[0]-1.5, x[1]+2
	return dx*dx + 3*dy*dy, nil
}

var bowlBounds = []evolution.Bound{{Low: -5, High: 5}, {Low: -5, High: 5}}

func TestMinimize_FindsBowlMinimum(t *testing.T) {
	res, err := evolution.Minimize(shiftedBowl, bowlBounds, evolution.DefaultConfig())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, evolution.MsgConverged, res.Message)
	assert.InDelta(t, 1.5, res.X[0], 1e-3)
	assert.InDelta(t, -2, res.X[1], 1e-3)
	assert.Less(t, res.Fun, 1e-6)
	assert.Greater(t, res.Nit, 0)
	assert.LessOrEqual(t, res.Nit, evolution.DefaultMaxIter)
}

func TestMinimize_Deterministic(t *testing.T) {
	cfg := evolution.DefaultConfig()
	cfg.MaxIter = 40

	a, err := evolution.Minimize(shiftedBowl, bowlBounds, cfg)
	require.NoError(t, err)
	b, err := evolution.Minimize(shiftedBowl, bowlBounds, cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMinimize_IterationBudget(t *testing.T) {
	cfg := evolution.DefaultConfig()
	cfg.PopSize = 5
	cfg.MaxIter = 3
	cfg.Tol, cfg.Atol = 0, 0
	cfg.Polish = false

	res, err := evolution.Minimize(shiftedBowl, bowlBounds, cfg)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, evolution.MsgMaxIter, res.Message)
	assert.Equal(t, 3, res.Nit)
	// 10 members: initial evaluation plus one trial per member per generation
	assert.Equal(t, 10+3*10, res.Nfev)
}

func TestMinimize_StaysInBounds(t *testing.T) {
	// the unconstrained minimum lies outside the box
	f := func(x []float64) (float64, error) { return x[0] + 2*x[1], nil }
	bounds := []evolution.Bound{{Low: 1, High: 2}, {Low: -3, High: 4}}

	var seen [][]float64
	probe := func(x []float64) (float64, error) {
		seen = append(seen, append([]float64(nil), x...))
		return f(x)
	}
	res, err := evolution.Minimize(probe, bounds, evolution.DefaultConfig())
	require.NoError(t, err)

	for _, x := range seen {
		assert.True(t, x[0] >= 1 && x[0] <= 2 && x[1] >= -3 && x[1] <= 4, "%v", x)
	}
	assert.InDelta(t, 1, res.X[0], 1e-3)
	assert.InDelta(t, -3, res.X[1], 1e-3)
	assert.Equal(t, len(seen), res.Nfev)
}

func TestMinimize_FixedParameter(t *testing.T) {
	bounds := []evolution.Bound{{Low: -5, High: 5}, {Low: 0.25, High: 0.25}}
	res, err := evolution.Minimize(shiftedBowl, bounds, evolution.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.25, res.X[1])
	assert.InDelta(t, 1.5, res.X[0], 1e-3)
}

func TestMinimize_PolishNeverWorsens(t *testing.T) {
	cfg := evolution.DefaultConfig()
	cfg.MaxIter = 5
	cfg.Polish = false
	raw, err := evolution.Minimize(shiftedBowl, bowlBounds, cfg)
	require.NoError(t, err)

	cfg.Polish = true
	polished, err := evolution.Minimize(shiftedBowl, bowlBounds, cfg)
	require.NoError(t, err)

	assert.LessOrEqual(t, polished.Fun, raw.Fun)
	assert.Greater(t, polished.Nfev, raw.Nfev)
}

func TestMinimize_ObjectiveErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := func(x []float64) (float64, error) {
		calls++
		if calls == 7 {
			return 0, boom
		}
		return x[0] * x[0], nil
	}

	_, err := evolution.Minimize(f, []evolution.Bound{{Low: -1, High: 1}}, evolution.DefaultConfig())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 7, calls)
}

func TestMinimize_NaNIsWorst(t *testing.T) {
	f := func(x []float64) (float64, error) {
		if x[0] > 0 {
			return math.NaN(), nil
		}
		return x[0] * x[0], nil
	}

	res, err := evolution.Minimize(f, []evolution.Bound{{Low: -1, High: 1}}, evolution.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, math.IsNaN(res.Fun))
	assert.LessOrEqual(t, res.X[0], 0.0)
}

func TestMinimize_BadInput(t *testing.T) {
	cfg := evolution.DefaultConfig()

	for _, b := range [][]evolution.Bound{
		nil,
		{{Low: 1, High: 0}},
		{{Low: math.NaN(), High: 1}},
		{{Low: 0, High: math.Inf(1)}},
	} {
		_, err := evolution.Minimize(shiftedBowl, b, cfg)
		assert.ErrorIs(t, err, evolution.ErrBadBounds, "%v", b)
	}

	cfg.PopSize = 0
	_, err := evolution.Minimize(shiftedBowl, bowlBounds, cfg)
	assert.ErrorIs(t, err, evolution.ErrBadConfig)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, evolution.DefaultConfig().Validate())

	mutate := []func(*evolution.Config){
		func(c *evolution.Config) { c.MaxIter = 0 },
		func(c *evolution.Config) { c.PopSize = -1 },
		func(c *evolution.Config) { c.Tol = -1 },
		func(c *evolution.Config) { c.Atol = math.NaN() },
		func(c *evolution.Config) { c.MutationMin = 1.5; c.MutationMax = 1 },
		func(c *evolution.Config) { c.MutationMax = 2.5 },
		func(c *evolution.Config) { c.Recombination = 1.1 },
		func(c *evolution.Config) { c.PolishEvaluations = 0 },
	}
	for i, m := range mutate {
		cfg := evolution.DefaultConfig()
		m(&cfg)
		assert.ErrorIs(t, cfg.Validate(), evolution.ErrBadConfig, "case %d", i)
	}

	cfg := evolution.DefaultConfig()
	cfg.Polish = false
	cfg.PolishEvaluations = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := evolution.LoadConfig(strings.NewReader("maxIter: 100\nseed: 7\npolish: false\n"))
	require.NoError(t, err)

	want := evolution.DefaultConfig()
	want.MaxIter = 100
	want.Seed = 7
	want.Polish = false
	assert.Equal(t, want, cfg)

	cfg, err = evolution.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, evolution.DefaultConfig(), cfg)

	_, err = evolution.LoadConfig(strings.NewReader("popsize: 3\n"))
	assert.ErrorIs(t, err, evolution.ErrBadConfig)

	_, err = evolution.LoadConfig(strings.NewReader("recombination: 3\n"))
	assert.ErrorIs(t, err, evolution.ErrBadConfig)
}
