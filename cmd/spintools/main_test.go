// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spintools/antenna"
	"github.com/katalvlaran/spintools/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestLevels(t *testing.T) {
	out, err := run(t, "levels")
	require.NoError(t, err)

	rows := readCSV(t, out)
	require.Len(t, rows, 1+len(atom.Names()))
	assert.Equal(t, "name", rows[0][0])
	for i, name := range atom.Names() {
		assert.Equal(t, name, rows[i+1][0])
	}
}

func TestLevels_WithTable(t *testing.T) {
	table := filepath.Join(t.TempDir(), "na.yaml")
	require.NoError(t, os.WriteFile(table, []byte(`isotopes:
  - name: Na23
    I: 1.5
    gI: -0.0008046108
    levels:
      - {name: 3S1/2, L: 0, J: 0.5, aHF: 885.8130644e6}
`), 0o600))

	out, err := run(t, "levels", "--table", table)
	require.NoError(t, err)
	assert.Contains(t, out, "Na23-3S1/2")
}

func TestBreitRabi_ClosedAndNumericalAgree(t *testing.T) {
	closed, err := run(t, "breit-rabi", "--points", "11", "--bmax", "500")
	require.NoError(t, err)
	numerical, err := run(t, "breit-rabi", "--points", "11", "--bmax", "500", "--method", "numerical")
	require.NoError(t, err)

	a, b := readCSV(t, closed), readCSV(t, numerical)
	require.Len(t, a, 12)
	require.Len(t, b, 12)
	require.Len(t, a[0], 1+8) // field + 8 sub-levels of Rb87 5S1/2
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(a[i]); j++ {
			var x, y float64
			_, err := fmt.Sscan(a[i][j], &x)
			require.NoError(t, err)
			_, err = fmt.Sscan(b[i][j], &y)
			require.NoError(t, err)
			assert.InDelta(t, x, y, 1e-6*7e9, "row %d col %d", i, j)
		}
	}
}

func TestBreitRabi_OneManifoldWithPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "fig.json")
	out, err := run(t, "breit-rabi", "--f", "1", "--points", "120", "--correct", "--plot", plot)
	require.NoError(t, err)

	rows := readCSV(t, out)
	require.Len(t, rows, 121)
	assert.Len(t, rows[0], 4)

	b, err := os.ReadFile(plot)
	require.NoError(t, err)
	var fig map[string]any
	require.NoError(t, json.Unmarshal(b, &fig))
	assert.Len(t, fig["frames"], 60) // stride 2
}

func TestBreitRabi_SingletManifoldZero(t *testing.T) {
	table := filepath.Join(t.TempDir(), "h.yaml")
	require.NoError(t, os.WriteFile(table, []byte(`isotopes:
  - name: H1
    I: 0.5
    gI: -0.0030420
    levels:
      - {name: 1S1/2, L: 0, J: 0.5, aHF: 1420.405751768e6}
`), 0o600))

	out, err := run(t, "breit-rabi", "--table", table, "--level", "H1-1S1/2", "--f", "0", "--points", "5")
	require.NoError(t, err)
	rows := readCSV(t, out)
	require.Len(t, rows, 6)
	assert.Len(t, rows[0], 1+1, "F=0 has a single sub-level")

	out, err = run(t, "breit-rabi", "--table", table, "--level", "H1-1S1/2", "--points", "5")
	require.NoError(t, err)
	assert.Len(t, readCSV(t, out)[0], 1+4, "default prints both manifolds")
}

func TestBreitRabi_Errors(t *testing.T) {
	_, err := run(t, "breit-rabi", "--level", "nope")
	assert.ErrorIs(t, err, atom.ErrUnknownLevel)

	_, err = run(t, "breit-rabi", "--level", atom.LevelRb87P32)
	assert.ErrorIs(t, err, atom.ErrInvalidLevel)

	_, err = run(t, "breit-rabi", "--method", "guess")
	assert.Error(t, err)

	_, err = run(t, "breit-rabi", "--points", "1")
	assert.Error(t, err)
}

func TestSettings_EnvAndConfigFile(t *testing.T) {
	t.Setenv("SPINTOOLS_POINTS", "5")
	out, err := run(t, "breit-rabi")
	require.NoError(t, err)
	assert.Len(t, readCSV(t, out), 6)

	cfg := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("points: 7\nbmax: 10\n"), 0o600))
	t.Setenv("SPINTOOLS_POINTS", "")
	out, err = run(t, "breit-rabi", "--config", cfg)
	require.NoError(t, err)
	rows := readCSV(t, out)
	require.Len(t, rows, 8)
	var last float64
	_, err = fmt.Sscan(rows[7][0], &last)
	require.NoError(t, err)
	assert.InDelta(t, 10, last, 1e-12)

	// flags win over the file
	out, err = run(t, "breit-rabi", "--config", cfg, "--points", "3")
	require.NoError(t, err)
	assert.Len(t, readCSV(t, out), 4)
}

func TestPassage(t *testing.T) {
	out, err := run(t, "passage", "--points", "21")
	require.NoError(t, err)
	rows := readCSV(t, out)
	require.Len(t, rows, 22)
	assert.Equal(t, []string{"rf_hz", "level_0", "level_1", "level_2", "level_3", "level_4"}, rows[0])

	out, err = run(t, "passage", "--mode", "field", "--f", "1", "--points", "9", "--span", "0.2")
	require.NoError(t, err)
	rows = readCSV(t, out)
	require.Len(t, rows, 10)
	assert.Equal(t, "field_gauss", rows[0][0])
	assert.Len(t, rows[0], 4)

	_, err = run(t, "passage", "--mode", "sideways")
	assert.Error(t, err)
	_, err = run(t, "passage", "--f", "3")
	assert.ErrorIs(t, err, atom.ErrInvalidManifold)
}

func writeAntenna(t *testing.T, dir string) string {
	t.Helper()
	// 100 Ω + 1 µH, as magnitude / angle
	var b strings.Builder
	b.WriteString("! synthetic antenna\n# MHz S MA R 50\n")
	for i := 0; i <= 100; i++ {
		f := 5 + 0.1*float64(i)
		z := complex(100, 2*math.Pi*f*1e6*1e-6)
		g := (z - 50) / (z + 50)
		fmt.Fprintf(&b, "%.6f %.15g %.15g\n", f, math.Hypot(real(g), imag(g)), math.Atan2(imag(g), real(g))*180/math.Pi)
	}
	path := filepath.Join(dir, "antenna.s1p")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	s1p := writeAntenna(t, dir)
	search := filepath.Join(dir, "de.yaml")
	require.NoError(t, os.WriteFile(search, []byte("maxIter: 20\npopSize: 10\n"), 0o600))

	out, err := run(t, "match",
		"--touchstone", s1p,
		"--band-low", "9e6", "--band-high", "11e6",
		"--crop-low", "8e6", "--crop-high", "12e6",
		"--topology", "series_c,shunt_c",
		"--search-config", search,
	)
	require.NoError(t, err)

	var results []antenna.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "series_c", results[0].Topology)
	assert.Equal(t, "shunt_c", results[1].Topology)
	assert.Len(t, results[0].X, 1)
	assert.Less(t, results[0].Fun, 0.0)
	assert.Positive(t, results[0].Nfev)
}

func TestMatch_Errors(t *testing.T) {
	dir := t.TempDir()
	s1p := writeAntenna(t, dir)

	_, err := run(t, "match")
	assert.Error(t, err)

	_, err = run(t, "match", "--touchstone", s1p, "--topology", "nope", "--band-low", "9e6", "--band-high", "11e6")
	assert.Error(t, err)

	_, err = run(t, "match", "--touchstone", s1p)
	assert.ErrorIs(t, err, antenna.ErrBadBand)

	_, err = run(t, "match", "--touchstone", s1p, "--band-low", "9e6", "--band-high", "11e6", "--z0", "0")
	assert.Error(t, err)
}
