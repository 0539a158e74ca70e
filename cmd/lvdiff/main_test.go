// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdiff/system"
)

// erfProfile writes a single-phase erf profile (D = 1e-14 m²/s, t = 1 h).
func erfProfile(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("distance,composition\n")
	for i := 0; i <= 120; i++ {
		x := -30 + 0.5*float64(i)
		c := 0.5 * (1 + math.Erf(x*1e-6/(2*math.Sqrt(1e-14*3600))))
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64) + "," + strconv.FormatFloat(c, 'g', -1, 64) + "\n")
	}
	path := filepath.Join(dir, "couple.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// TestCLI_SFThenModel runs sf into a CSV, then models the profile on fixed
// nodes and evaluates the written system.
func TestCLI_SFThenModel(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LVDIFF_PLOT_DIR", filepath.Join(dir, "plots"))
	prof := erfProfile(t, dir)

	sfOut := filepath.Join(dir, "dc.csv")
	require.NoError(t, run(t, "sf", prof, "--time", "1h", "--out", sfOut))
	data, err := os.ReadFile(sfOut)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "distance,composition,diffusivity", lines[0])
	assert.Len(t, lines, 122)

	sysOut := filepath.Join(dir, "sys.toml")
	require.NoError(t, run(t, "model", prof,
		"--time", "3600", "--family", "spline", "--nodes", "0.2,0.5,0.8",
		"--name", "erf", "--out", sysOut))
	sys, err := system.Load(sysOut)
	require.NoError(t, err)
	assert.Equal(t, "erf", sys.Name)
	require.Equal(t, 1, sys.Np())

	d, err := sys.D(0.5)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-14, d, 0.05)
}

// TestParseHelpers covers the flag parsers.
func TestParseHelpers(t *testing.T) {
	v, err := parseTime("50h")
	require.NoError(t, err)
	assert.Equal(t, 180000.0, v)
	v, err = parseTime("7200")
	require.NoError(t, err)
	assert.Equal(t, 7200.0, v)
	_, err = parseTime("-3")
	assert.Error(t, err)

	pair, err := parsePair(" 0.1, 0.9")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0.1, 0.9}, pair)
	_, err = parsePair("1")
	assert.Error(t, err)

	lists, err := parseNodeLists("0.1,0.2;0.6")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.1, 0.2}, {0.6}}, lists)
	lists, err = parseNodeLists("")
	require.NoError(t, err)
	assert.Nil(t, lists)
}
