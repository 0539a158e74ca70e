// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/katalvlaran/lvdiff/profile"
	"github.com/katalvlaran/lvdiff/terminal"
)

// readProfile loads a distance,composition CSV, naming the profile after
// the file.
func readProfile(path string) (*profile.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile %q: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := profile.ReadCSV(f, name)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", path, err)
	}
	log.Debug("profile loaded",
		logging.String("name", name),
		logging.Int("samples", p.Len()),
		logging.Int("phases", p.PhaseCount()))

	return p, nil
}

// parseTime accepts seconds ("180000") or a Go duration ("50h").
func parseTime(s string) (float64, error) {
	if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil {
		return profile.CoerceTime(d)
	}

	return profile.CoerceTime(s)
}

// parseFloats splits a comma separated list.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", part)
		}
		out[i] = v
	}

	return out, nil
}

// parsePair parses "lo,hi".
func parsePair(s string) ([2]float64, error) {
	v, err := parseFloats(s)
	if err != nil {
		return [2]float64{}, err
	}
	if len(v) != 2 {
		return [2]float64{}, fmt.Errorf("want two values in %q", s)
	}

	return [2]float64{v[0], v[1]}, nil
}

// parseNodeLists parses per-phase node lists separated by ';', e.g.
// "0.05,0.2,0.3;0.6,0.9".
func parseNodeLists(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out [][]float64
	for _, list := range strings.Split(s, ";") {
		v, err := parseFloats(list)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// output opens path for writing, or returns stdout for "" and "-".
func output(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}

	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writeColumns writes a headed CSV table of equal-length columns.
func writeColumns(w io.Writer, header []string, cols ...[]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(cols))
	for i := range cols[0] {
		for c := range cols {
			rec[c] = strconv.FormatFloat(cols[c][i], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// interactive builds the terminal collaborators over stdin and stderr.
func interactive() (*terminal.Prompter, *terminal.ChartPlotter) {
	pr := terminal.NewPrompter(os.Stdin, os.Stderr)
	pl := terminal.NewChartPlotter(cfg.Plot.Dir, cfg.Plot.Width, cfg.Plot.Height, pr, log.Named("plot"))

	return pr, pl
}
