// SPDX-License-Identifier: MIT

package terminal

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvdiff/dmodel"
	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default chart size in pixels.
const (
	DefaultWidth  = 900
	DefaultHeight = 600
)

var (
	// ErrNoSession is returned by PickPoints outside Begin/End.
	ErrNoSession = errors.New("terminal: no active plot session")
	// ErrNoChart is returned by PickPoints before anything was displayed.
	ErrNoChart = errors.New("terminal: nothing displayed yet")
	// ErrEmptyChart is returned by Display when no series has a drawable point.
	ErrEmptyChart = errors.New("terminal: no drawable points")
)

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorBlack,
}

// ChartPlotter renders every Display to a numbered PNG under a directory
// and takes picked points as x values typed at the Prompter.
type ChartPlotter struct {
	dir           string
	width, height int
	prompter      *Prompter
	log           logging.Logger

	seq    int
	active bool
	last   string
}

var _ dmodel.Plotter = (*ChartPlotter)(nil)

// NewChartPlotter returns a plotter writing into dir. Non-positive sizes
// fall back to DefaultWidth and DefaultHeight; a nil logger is a no-op.
func NewChartPlotter(dir string, width, height int, pr *Prompter, log logging.Logger) *ChartPlotter {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if log == nil {
		log = logging.NewNopLogger()
	}

	return &ChartPlotter{dir: dir, width: width, height: height, prompter: pr, log: log}
}

// Begin opens a session, creating the output directory when missing.
func (c *ChartPlotter) Begin() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("terminal: plot dir: %w", err)
	}
	c.active = true

	return nil
}

// End closes the session. Charts already written stay on disk.
func (c *ChartPlotter) End() error {
	c.active = false

	return nil
}

// Last returns the path of the most recent chart, or "".
func (c *ChartPlotter) Last() string { return c.last }

// Display renders the series to the next numbered PNG. Series with LogY are
// drawn as log10 of their values and non-drawable points are skipped.
func (c *ChartPlotter) Display(title string, series ...dmodel.Series) error {
	graph, err := c.build(title, series)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("terminal: plot dir: %w", err)
	}

	c.seq++
	path := filepath.Join(c.dir, fmt.Sprintf("%02d-%s.png", c.seq, slug(title)))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("terminal: create chart: %w", err)
	}
	if err = graph.Render(chart.PNG, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("terminal: render %q: %w", title, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("terminal: close chart: %w", err)
	}

	c.last = path
	c.log.Info("chart written", logging.String("title", title), logging.String("path", path))
	if c.prompter != nil {
		c.prompter.Notef("%s: %s", title, path)
	}

	return nil
}

// PickPoints asks for the x values of n points read off the last chart.
// Malformed answers are reported and asked again; Y is left at zero.
func (c *ChartPlotter) PickPoints(n int) ([]dmodel.Point, error) {
	if !c.active {
		return nil, ErrNoSession
	}
	if c.last == "" {
		return nil, ErrNoChart
	}
	if c.prompter == nil {
		return nil, fmt.Errorf("terminal: pick points: %w", dmodel.ErrNoCollaborator)
	}

	msg := fmt.Sprintf("Pick %d point(s) on %s: enter %d x value(s)", n, c.last, n)
	for {
		answer, err := c.prompter.Ask(msg)
		if err != nil {
			return nil, err
		}
		xs, err := parseFloats(answer, n)
		if err != nil {
			c.prompter.Warnf("%v", err)
			continue
		}
		pts := make([]dmodel.Point, n)
		for i, x := range xs {
			pts[i] = dmodel.Point{X: x}
		}

		return pts, nil
	}
}

func (c *ChartPlotter) build(title string, series []dmodel.Series) (*chart.Chart, error) {
	logY := false
	for _, s := range series {
		logY = logY || s.LogY
	}

	xr := span{lo: math.Inf(1), hi: math.Inf(-1)}
	yr := xr
	var out []chart.Series
	for i, s := range series {
		xs, ys := drawable(s)
		if len(xs) == 0 {
			continue
		}
		for k := range xs {
			xr.add(xs[k])
			yr.add(ys[k])
		}
		col := palette[i%len(palette)]
		style := chart.Style{StrokeColor: col, StrokeWidth: 2}
		if s.Style == dmodel.Scatter {
			style = chart.Style{StrokeWidth: chart.Disabled, DotWidth: 3, DotColor: col}
		}
		out = append(out, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: style})
	}
	if len(out) == 0 {
		return nil, ErrEmptyChart
	}

	graph := &chart.Chart{
		Title:  title,
		Width:  c.width,
		Height: c.height,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 10.0},
			Range: xr.rangeOf(),
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10.0},
			Range: yr.rangeOf(),
		},
		Series: out,
	}
	if logY {
		graph.YAxis.Name = "Diffusion Coefficients (m²/s)"
		graph.YAxis.ValueFormatter = func(v any) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.1e", math.Pow(10, f))
			}
			return ""
		}
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}

	return graph, nil
}

// drawable returns the finite points of s, taking log10 when s.LogY and
// dropping non-positive values then.
func drawable(s dmodel.Series) ([]float64, []float64) {
	n := min(len(s.X), len(s.Y))
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y := s.X[i], s.Y[i]
		if s.LogY {
			if y <= 0 {
				continue
			}
			y = math.Log10(y)
		}
		if !finite(x) || !finite(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys
}

type span struct{ lo, hi float64 }

func (s *span) add(v float64) {
	s.lo = math.Min(s.lo, v)
	s.hi = math.Max(s.hi, v)
}

// rangeOf pads the span by 5% and widens a degenerate one, which go-chart
// refuses to draw.
func (s span) rangeOf() *chart.ContinuousRange {
	pad := 0.05 * (s.hi - s.lo)
	if pad == 0 {
		pad = math.Max(0.5*math.Abs(s.lo), 0.5)
	}

	return &chart.ContinuousRange{Min: s.lo - pad, Max: s.hi + pad}
}

func parseFloats(answer string, n int) ([]float64, error) {
	fields := strings.FieldsFunc(answer, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d value(s), got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || !finite(v) {
			return nil, fmt.Errorf("bad value %q", f)
		}
		out[i] = v
	}

	return out, nil
}

func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if s == "" {
		return "chart"
	}

	return s
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
