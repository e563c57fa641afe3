// Package sweep evaluates a scenario across a parameter grid.
package sweep

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/avparker/wdcool/internal/astro"
	"github.com/avparker/wdcool/internal/scenario"
)

// ErrBadGrid indicates unusable sweep bounds.
var ErrBadGrid = errors.New("sweep: bounds must satisfy 0 < lo < hi and n >= 2")

// Axis selects which scenario parameter the sweep varies.
type Axis string

const (
	AxisMdot Axis = "mdot"
	AxisMass Axis = "mwd"
)

// ParseAxis maps a user-supplied axis name to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "mdot":
		return AxisMdot, nil
	case "mwd", "mass":
		return AxisMass, nil
	}
	return "", fmt.Errorf("sweep: axis must be mdot or mwd, got %q", s)
}

// Point is one sweep sample with the intermediates worth exporting.
type Point struct {
	MWD   float64 `csv:"mwd" json:"mwd"`
	Mdot  float64 `csv:"mdot" json:"mdot"`
	Facc  float64 `csv:"facc" json:"facc"`
	Nebl  float64 `csv:"nebl" json:"nebl"`
	Urad  float64 `csv:"urad" json:"urad"`
	Ratio float64 `csv:"ratio" json:"ratio"`
}

// Run evaluates base across a log-spaced grid of n points on the chosen
// axis between lo and hi. Evaluation errors carry the offending grid
// value.
func Run(calc *astro.Calc, base scenario.Scenario, axis Axis, lo, hi float64, n int) ([]Point, error) {
	if n < 2 || lo <= 0 || hi <= lo {
		return nil, ErrBadGrid
	}
	grid := floats.LogSpan(make([]float64, n), lo, hi)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	pts := make([]Point, 0, n)
	for _, v := range grid {
		sc := base
		switch axis {
		case AxisMdot:
			sc.Mdot = v
		case AxisMass:
			sc.MWD = v
		default:
			return nil, fmt.Errorf("sweep: unknown axis %q", string(axis))
		}
		res, err := scenario.Evaluate(calc, sc, quiet)
		if err != nil {
			return nil, fmt.Errorf("sweep at %s=%g: %w", string(axis), v, err)
		}
		pts = append(pts, Point{
			MWD:   sc.MWD,
			Mdot:  sc.Mdot,
			Facc:  res.Facc,
			Nebl:  res.Nebl,
			Urad:  res.Urad,
			Ratio: res.Ratio,
		})
	}
	return pts, nil
}

// Ratios extracts the cooling ratio column, for plotting.
func Ratios(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Ratio
	}
	return out
}
