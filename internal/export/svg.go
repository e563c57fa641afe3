package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/avparker/wdcool/internal/sweep"
)

// SweepSVG writes the sweep as a log-log curve of cooling ratio against
// the varied parameter, with a reference line at ratio = 1 where the
// cooling regime flips.
func SweepSVG(path string, pts []sweep.Point, axis sweep.Axis, width, height int) error {
	if len(pts) < 2 {
		return fmt.Errorf("export: need at least 2 sweep points for svg")
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		switch axis {
		case sweep.AxisMass:
			xs[i] = math.Log10(p.MWD)
		default:
			xs[i] = math.Log10(p.Mdot)
		}
		ys[i] = math.Log10(p.Ratio)
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	// keep the regime boundary in frame
	minY = math.Min(minY, 0)
	maxY = math.Max(maxY, 0)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	toX := func(v float64) float64 { return (v - minX) / rangeX * float64(width) }
	toY := func(v float64) float64 { return float64(height) - (v-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// ratio = 1 boundary
	y1 := toY(0)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#666688" stroke-dasharray="4 4"/>
`, y1, width, y1))

	sb.WriteString(`<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`)
	for i := range xs {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(xs[i]), toY(ys[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(xs[i]), toY(ys[i])))
		}
	}
	sb.WriteString(`"/>
</svg>`)

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
