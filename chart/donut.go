// Package chart turns the principal/interest series into donut geometry and
// draws it. Renderers only consume domain.ChartSlice so the calculator stays
// independent of how the chart ends up on screen.
package chart

import (
	"io"
	"math"

	"propdesk/domain"
)

// Renderer draws a slice series onto w.
type Renderer interface {
	Render(w io.Writer, slices []domain.ChartSlice) error
	ContentType() string
}

// Arc is one donut segment. Angles are in degrees, measured clockwise from
// 12 o'clock. Label coordinates are relative to the donut centre with y
// pointing down.
type Arc struct {
	Label    string  `json:"label"`
	Percent  float64 `json:"percent"`
	StartDeg float64 `json:"start_deg"`
	SweepDeg float64 `json:"sweep_deg"`
	LabelX   float64 `json:"label_x"`
	LabelY   float64 `json:"label_y"`
}

// Donut lays slices out around a full circle. The sweeps always add up to
// exactly 360 degrees; the last slice absorbs any floating point remainder.
func Donut(slices []domain.ChartSlice, radius, labelOffset float64) []Arc {
	if len(slices) == 0 {
		return nil
	}

	arcs := make([]Arc, 0, len(slices))
	start := 0.0
	for i, s := range slices {
		sweep := s.Percent / 100 * 360
		if i == len(slices)-1 {
			sweep = 360 - start
		}
		x, y := polar(radius+labelOffset, start+sweep/2)
		arcs = append(arcs, Arc{
			Label:    s.Label,
			Percent:  s.Percent,
			StartDeg: start,
			SweepDeg: sweep,
			LabelX:   x,
			LabelY:   y,
		})
		start += sweep
	}
	return arcs
}

func polar(r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return r * math.Sin(rad), -r * math.Cos(rad)
}
