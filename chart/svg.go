package chart

import (
	"fmt"
	"html"
	"io"
	"strings"

	"propdesk/domain"
)

var defaultColors = []string{"#4CAF50", "#F44336"}

// SVG renders a donut chart with percentage labels and a legend.
type SVG struct {
	Size      float64
	Thickness float64
	Colors    []string
}

func NewSVG() SVG {
	return SVG{Size: 200, Thickness: 40, Colors: defaultColors}
}

func (s SVG) ContentType() string { return "image/svg+xml" }

func (s SVG) color(i int) string {
	colors := s.Colors
	if len(colors) == 0 {
		colors = defaultColors
	}
	return colors[i%len(colors)]
}

func (s SVG) Render(w io.Writer, slices []domain.ChartSlice) error {
	if len(slices) == 0 {
		return fmt.Errorf("chart: nothing to render")
	}

	outer := s.Size / 2
	inner := outer - s.Thickness
	legendHeight := 20 * float64(len(slices))
	cx, cy := outer, outer

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		s.Size, s.Size+legendHeight, s.Size, s.Size+legendHeight)

	for i, arc := range Donut(slices, outer-s.Thickness/2, 0) {
		if arc.SweepDeg <= 0 {
			continue
		}
		if arc.SweepDeg >= 360 {
			fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill="none" stroke="%s" stroke-width="%g"/>`,
				cx, cy, outer-s.Thickness/2, s.color(i), s.Thickness)
		} else {
			fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`,
				segmentPath(cx, cy, outer, inner, arc.StartDeg, arc.SweepDeg), s.color(i))
		}
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-size="11" fill="#fff">%.1f%%</text>`,
			cx+arc.LabelX, cy+arc.LabelY, arc.Percent)
	}

	for i, sl := range slices {
		y := s.Size + 14 + 20*float64(i)
		fmt.Fprintf(&b, `<rect x="10" y="%g" width="12" height="12" fill="%s"/>`, y-10, s.color(i))
		fmt.Fprintf(&b, `<text x="28" y="%g" font-size="12">%s</text>`, y, html.EscapeString(sl.Label))
	}
	b.WriteString(`</svg>`)

	_, err := io.WriteString(w, b.String())
	return err
}

func segmentPath(cx, cy, outer, inner, start, sweep float64) string {
	large := 0
	if sweep > 180 {
		large = 1
	}
	ox0, oy0 := polar(outer, start)
	ox1, oy1 := polar(outer, start+sweep)
	ix1, iy1 := polar(inner, start+sweep)
	ix0, iy0 := polar(inner, start)

	return fmt.Sprintf("M %.2f %.2f A %g %g 0 %d 1 %.2f %.2f L %.2f %.2f A %g %g 0 %d 0 %.2f %.2f Z",
		cx+ox0, cy+oy0,
		outer, outer, large, cx+ox1, cy+oy1,
		cx+ix1, cy+iy1,
		inner, inner, large, cx+ix0, cy+iy0)
}
