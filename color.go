package turtle

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Color is a stroke color with R, G, B conventionally in [0, 255] and A in
// [0, 1]. Components are neither clamped nor validated.
type Color struct {
	R, G, B, A float64
}

// Black is the default stroke color.
var Black = Color{0, 0, 0, 1}

// String returns the CSS form "rgba(r,g,b,a)" used as the ink stroke style.
func (c Color) String() string {
	var sb strings.Builder
	sb.WriteString("rgba(")
	for i, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatNumber(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Normalized converts c to gg's [0, 1] component range. Out-of-range values
// are passed through; gg clamps at rasterization time.
func (c Color) Normalized() gg.RGBA {
	return gg.RGBA{R: c.R / 255, G: c.G / 255, B: c.B / 255, A: c.A}
}

// formatNumber renders v the shortest way that round-trips, spelling
// infinities the way CSS tooling does.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
