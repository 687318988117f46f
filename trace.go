package turtle

import (
	"math"

	"github.com/gogpu/gg"
)

// Segment limits for one forward move. A finite move may use
// maxTraceSegments plus a few segments per canvas span it covers, up to
// maxTraceSegmentsHard. An infinite move gets maxTraceSegments.
const (
	maxTraceSegments     = 1 << 16
	maxTraceSegmentsHard = 1 << 24
	segmentsPerSpan      = 4
)

// segmentLimit returns how many segments a wrapped move of distance
// (non-negative) within b may produce.
func segmentLimit(distance float64, b Bounds) int {
	span := min(b.MaxX-b.MinX, b.MaxY-b.MinY)
	if math.IsNaN(distance) || math.IsInf(distance, 0) || !(span > 0) {
		return maxTraceSegments
	}
	spans := math.Ceil(distance / span)
	if spans >= (maxTraceSegmentsHard-maxTraceSegments)/segmentsPerSpan {
		return maxTraceSegmentsHard
	}
	return maxTraceSegments + segmentsPerSpan*int(spans)
}

// Segment is one straight piece of a traced move.
type Segment struct {
	From, To gg.Point

	// Distance is the part of the requested distance this segment
	// consumed. It is negative when a wrap that was resolved by priority
	// order rather than by proximity has to back up to the boundary.
	Distance float64
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// Path is the result of tracing a forward move.
type Path struct {
	// Segments in drawing order. Empty for a zero-length move.
	Segments []Segment

	// End is the turtle position after the move.
	End gg.Point

	// Truncated reports that the move hit its segment limit and the
	// remaining distance was dropped. Only infinite distances and moves
	// longer than about 4 million canvas spans are truncated.
	Truncated bool
}

// Trace computes the segments a turtle at start, facing heading, traces
// when moving distance units within b.
//
// With wrap off, the result is the single segment to
// start + distance*(sin heading, cos heading), wherever it lands.
//
// With wrap on, a candidate endpoint beyond the bounds is cut at the first
// violated boundary in the fixed order +X, -X, +Y, -Y (not the nearest
// one). The crossed coordinate then jumps to the opposite boundary and
// tracing continues with the remaining distance.
//
// A negative distance traces backward. NaN and infinite inputs are not
// rejected; they propagate into the returned points. Headings parallel
// to an axis may yield infinite or NaN intersections in the same way.
func Trace(start gg.Point, heading, distance float64, b Bounds, wrap bool) Path {
	sin, cos := SinCos(heading)
	if distance < 0 {
		sin, cos, distance = -sin, -cos, -distance
	}

	var p Path
	limit := 1
	if wrap {
		limit = segmentLimit(distance, b)
	}
	x, y := start.X, start.Y
	for distance > 0 {
		if len(p.Segments) >= limit {
			p.Truncated = true
			break
		}

		newX := x + sin*distance
		newY := y + cos*distance

		var t, ix, iy, nextX, nextY float64
		switch {
		case !wrap:
			p.Segments = append(p.Segments, Segment{gg.Pt(x, y), gg.Pt(newX, newY), distance})
			x, y = newX, newY
			distance = 0
			continue
		case newX > b.MaxX:
			t = (b.MaxX - x) / sin
			ix, iy = b.MaxX, y+cos*t
			nextX, nextY = b.MinX, iy
		case newX < b.MinX:
			t = (b.MinX - x) / sin
			ix, iy = b.MinX, y+cos*t
			nextX, nextY = b.MaxX, iy
		case newY > b.MaxY:
			t = (b.MaxY - y) / cos
			ix, iy = x+sin*t, b.MaxY
			nextX, nextY = ix, b.MinY
		case newY < b.MinY:
			t = (b.MinY - y) / cos
			ix, iy = x+sin*t, b.MinY
			nextX, nextY = ix, b.MaxY
		default:
			p.Segments = append(p.Segments, Segment{gg.Pt(x, y), gg.Pt(newX, newY), distance})
			x, y = newX, newY
			distance = 0
			continue
		}

		p.Segments = append(p.Segments, Segment{gg.Pt(x, y), gg.Pt(ix, iy), t})
		distance -= t
		x, y = nextX, nextY
	}
	p.End = gg.Pt(x, y)
	return p
}
