package turtle

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxPoint(a, b gg.Point, tol float64) bool {
	return approxEqual(a.X, b.X, tol) && approxEqual(a.Y, b.Y, tol)
}

var bounds300 = BoundsFor(300, 300)

func TestTrace_NoWrap(t *testing.T) {
	tests := []struct {
		name     string
		start    gg.Point
		heading  float64
		distance float64
	}{
		{"north", gg.Pt(0, 0), 0, 100},
		{"east", gg.Pt(10, -20), math.Pi / 2, 42},
		{"diagonal", gg.Pt(-5, 5), DegreesToRadians(33), 77.5},
		{"leaves canvas", gg.Pt(140, 140), DegreesToRadians(45), 500},
		{"backward", gg.Pt(0, 0), DegreesToRadians(120), -60},
		{"large heading", gg.Pt(1, 2), DegreesToRadians(-1234), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Trace(tt.start, tt.heading, tt.distance, bounds300, false)
			sin, cos := SinCos(tt.heading)
			want := gg.Pt(tt.start.X+tt.distance*sin, tt.start.Y+tt.distance*cos)
			if !approxPoint(p.End, want, eps) {
				t.Errorf("End = %v, want %v", p.End, want)
			}
			if len(p.Segments) != 1 {
				t.Fatalf("len(Segments) = %d, want 1", len(p.Segments))
			}
			if p.Segments[0].From != tt.start {
				t.Errorf("Segments[0].From = %v, want %v", p.Segments[0].From, tt.start)
			}
		})
	}
}

func TestTrace_ZeroDistance(t *testing.T) {
	start := gg.Pt(3, 4)
	for _, wrap := range []bool{false, true} {
		p := Trace(start, 1, 0, bounds300, wrap)
		if len(p.Segments) != 0 {
			t.Errorf("wrap=%v: len(Segments) = %d, want 0", wrap, len(p.Segments))
		}
		if p.End != start {
			t.Errorf("wrap=%v: End = %v, want %v", wrap, p.End, start)
		}
	}
}

func TestTrace_WrapScenarios(t *testing.T) {
	tests := []struct {
		name     string
		start    gg.Point
		heading  float64
		distance float64
		want     []Segment
		end      gg.Point
	}{
		{
			name:     "inside",
			start:    gg.Pt(0, 0),
			heading:  0,
			distance: 100,
			want:     []Segment{{From: gg.Pt(0, 0), To: gg.Pt(0, 100)}},
			end:      gg.Pt(0, 100),
		},
		{
			name:     "cross +Y",
			start:    gg.Pt(140, 0),
			heading:  0,
			distance: 160,
			want: []Segment{
				{From: gg.Pt(140, 0), To: gg.Pt(140, 150)},
				{From: gg.Pt(140, -150), To: gg.Pt(140, -140)},
			},
			end: gg.Pt(140, -140),
		},
		{
			name:     "cross +Y short",
			start:    gg.Pt(0, 140),
			heading:  0,
			distance: 20,
			want: []Segment{
				{From: gg.Pt(0, 140), To: gg.Pt(0, 150)},
				{From: gg.Pt(0, -150), To: gg.Pt(0, -140)},
			},
			end: gg.Pt(0, -140),
		},
		{
			name:     "cross +X",
			start:    gg.Pt(140, 0),
			heading:  math.Pi / 2,
			distance: 20,
			want: []Segment{
				{From: gg.Pt(140, 0), To: gg.Pt(150, 0)},
				{From: gg.Pt(-150, 0), To: gg.Pt(-140, 0)},
			},
			end: gg.Pt(-140, 0),
		},
		{
			name:     "cross -X",
			start:    gg.Pt(-145, 10),
			heading:  -math.Pi / 2,
			distance: 15,
			want: []Segment{
				{From: gg.Pt(-145, 10), To: gg.Pt(-150, 10)},
				{From: gg.Pt(150, 10), To: gg.Pt(140, 10)},
			},
			end: gg.Pt(140, 10),
		},
		{
			name:     "cross -Y",
			start:    gg.Pt(-20, -149),
			heading:  math.Pi,
			distance: 2,
			want: []Segment{
				{From: gg.Pt(-20, -149), To: gg.Pt(-20, -150)},
				{From: gg.Pt(-20, 150), To: gg.Pt(-20, 149)},
			},
			end: gg.Pt(-20, 149),
		},
		{
			name:     "backward crosses -Y",
			start:    gg.Pt(0, -140),
			heading:  0,
			distance: -20,
			want: []Segment{
				{From: gg.Pt(0, -140), To: gg.Pt(0, -150)},
				{From: gg.Pt(0, 150), To: gg.Pt(0, 140)},
			},
			end: gg.Pt(0, 140),
		},
		{
			name:     "several laps",
			start:    gg.Pt(0, 0),
			heading:  0,
			distance: 700,
			want: []Segment{
				{From: gg.Pt(0, 0), To: gg.Pt(0, 150)},
				{From: gg.Pt(0, -150), To: gg.Pt(0, 150)},
				{From: gg.Pt(0, -150), To: gg.Pt(0, 100)},
			},
			end: gg.Pt(0, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Trace(tt.start, tt.heading, tt.distance, bounds300, true)
			if len(p.Segments) != len(tt.want) {
				t.Fatalf("len(Segments) = %d, want %d: %v", len(p.Segments), len(tt.want), p.Segments)
			}
			for i, seg := range p.Segments {
				if !approxPoint(seg.From, tt.want[i].From, 1e-9) || !approxPoint(seg.To, tt.want[i].To, 1e-9) {
					t.Errorf("Segments[%d] = %v -> %v, want %v -> %v",
						i, seg.From, seg.To, tt.want[i].From, tt.want[i].To)
				}
			}
			if !approxPoint(p.End, tt.end, 1e-9) {
				t.Errorf("End = %v, want %v", p.End, tt.end)
			}
		})
	}
}

func TestTrace_ConservesDistance(t *testing.T) {
	starts := []gg.Point{gg.Pt(0, 0), gg.Pt(120, -80), gg.Pt(-149, 149), gg.Pt(75, 10)}
	distances := []float64{0.5, 10, 299, 300, 1234.5, 10000}

	for _, start := range starts {
		for deg := 1.0; deg < 360; deg += 7 {
			heading := DegreesToRadians(deg)
			for _, d := range distances {
				p := Trace(start, heading, d, bounds300, true)
				var sum float64
				for _, seg := range p.Segments {
					sum += seg.Distance
				}
				if !approxEqual(sum, d, 1e-6) {
					t.Fatalf("start=%v heading=%v° d=%v: consumed %v", start, deg, d, sum)
				}
			}
		}
	}
}

func TestTrace_LongDistanceNotTruncated(t *testing.T) {
	starts := []gg.Point{gg.Pt(0, 0), gg.Pt(120, -80), gg.Pt(-149, 149)}
	headings := []float64{1, 45, 90, 133, 271}
	distances := []float64{1e6, 1e8}

	for _, start := range starts {
		for _, deg := range headings {
			for _, d := range distances {
				p := Trace(start, DegreesToRadians(deg), d, bounds300, true)
				if p.Truncated {
					t.Fatalf("start=%v heading=%v° d=%v: truncated after %d segments",
						start, deg, d, len(p.Segments))
				}
				var sum float64
				for _, seg := range p.Segments {
					sum += seg.Distance
				}
				if !approxEqual(sum, d, 1e-3) {
					t.Fatalf("start=%v heading=%v° d=%v: consumed %v", start, deg, d, sum)
				}
				e := p.End
				if e.X < bounds300.MinX || e.X > bounds300.MaxX || e.Y < bounds300.MinY || e.Y > bounds300.MaxY {
					t.Errorf("start=%v heading=%v° d=%v: End = %v outside the canvas", start, deg, d, e)
				}
			}
		}
	}
}

func TestSegmentLimit(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		b        Bounds
		want     int
	}{
		{"short move", 10, bounds300, maxTraceSegments + segmentsPerSpan},
		{"one hundred spans", 30000, bounds300, maxTraceSegments + 100*segmentsPerSpan},
		{"narrow side wins", 1000, BoundsFor(1000, 10), maxTraceSegments + 100*segmentsPerSpan},
		{"huge", 1e300, bounds300, maxTraceSegmentsHard},
		{"infinite", math.Inf(1), bounds300, maxTraceSegments},
		{"NaN", math.NaN(), bounds300, maxTraceSegments},
		{"empty bounds", 10, Bounds{}, maxTraceSegments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentLimit(tt.distance, tt.b); got != tt.want {
				t.Errorf("segmentLimit(%v) = %d, want %d", tt.distance, got, tt.want)
			}
		})
	}
}

func TestTrace_SegmentDistanceMatchesLength(t *testing.T) {
	p := Trace(gg.Pt(10, 20), DegreesToRadians(100), 1000, bounds300, true)
	for i, seg := range p.Segments {
		if seg.Distance < 0 {
			continue
		}
		if !approxEqual(seg.Length(), seg.Distance, 1e-6) {
			t.Errorf("Segments[%d]: Length() = %v, Distance = %v", i, seg.Length(), seg.Distance)
		}
	}
}

// A corner exit is resolved by the +X, -X, +Y, -Y priority, not by which
// boundary is reached first.
func TestTrace_PriorityOrder(t *testing.T) {
	start := gg.Pt(140, 145)
	p := Trace(start, DegreesToRadians(45), 30, bounds300, true)
	if len(p.Segments) < 2 {
		t.Fatalf("len(Segments) = %d, want >= 2", len(p.Segments))
	}

	first := p.Segments[0]
	if !approxEqual(first.To.X, 150, eps) {
		t.Errorf("first crossing at x = %v, want the +X boundary 150", first.To.X)
	}
	if first.To.Y <= 150 {
		t.Errorf("first crossing y = %v, want beyond +Y boundary (priority, not nearest)", first.To.Y)
	}

	second := p.Segments[1]
	if !approxEqual(second.From.X, -150, eps) {
		t.Errorf("second segment starts at x = %v, want -150", second.From.X)
	}
	if second.Distance >= 0 {
		t.Errorf("second segment Distance = %v, want negative back-up", second.Distance)
	}

	var sum float64
	for _, seg := range p.Segments {
		sum += seg.Distance
	}
	if !approxEqual(sum, 30, 1e-9) {
		t.Errorf("consumed = %v, want 30", sum)
	}
}

func TestTrace_NonFinite(t *testing.T) {
	t.Run("NaN distance", func(t *testing.T) {
		start := gg.Pt(1, 1)
		p := Trace(start, 0, math.NaN(), bounds300, true)
		if len(p.Segments) != 0 || p.End != start {
			t.Errorf("Trace(NaN) = %+v, want no motion", p)
		}
	})

	t.Run("NaN heading", func(t *testing.T) {
		p := Trace(gg.Pt(0, 0), math.NaN(), 10, bounds300, true)
		if len(p.Segments) != 1 {
			t.Fatalf("len(Segments) = %d, want 1", len(p.Segments))
		}
		if !math.IsNaN(p.End.X) || !math.IsNaN(p.End.Y) {
			t.Errorf("End = %v, want NaN propagation", p.End)
		}
	})

	t.Run("infinite distance without wrap", func(t *testing.T) {
		p := Trace(gg.Pt(0, 0), 0, math.Inf(1), bounds300, false)
		if !math.IsInf(p.End.Y, 1) {
			t.Errorf("End.Y = %v, want +Inf", p.End.Y)
		}
	})

	t.Run("infinite distance with wrap", func(t *testing.T) {
		p := Trace(gg.Pt(0, 0), 0, math.Inf(1), bounds300, true)
		if !p.Truncated {
			t.Error("Truncated = false, want true")
		}
		if len(p.Segments) != maxTraceSegments {
			t.Errorf("len(Segments) = %d, want %d", len(p.Segments), maxTraceSegments)
		}
	})

	t.Run("outside bounds on axis-parallel heading", func(t *testing.T) {
		// sin(0) == 0 makes the +X intersection divide by zero.
		p := Trace(gg.Pt(200, 0), 0, 10, bounds300, true)
		if len(p.Segments) == 0 {
			t.Fatal("no segments traced")
		}
		if !math.IsInf(p.Segments[0].Distance, 0) {
			t.Errorf("Segments[0].Distance = %v, want infinite", p.Segments[0].Distance)
		}
	})
}

func BenchmarkTrace_NoWrap(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Trace(gg.Pt(0, 0), 0.3, 100, bounds300, false)
	}
}

func BenchmarkTrace_Wrap(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Trace(gg.Pt(0, 0), 0.3, 10000, bounds300, true)
	}
}
