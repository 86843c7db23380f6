package clip

// maxSteps bounds the endpoint moves: each endpoint crosses at most two
// edges of a convex rectangle.
const maxSteps = 4

// Line clips s to r. It returns the visible part and true, or the zero
// Segment and false when s misses r. A segment touching r in a single point
// comes back with P0 == P1. Endpoint order is preserved.
func Line(s Segment, r Rect) (Segment, bool) {
	p0, p1 := s.P0, s.P1
	c0, c1 := outcodeOf(p0, r), outcodeOf(p1, r)
	for step := 0; ; step++ {
		if c0|c1 == inside {
			return Segment{p0, p1}, true
		}
		if c0&c1 != 0 || step == maxSteps {
			return Segment{}, false
		}

		// Move the endpoint with the larger code; top and bottom edges are
		// tested before right and left.
		out := c0
		if c1 > c0 {
			out = c1
		}
		p := intersect(p0, p1, out, r)
		if out == c0 {
			p0, c0 = p, outcodeOf(p, r)
		} else {
			p1, c1 = p, outcodeOf(p, r)
		}
	}
}

// intersect returns the point where the line through p0 and p1 crosses the
// edge selected by out. The division is safe: a code bit set on one
// endpoint but not on the other implies the segment spans that edge.
func intersect(p0, p1 Point, out outcode, r Rect) Point {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	switch {
	case out&top != 0:
		return Point{p0.X + dx*(r.Max.Y-p0.Y)/dy, r.Max.Y}
	case out&bottom != 0:
		return Point{p0.X + dx*(r.Min.Y-p0.Y)/dy, r.Min.Y}
	case out&right != 0:
		return Point{r.Max.X, p0.Y + dy*(r.Max.X-p0.X)/dx}
	default:
		return Point{r.Min.X, p0.Y + dy*(r.Min.X-p0.X)/dx}
	}
}

// Polyline clips the path through pts to r and returns the visible pieces in
// path order. The path is split wherever it leaves the rectangle; pieces
// shorter than two points are dropped.
func Polyline(pts []Point, r Rect) [][]Point {
	var (
		parts [][]Point
		cur   []Point
		cont  bool
	)
	for i := 1; i < len(pts); i++ {
		seg, ok := Line(Segment{pts[i-1], pts[i]}, r)
		if !ok {
			cont = false
			continue
		}
		if seg.P0 != pts[i-1] || !cont {
			if len(cur) >= 2 {
				parts = append(parts, cur)
			}
			cur = []Point{seg.P0}
		}
		cur = append(cur, seg.P1)
		cont = seg.P1 == pts[i]
	}
	if len(cur) >= 2 {
		parts = append(parts, cur)
	}

	return parts
}
