package clip

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Segment is a line segment from P0 to P1. P0 == P1 is a valid point
// segment.
type Segment struct {
	P0, P1 Point
}

// Rect is an axis-aligned rectangle; Min holds the smaller coordinates.
// Min == Max on either axis gives a line or point rectangle.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle spanned by two opposite corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	return Rect{Min: Point{x0, y0}, Max: Point{x1, y1}}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return outcodeOf(p, r) == inside
}

// outcode classifies a point against the four half-planes of a rectangle.
type outcode uint8

const (
	inside outcode = 0
	left   outcode = 1
	right  outcode = 2
	bottom outcode = 4
	top    outcode = 8
)

func outcodeOf(p Point, r Rect) outcode {
	var c outcode
	if p.X < r.Min.X {
		c |= left
	} else if p.X > r.Max.X {
		c |= right
	}
	if p.Y < r.Min.Y {
		c |= bottom
	} else if p.Y > r.Max.Y {
		c |= top
	}

	return c
}
