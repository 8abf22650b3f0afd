// Package geom holds the integer point type and the distance and containment
// helpers the shape model is built on.
package geom

import "math"

// Point is a canvas coordinate in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq returns the squared distance between a and b. It is exact for
// integer points, which matters for boundary-inclusive tests.
func DistanceSq(a, b Point) int64 {
	dx := int64(b.X - a.X)
	dy := int64(b.Y - a.Y)
	return dx*dx + dy*dy
}

// PointToSegmentDistance returns the distance from p to the closest point of
// the segment [a, b]. A zero-length segment degrades to Distance(p, a).
func PointToSegmentDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return Distance(p, a)
	}

	t := (float64(p.X-a.X)*dx + float64(p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	cx := float64(a.X) + t*dx
	cy := float64(a.Y) + t*dy
	return math.Hypot(float64(p.X)-cx, float64(p.Y)-cy)
}

// Bounds returns the component-wise minimum and maximum of a and b.
func Bounds(a, b Point) (min, max Point) {
	min = Point{X: minInt(a.X, b.X), Y: minInt(a.Y, b.Y)}
	max = Point{X: maxInt(a.X, b.X), Y: maxInt(a.Y, b.Y)}
	return min, max
}

// OnSegment reports whether p lies exactly on the segment [a, b].
func OnSegment(p, a, b Point) bool {
	if cross(a, b, p) != 0 {
		return false
	}
	lo, hi := Bounds(a, b)
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// PointInPolygon tests whether p is inside polygon or on one of its edges.
// Interior points are found by even-odd ray casting.
func PointInPolygon(p Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		if OnSegment(p, polygon[i], polygon[(i+1)%n]) {
			return true
		}
	}

	inside := false
	for i := 0; i < n; i++ {
		pi, pj := polygon[i], polygon[(i+1)%n]

		// Does a ray from p going right cross edge pi-pj?
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < x {
				inside = !inside
			}
		}
	}

	return inside
}

// cross computes the cross product of vectors OA and OB.
func cross(o, a, b Point) int64 {
	return int64(a.X-o.X)*int64(b.Y-o.Y) - int64(a.Y-o.Y)*int64(b.X-o.X)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
