package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointToSegmentDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	// projection inside the segment
	assert.InDelta(t, 4.0, PointToSegmentDistance(Pt(5, 4), a, b), 1e-9)
	assert.InDelta(t, 6.0, PointToSegmentDistance(Pt(5, -6), a, b), 1e-9)

	// projection clamped to the endpoints
	assert.InDelta(t, 5.0, PointToSegmentDistance(Pt(-3, 4), a, b), 1e-9)
	assert.InDelta(t, 5.0, PointToSegmentDistance(Pt(13, -4), a, b), 1e-9)

	// on the segment
	assert.Equal(t, 0.0, PointToSegmentDistance(Pt(7, 0), a, b))
}

func TestPointToSegmentDistanceDegenerate(t *testing.T) {
	a := Pt(3, -2)
	for _, p := range []Point{Pt(3, -2), Pt(0, 0), Pt(6, 2), Pt(-100, 57)} {
		assert.InDelta(t, Distance(p, a), PointToSegmentDistance(p, a, a), 1e-12, "p=%v", p)
	}
	assert.False(t, math.IsNaN(PointToSegmentDistance(Pt(1, 1), a, a)))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Pt(0, 0), Pt(3, 4)))
	assert.Equal(t, int64(25), DistanceSq(Pt(0, 0), Pt(-3, 4)))
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(Pt(10, 2), Pt(-1, 7))
	assert.Equal(t, Pt(-1, 2), lo)
	assert.Equal(t, Pt(10, 7), hi)
}

func TestPointInPolygon(t *testing.T) {
	tri := []Point{Pt(0, 10), Pt(5, 0), Pt(10, 10)}

	assert.True(t, PointInPolygon(Pt(5, 5), tri))
	assert.True(t, PointInPolygon(Pt(5, 9), tri))

	// vertices and edges are inside
	assert.True(t, PointInPolygon(Pt(5, 0), tri))
	assert.True(t, PointInPolygon(Pt(3, 10), tri))
	assert.True(t, PointInPolygon(Pt(10, 10), tri))

	assert.False(t, PointInPolygon(Pt(0, 0), tri))
	assert.False(t, PointInPolygon(Pt(5, 11), tri))
	assert.False(t, PointInPolygon(Pt(11, 10), tri))

	// fewer than three vertices never contain anything
	assert.False(t, PointInPolygon(Pt(0, 0), []Point{Pt(0, 0), Pt(1, 1)}))
}

func TestOnSegment(t *testing.T) {
	assert.True(t, OnSegment(Pt(2, 2), Pt(0, 0), Pt(4, 4)))
	assert.False(t, OnSegment(Pt(5, 5), Pt(0, 0), Pt(4, 4)))
	assert.False(t, OnSegment(Pt(2, 3), Pt(0, 0), Pt(4, 4)))
}
