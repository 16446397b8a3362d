// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/geometry"
	"github.com/katalvlaran/lvnum/probability"
)

const eps = 1e-12

func TestLineXAxisIntersection(t *testing.T) {
	x, err := geometry.LineXAxisIntersection(-1, -1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	x, err = geometry.LineXAxisIntersection(0, -1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, x)

	_, err = geometry.LineXAxisIntersection(-1, 2, 1, 2)
	require.ErrorIs(t, err, geometry.ErrParallelLine)
}

func TestPoint2D(t *testing.T) {
	p := geometry.Point2D{X: 1, Y: 2}
	assert.Equal(t, 1.0, p.DistanceTo(geometry.Point2D{X: 1, Y: 3}))
	assert.Equal(t, [2]float64{1, 2}, p.VectorTo(geometry.Point2D{X: 2, Y: 4}))
	assert.Equal(t, [2]float64{1, 0}, p.UnitVectorTo(geometry.Point2D{X: 10, Y: 2}))
}

func TestLine2D_Construction(t *testing.T) {
	line, err := geometry.NewLineThrough(geometry.Point2D{X: 0, Y: 1}, geometry.Point2D{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, line.Slope)
	assert.Equal(t, 1.0, line.Intercept)
	assert.InDelta(t, 1/math.Sqrt2, line.Direction[0], eps)
	assert.InDelta(t, 1/math.Sqrt2, line.Direction[1], eps)

	horiz := geometry.NewLineSlopeIntercept(0, 3)
	assert.Equal(t, [2]float64{1, 0}, horiz.Direction)

	vert, err := geometry.NewLineThrough(geometry.Point2D{X: 8, Y: 1}, geometry.Point2D{X: 8, Y: 2})
	require.NoError(t, err)
	assert.True(t, vert.IsVertical())
	assert.True(t, math.IsInf(vert.Slope, 1))
	assert.True(t, math.IsNaN(vert.Intercept))
	assert.Equal(t, [2]float64{0, 1}, vert.Direction)

	line2 := geometry.NewLineSlopeIntercept(0.5, 2)
	assert.InDelta(t, 1/math.Sqrt(1.25), line2.Direction[0], eps)
	assert.InDelta(t, 0.5/math.Sqrt(1.25), line2.Direction[1], eps)

	_, err = geometry.NewLineThrough(geometry.Point2D{X: 1, Y: 1}, geometry.Point2D{X: 1, Y: 1})
	require.ErrorIs(t, err, geometry.ErrDegenerateLine)
}

func TestLine2D_Y(t *testing.T) {
	line, _ := geometry.NewLineThrough(geometry.Point2D{X: 0, Y: 1}, geometry.Point2D{X: 1, Y: 2})
	line2 := geometry.NewLineSlopeIntercept(0.5, 2)
	horiz := geometry.NewLineSlopeIntercept(0, 3)

	cases := []struct {
		name string
		l    geometry.Line2D
		x, y float64
	}{
		{"line x=0", line, 0, 1},
		{"line x=1", line, 1, 2},
		{"line x=7", line, 7, 8},
		{"line2 x=0", line2, 0, 2},
		{"line2 x=-1", line2, -1, 1.5},
		{"line2 x=-10", line2, -10, -3},
		{"horiz x=0", horiz, 0, 3},
		{"horiz x=8", horiz, 8, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			y, err := tc.l.Y(tc.x)
			require.NoError(t, err)
			assert.Equal(t, tc.y, y)
		})
	}

	vert, _ := geometry.NewLineThrough(geometry.Point2D{X: 8, Y: 1}, geometry.Point2D{X: 8, Y: 2})
	_, err := vert.Y(8)
	require.ErrorIs(t, err, geometry.ErrVerticalLine)
	assert.Contains(t, err.Error(), "vertical line having infinite y values for x=8")
	_, err = vert.Y(0)
	require.ErrorIs(t, err, geometry.ErrVerticalLine)
	assert.Contains(t, err.Error(), "vertical line not passing through x=0")
}

func TestLine2D_ParallelThrough(t *testing.T) {
	line, _ := geometry.NewLineThrough(geometry.Point2D{X: 0, Y: 1}, geometry.Point2D{X: 1, Y: 2})
	l3 := line.ParallelThrough(geometry.Point2D{X: 0, Y: 3})
	assert.Equal(t, 1.0, l3.Slope)
	assert.Equal(t, 3.0, l3.Intercept)
	assert.InDelta(t, 1/math.Sqrt2, l3.Direction[0], eps)

	vert, _ := geometry.NewLineThrough(geometry.Point2D{X: 8, Y: 2}, geometry.Point2D{X: 8, Y: 1})
	pv := vert.ParallelThrough(geometry.Point2D{X: -3, Y: 0})
	assert.True(t, pv.IsVertical())
	assert.Equal(t, -3.0, pv.X0)
	assert.Equal(t, [2]float64{0, -1}, pv.Direction)
}

func TestLine2D_Intersection(t *testing.T) {
	line2 := geometry.NewLineSlopeIntercept(0.5, 2)

	kind, _ := line2.Intersection(geometry.NewLineSlopeIntercept(0.5, 8))
	assert.Equal(t, geometry.NoIntersection, kind)

	kind, _ = line2.Intersection(geometry.NewLineSlopeIntercept(0.5, 2))
	assert.Equal(t, geometry.CoincidentLines, kind)
	assert.Equal(t, "coincident", kind.String())

	kind, p := line2.Intersection(geometry.NewLineSlopeIntercept(-0.25, 5))
	require.Equal(t, geometry.PointIntersection, kind)
	assert.Equal(t, geometry.Point2D{X: 4, Y: 4}, p)

	// vertical against oblique, both orders
	vert, _ := geometry.NewLineThrough(geometry.Point2D{X: 2, Y: 0}, geometry.Point2D{X: 2, Y: 5})
	kind, p = vert.Intersection(line2)
	require.Equal(t, geometry.PointIntersection, kind)
	assert.Equal(t, geometry.Point2D{X: 2, Y: 3}, p)
	kind, p = line2.Intersection(vert)
	require.Equal(t, geometry.PointIntersection, kind)
	assert.Equal(t, geometry.Point2D{X: 2, Y: 3}, p)

	other, _ := geometry.NewLineThrough(geometry.Point2D{X: 3, Y: 0}, geometry.Point2D{X: 3, Y: 1})
	kind, _ = vert.Intersection(other)
	assert.Equal(t, geometry.NoIntersection, kind)
	kind, _ = vert.Intersection(vert)
	assert.Equal(t, geometry.CoincidentLines, kind)
}

func TestShapes_IsInside(t *testing.T) {
	rect := geometry.Rectangle{Center: [2]float64{0, 0}, Width: 2, Height: 4}
	assert.True(t, rect.IsInside([]float64{1, 2})) // closed boundary
	assert.False(t, rect.IsInside([]float64{1.01, 0}))
	assert.False(t, rect.IsInside([]float64{0, 0, 0})) // wrong dimension

	circle := geometry.Circle{Center: [2]float64{1, 1}, Radius: 1}
	assert.True(t, circle.IsInside([]float64{1.5, 1.5}))
	assert.False(t, circle.IsInside([]float64{2, 1})) // open boundary

	prism := geometry.RectangularPrism{Center: [3]float64{0, 0, 0}, Width: 1, Height: 1, Depth: 1}
	assert.True(t, prism.IsInside([]float64{0.5, -0.5, 0.5}))
	assert.False(t, prism.IsInside([]float64{0.5, -0.5, 0.6}))

	sphere := geometry.Sphere{Center: [3]float64{0, 0, 0}, Radius: 2}
	assert.True(t, sphere.IsInside([]float64{1, 1, 1}))
	assert.False(t, sphere.IsInside([]float64{2, 0, 0}))
	assert.False(t, sphere.IsInside([]float64{0, 0}))
}

func TestShapes_Validate(t *testing.T) {
	require.NoError(t, geometry.Circle{Radius: 1}.Validate())
	require.ErrorIs(t, geometry.Circle{Radius: 0}.Validate(), geometry.ErrInvalidShape)
	require.ErrorIs(t, geometry.Rectangle{Width: 1, Height: -1}.Validate(), geometry.ErrInvalidShape)
	require.ErrorIs(t, geometry.Sphere{Center: [3]float64{math.NaN(), 0, 0}, Radius: 1}.Validate(), geometry.ErrInvalidShape)
	require.ErrorIs(t, geometry.RectangularPrism{Width: 1, Height: 1, Depth: math.Inf(1)}.Validate(), geometry.ErrInvalidShape)
}

func TestBoundingBox(t *testing.T) {
	a := geometry.Rectangle{Center: [2]float64{0, 0}, Width: 2, Height: 2}.BoundingBox()
	b := geometry.Circle{Center: [2]float64{3, 1}, Radius: 1}.BoundingBox()

	u, err := geometry.UnionBoxes(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, u.Min)
	assert.Equal(t, []float64{4, 2}, u.Max)
	area, err := u.Area()
	require.NoError(t, err)
	assert.Equal(t, 15.0, area)
	_, err = u.Volume()
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)

	s := geometry.Sphere{Radius: 1}.BoundingBox()
	vol, err := s.Volume()
	require.NoError(t, err)
	assert.Equal(t, 8.0, vol)
	assert.Equal(t, 8.0, s.Measure())

	_, err = geometry.UnionBoxes()
	require.ErrorIs(t, err, geometry.ErrNoBoxes)
	_, err = geometry.UnionBoxes(a, s)
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)
}

func TestBoundingBox_RandomPoint(t *testing.T) {
	box := geometry.BoundingBox{Min: []float64{-1, 2, 10}, Max: []float64{1, 3, 20}}
	rng := probability.RNGFromSeed(3)
	for i := 0; i < 500; i++ {
		p := box.RandomPoint(rng)
		require.Len(t, p, 3)
		assert.True(t, box.Contains(p), "point %v outside %v", p, box)
	}

	dst := make([]float64, 2)
	require.ErrorIs(t, box.FillRandom(rng, dst), geometry.ErrDimensionMismatch)
}
