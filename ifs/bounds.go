package ifs

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside b grown by tol on every side.
func (b Box) Contains(p Point, tol float64) bool {
	return p[0] >= b.MinX-tol && p[0] <= b.MaxX+tol &&
		p[1] >= b.MinY-tol && p[1] <= b.MaxY+tol
}

// Bounds returns the smallest Box containing every point.
//
// Errors:
//   - ErrInvalidArgument — empty input.
func Bounds(points []Point) (Box, error) {
	if len(points) == 0 {
		return Box{}, ifsErrorf(MethodBounds, "no points", ErrInvalidArgument)
	}
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p[0])
		b.MaxX = math.Max(b.MaxX, p[0])
		b.MinY = math.Min(b.MinY, p[1])
		b.MaxY = math.Max(b.MaxY, p[1])
	}

	return b, nil
}
