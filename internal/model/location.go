package model

import "math"

// Location is a point in the game world. Value type, passed by value.
type Location struct {
	X float64
	Y float64
	Z float64
}

// NewLocation creates a Location with the given coordinates.
func NewLocation(x, y, z float64) Location {
	return Location{X: x, Y: y, Z: z}
}

// DistanceSquared returns the squared distance to another point
// (no sqrt on the hot path).
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	dz := l.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the distance to another point.
func (l Location) Distance(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}

// StepToward returns a Location moved from l toward dest by at most step
// units. It never overshoots: once dest is within step, dest is returned.
func (l Location) StepToward(dest Location, step float64) Location {
	dist := l.Distance(dest)
	if dist <= step || dist == 0 {
		return dest
	}
	f := step / dist
	return Location{
		X: l.X + (dest.X-l.X)*f,
		Y: l.Y + (dest.Y-l.Y)*f,
		Z: l.Z + (dest.Z-l.Z)*f,
	}
}
