// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

type Vec2 struct {
	U, V float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func V2FromA(a [2]float32) Vec2 {
	return Vec2{a[0], a[1]}
}

func (v *Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Length returns the length of the vector
func (v *Vec3) Length() float32 {
	return math32.Sqrt(Dot(*v, *v))
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Min returns the component wise minimum of a and b
func Min(a, b Vec3) Vec3 {
	return Vec3{
		X: math32.Min(a.X, b.X),
		Y: math32.Min(a.Y, b.Y),
		Z: math32.Min(a.Z, b.Z),
	}
}

// Max returns the component wise maximum of a and b
func Max(a, b Vec3) Vec3 {
	return Vec3{
		X: math32.Max(a.X, b.X),
		Y: math32.Max(a.Y, b.Y),
		Z: math32.Max(a.Z, b.Z),
	}
}

// Bounds returns the axis aligned box enclosing all points.
// ok is false for an empty slice.
func Bounds(points []Vec3) (mins, maxs Vec3, ok bool) {
	if len(points) == 0 {
		return Vec3{}, Vec3{}, false
	}
	inf := math32.Inf(1)
	mins = Vec3{inf, inf, inf}
	maxs = mins.Scale(-1)
	for _, p := range points {
		mins = Min(mins, p)
		maxs = Max(maxs, p)
	}
	return mins, maxs, true
}

// Center returns the midpoint between mins and maxs
func Center(mins, maxs Vec3) Vec3 {
	return Add(mins, maxs).Scale(0.5)
}
