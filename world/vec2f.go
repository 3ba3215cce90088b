// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
)

// Vec2f is a point, or a free vector when used as a translation.
type Vec2f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func (vec Vec2f) Mul(factor float32) Vec2f {
	vec.X *= factor
	vec.Y *= factor
	return vec
}

func (vec Vec2f) Div(divisor float32) Vec2f {
	return vec.Mul(1.0 / divisor)
}

func (vec Vec2f) Add(otherVec Vec2f) Vec2f {
	vec.X += otherVec.X
	vec.Y += otherVec.Y
	return vec
}

func (vec Vec2f) Sub(otherVec Vec2f) Vec2f {
	vec.X -= otherVec.X
	vec.Y -= otherVec.Y
	return vec
}

func (vec Vec2f) Dot(otherVec Vec2f) float32 {
	return vec.X*otherVec.X + vec.Y*otherVec.Y
}

// To returns the vector pointing from vec to otherVec.
func (vec Vec2f) To(otherVec Vec2f) Vec2f {
	return otherVec.Sub(vec)
}

// Rot90 rotates 90 degrees clockwise.
func (vec Vec2f) Rot90() Vec2f {
	return Vec2f{X: -vec.Y, Y: vec.X}
}

// Neg rotates 180 degrees.
func (vec Vec2f) Neg() Vec2f {
	return Vec2f{X: -vec.X, Y: -vec.Y}
}

func (vec Vec2f) DistanceSquared(otherVec Vec2f) float32 {
	x := vec.X - otherVec.X
	y := vec.Y - otherVec.Y
	return x*x + y*y
}

func (vec Vec2f) Length() float32 {
	return math32.Hypot(vec.X, vec.Y)
}

// Norm returns a unit vector, or the zero vector if vec has no length.
func (vec Vec2f) Norm() Vec2f {
	length := vec.Length()
	if length <= 0 {
		return Vec2f{}
	}
	return vec.Div(length)
}

// Origin implements Bound.Origin.
func (vec Vec2f) Origin() Vec2f {
	return vec
}

// Center implements Bound.Center.
func (vec Vec2f) Center() Vec2f {
	return vec
}

// AABB implements Bound.AABB with a zero sized box.
func (vec Vec2f) AABB() AABB {
	return AABB{Vec2f: vec}
}

func (vec Vec2f) bound() {}
