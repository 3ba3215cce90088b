// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"fmt"
	"strconv"
)

// Bound is a Vec2f (point), an AABB or a Circle. No other types can implement it.
type Bound interface {
	// Origin is where the bound is routed from. Top left for an AABB, center otherwise.
	Origin() Vec2f

	// Center is the point MTV directions are measured from.
	Center() Vec2f

	// AABB is the bounding rectangle.
	AABB() AABB

	bound()
}

// Circle is a center and radius.
type Circle struct {
	Vec2f
	R float32 `json:"r"`
}

func CircleFrom(x, y, r float32) Circle {
	return Circle{Vec2f: Vec2f{X: x, Y: y}, R: r}
}

// Origin implements Bound.Origin.
func (c Circle) Origin() Vec2f {
	return c.Vec2f
}

// Center implements Bound.Center.
func (c Circle) Center() Vec2f {
	return c.Vec2f
}

// AABB implements Bound.AABB.
func (c Circle) AABB() AABB {
	return AABB{
		Vec2f:  Vec2f{X: c.X - c.R, Y: c.Y - c.R},
		Width:  c.R * 2,
		Height: c.R * 2,
	}
}

func (c Circle) bound() {}

func IsPoint(bound Bound) bool {
	_, ok := bound.(Vec2f)
	return ok
}

func IsAABB(bound Bound) bool {
	_, ok := bound.(AABB)
	return ok
}

func IsCircle(bound Bound) bool {
	_, ok := bound.(Circle)
	return ok
}

// PointKey buckets bounds that share an origin.
type PointKey struct {
	X, Y float32
}

func PointKeyOf(bound Bound) PointKey {
	origin := bound.Origin()
	return PointKey{X: origin.X, Y: origin.Y}
}

func (key PointKey) String() string {
	return "(" + strconv.FormatFloat(float64(key.X), 'f', -1, 32) + "," + strconv.FormatFloat(float64(key.Y), 'f', -1, 32) + ")"
}

// BoundString formats any bound for debug output.
func BoundString(bound Bound) string {
	switch b := bound.(type) {
	case Vec2f:
		return fmt.Sprintf("point(%g, %g)", b.X, b.Y)
	case AABB:
		return fmt.Sprintf("box(%g, %g, %g, %g)", b.X, b.Y, b.Width, b.Height)
	case Circle:
		return fmt.Sprintf("circle(%g, %g, %g)", b.X, b.Y, b.R)
	default:
		return fmt.Sprintf("bound(%v)", bound)
	}
}
