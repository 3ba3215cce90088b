// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// AABB is an axis aligned box with its origin at the top left corner.
type AABB struct {
	Vec2f
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func AABBFrom(x, y, width, height float32) AABB {
	return AABB{
		Vec2f:  Vec2f{X: x, Y: y},
		Width:  width,
		Height: height,
	}
}

// Intersects a and b are intersecting, touching included
func (a AABB) Intersects(b AABB) bool {
	return a.X+a.Width >= b.X && a.X <= b.X+b.Width && a.Y+a.Height >= b.Y && a.Y <= b.Height+b.Y
}

// Contains a fully contains b
func (a AABB) Contains(b AABB) bool {
	return a.X <= b.X && a.Y <= b.Y && a.X+a.Width >= b.X+b.Width && a.Y+a.Height >= b.Y+b.Height
}

// ContainsPoint is the cheap routing test, edges included on every side.
func (a AABB) ContainsPoint(point Vec2f) bool {
	return point.X >= a.X && point.X <= a.X+a.Width && point.Y >= a.Y && point.Y <= a.Y+a.Height
}

// ClosestPoint clamps point into a.
func (a AABB) ClosestPoint(point Vec2f) Vec2f {
	return Vec2f{
		X: clamp(point.X, a.X, a.X+a.Width),
		Y: clamp(point.Y, a.Y, a.Y+a.Height),
	}
}

// Corners in clockwise order starting at the top left.
func (a AABB) Corners() [4]Vec2f {
	maxX := a.X + a.Width
	maxY := a.Y + a.Height
	return [4]Vec2f{
		{X: a.X, Y: a.Y},
		{X: maxX, Y: a.Y},
		{X: maxX, Y: maxY},
		{X: a.X, Y: maxY},
	}
}

// ClosestCorner is the corner of a nearest to point.
func (a AABB) ClosestCorner(point Vec2f) Vec2f {
	corners := a.Corners()
	closest := corners[0]
	closestDistance := point.DistanceSquared(closest)
	for _, corner := range corners[1:] {
		if d := point.DistanceSquared(corner); d < closestDistance {
			closest = corner
			closestDistance = d
		}
	}
	return closest
}

// Quadrants All quadrants of a, NW, NE, SW, SE
func (a AABB) Quadrants() [4]AABB {
	var quadrants [4]AABB
	for i := range quadrants {
		quadrants[i] = a.Quadrant(i)
	}
	return quadrants
}

// Quadrant of a by index
func (a AABB) Quadrant(quadrant int) AABB {
	pos := a.Vec2f
	width := a.Width * 0.5
	height := a.Height * 0.5
	switch quadrant {
	case 1:
		pos.X += width
	case 2:
		pos.Y += height
	case 3:
		pos.X += width
		pos.Y += height
	}
	return AABB{Vec2f: pos, Width: width, Height: height}
}

// Origin implements Bound.Origin.
func (a AABB) Origin() Vec2f {
	return a.Vec2f
}

// Center implements Bound.Center.
func (a AABB) Center() Vec2f {
	return Vec2f{X: a.X + a.Width*0.5, Y: a.Y + a.Height*0.5}
}

// AABB implements Bound.AABB.
func (a AABB) AABB() AABB {
	return a
}

func (a AABB) bound() {}
