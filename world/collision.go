// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

// Intersect returns the minimum translation vector if a and b overlap.
// The MTV points from a toward b. Touching bounds collide with a zero magnitude.
func Intersect(a, b Bound) (MTV, bool) {
	switch a := a.(type) {
	case AABB:
		switch b := b.(type) {
		case AABB:
			return aabbAABB(a, b)
		case Circle:
			return aabbCircle(a, b, false)
		case Vec2f:
			return aabbCircle(a, pointCircle(b), false)
		}
	case Circle:
		switch b := b.(type) {
		case AABB:
			return aabbCircle(b, a, true)
		case Circle:
			return circleCircle(a, b)
		case Vec2f:
			return circleCircle(a, pointCircle(b))
		}
	case Vec2f:
		switch b := b.(type) {
		case AABB:
			return aabbCircle(b, pointCircle(a), true)
		case Circle:
			return circleCircle(pointCircle(a), b)
		case Vec2f:
			return circleCircle(pointCircle(a), pointCircle(b))
		}
	}
	return MTV{}, false
}

// Collides is Intersect without the MTV. It only runs the exact cheap tests.
func Collides(a, b Bound) bool {
	switch a := a.(type) {
	case AABB:
		switch b := b.(type) {
		case AABB:
			return a.Intersects(b)
		case Circle:
			return aabbCircleOverlap(a, b)
		case Vec2f:
			return a.ContainsPoint(b)
		}
	case Circle:
		switch b := b.(type) {
		case AABB:
			return aabbCircleOverlap(b, a)
		case Circle:
			return circleCircleOverlap(a, b)
		case Vec2f:
			return circleCircleOverlap(a, pointCircle(b))
		}
	case Vec2f:
		switch b := b.(type) {
		case AABB:
			return b.ContainsPoint(a)
		case Circle:
			return circleCircleOverlap(pointCircle(a), b)
		case Vec2f:
			return a == b
		}
	}
	return false
}

// Points are circles with no radius so they reuse the circle axes.
func pointCircle(point Vec2f) Circle {
	return Circle{Vec2f: point}
}

func aabbCircleOverlap(box AABB, circle Circle) bool {
	return box.ClosestPoint(circle.Vec2f).DistanceSquared(circle.Vec2f) <= square(circle.R)
}

// Also handles points as circles with no radius
func circleCircleOverlap(circle, otherCircle Circle) bool {
	return circle.DistanceSquared(otherCircle.Vec2f) <= square(circle.R+otherCircle.R)
}

func aabbAABB(box, otherBox AABB) (MTV, bool) {
	if !box.Intersects(otherBox) {
		return MTV{}, false
	}

	info := aabbSATInfo(box)
	other := aabbSATInfo(otherBox)

	// Same orientation so the second box's axes are redundant
	other.Axes = nil

	return satMTV(&info, &other, false)
}

// aabbCircle MTV points from box to circle, or circle to box if flip.
func aabbCircle(box AABB, circle Circle, flip bool) (MTV, bool) {
	if !aabbCircleOverlap(box, circle) {
		return MTV{}, false
	}

	info := aabbSATInfo(box)
	other := circleSATInfo(circle)

	if corner := box.ClosestCorner(circle.Vec2f); corner != circle.Vec2f {
		other.Axes = []Vec2f{circle.To(corner)}
	}

	return satMTV(&info, &other, flip)
}

func circleCircle(circle, otherCircle Circle) (MTV, bool) {
	if !circleCircleOverlap(circle, otherCircle) {
		return MTV{}, false
	}

	info := circleSATInfo(circle)
	other := circleSATInfo(otherCircle)
	info.Axes = []Vec2f{circle.To(otherCircle.Vec2f)}

	return satMTV(&info, &other, false)
}
