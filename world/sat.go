// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"github.com/chewxy/math32"
)

// World axes shared by every AABB. The other two face normals are parallel to these.
var aabbAxes = [2]Vec2f{{X: 0, Y: -1}, {X: 1, Y: 0}}

// SATInfo is a shape reduced to what the separating axis loop needs.
type SATInfo struct {
	Axes   []Vec2f
	Points []Vec2f
	Center Vec2f
	Buffer float32 // Projections are widened by this on both sides
}

// MTV is the minimum translation vector between two overlapping bounds.
type MTV struct {
	Vector    Vec2f   `json:"vector"`
	Direction Vec2f   `json:"direction"`
	Magnitude float32 `json:"magnitude"`
}

func aabbSATInfo(box AABB) SATInfo {
	corners := box.Corners()
	return SATInfo{
		Axes:   aabbAxes[:],
		Points: corners[:],
		Center: box.Center(),
	}
}

func circleSATInfo(circle Circle) SATInfo {
	return SATInfo{
		Points: []Vec2f{circle.Vec2f},
		Center: circle.Vec2f,
		Buffer: circle.R,
	}
}

// project returns the interval info covers on a unit axis.
func (info *SATInfo) project(axis Vec2f) (minimum, maximum float32) {
	minimum = math32.Inf(1)
	maximum = math32.Inf(-1)
	for _, point := range info.Points {
		d := point.Dot(axis)
		minimum = min(minimum, d-info.Buffer)
		maximum = max(maximum, d+info.Buffer)
	}
	return
}

// satMTV runs the separating axis test on info and other.
// The direction points from info toward other, or the opposite if flip.
func satMTV(info, other *SATInfo, flip bool) (mtv MTV, ok bool) {
	minOverlap := math32.Inf(1)
	var minAxis Vec2f
	var minSide float32 // +1 if other lies toward +minAxis, -1 if toward -minAxis, 0 if level

	test := func(axis Vec2f) bool {
		axis = axis.Norm()
		minimum, maximum := info.project(axis)
		otherMin, otherMax := other.project(axis)

		// Not colliding
		if maximum < otherMin || otherMax < minimum {
			return false
		}

		forward := maximum - otherMin
		backward := otherMax - minimum
		overlap := min(forward, backward)
		if overlap < minOverlap {
			minOverlap = overlap
			minAxis = axis
			switch {
			case forward < backward:
				minSide = 1
			case backward < forward:
				minSide = -1
			default:
				minSide = 0
			}
		}
		return true
	}

	for _, axis := range info.Axes {
		if !test(axis) {
			return
		}
	}
	for _, axis := range other.Axes {
		if !test(axis) {
			return
		}
	}

	// No axes at all means nothing could separate them
	if math32.IsInf(minOverlap, 1) {
		minOverlap = 0
	}

	// Level along minAxis, so pick the side by the perpendicular offset. Swapping
	// info and other negates the offset, keeping the two directions opposite.
	if minSide == 0 {
		minSide = info.Center.To(other.Center).Dot(minAxis.Rot90())
	}
	if minSide < 0 {
		minAxis = minAxis.Neg()
	}
	if flip {
		minAxis = minAxis.Neg()
	}

	return MTV{
		Vector:    minAxis.Mul(minOverlap),
		Direction: minAxis,
		Magnitude: minOverlap,
	}, true
}
