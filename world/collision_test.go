// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"fmt"
	"math/rand"
	"testing"
)

func vecApprox(a, b Vec2f) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Bound
		collides  bool
		direction Vec2f
		magnitude float32
	}{
		{"circles", CircleFrom(10, 10, 5), CircleFrom(5, 10, 5), true, Vec2f{X: -1}, 5},
		{"circle contains circle", CircleFrom(10, 10, 5), CircleFrom(10, 10, 2), true, Vec2f{}, 7},
		{"circles apart", CircleFrom(0, 0, 5), CircleFrom(20, 0, 5), false, Vec2f{}, 0},
		{"circles touching", CircleFrom(0, 0, 5), CircleFrom(10, 0, 5), true, Vec2f{X: 1}, 0},
		{"circle point", CircleFrom(10, 10, 5), Vec2f{X: 11, Y: 10}, true, Vec2f{X: 1}, 4},
		{"circle point outside", CircleFrom(10, 10, 5), Vec2f{X: 16, Y: 10}, false, Vec2f{}, 0},
		{"box box touching", AABBFrom(10, 10, 5, 5), AABBFrom(5, 10, 5, 5), true, Vec2f{X: -1}, 0},
		{"box box overlap", AABBFrom(0, 0, 10, 10), AABBFrom(8, 2, 10, 6), true, Vec2f{X: 1}, 2},
		{"box box apart", AABBFrom(0, 0, 10, 10), AABBFrom(11, 0, 10, 10), false, Vec2f{}, 0},
		{"box circle", AABBFrom(5, 10, 5, 5), CircleFrom(10, 10, 5), true, Vec2f{Y: -1}, 5},
		{"circle box", CircleFrom(10, 10, 5), AABBFrom(5, 10, 5, 5), true, Vec2f{Y: 1}, 5},
		{"box circle beside", AABBFrom(0, 0, 10, 10), CircleFrom(12, 5, 3), true, Vec2f{X: 1}, 1},
		{"box circle near corner", AABBFrom(0, 0, 10, 10), CircleFrom(13, 13, 3), false, Vec2f{}, 0},
		{"box point inside", AABBFrom(0, 0, 10, 10), Vec2f{X: 2, Y: 5}, true, Vec2f{X: -1}, 2},
		{"point box", Vec2f{X: 10, Y: 10}, AABBFrom(5, 10, 5, 5), true, Vec2f{Y: 1}, 0},
		{"point box outside", Vec2f{X: 11, Y: 10}, AABBFrom(5, 10, 5, 5), false, Vec2f{}, 0},
		{"points", Vec2f{X: 10, Y: 10}, Vec2f{X: 10, Y: 10}, true, Vec2f{}, 0},
		{"points apart", Vec2f{X: 10, Y: 10}, Vec2f{X: 10, Y: 11}, false, Vec2f{}, 0},
		{"zero box", AABBFrom(3, 3, 0, 0), AABBFrom(0, 0, 10, 10), true, Vec2f{Y: 1}, 3},
	}

	for _, test := range tests {
		mtv, ok := Intersect(test.a, test.b)
		if ok != test.collides {
			t.Errorf("%s: expected collides %t, got %t", test.name, test.collides, ok)
			continue
		}
		if !ok {
			continue
		}
		if !approx(mtv.Magnitude, test.magnitude) {
			t.Errorf("%s: expected magnitude %f, got %f", test.name, test.magnitude, mtv.Magnitude)
		}
		if !vecApprox(mtv.Direction, test.direction) {
			t.Errorf("%s: expected direction %v, got %v", test.name, test.direction, mtv.Direction)
		}
		if !vecApprox(mtv.Vector, mtv.Direction.Mul(mtv.Magnitude)) {
			t.Errorf("%s: vector %v is not direction * magnitude", test.name, mtv.Vector)
		}
		if Collides(test.a, test.b) != test.collides {
			t.Errorf("%s: Collides disagrees with Intersect", test.name)
		}
	}
}

func TestIntersect_circles(t *testing.T) {
	mtv, ok := Intersect(CircleFrom(10, 10, 5), CircleFrom(5, 10, 5))
	if !ok {
		t.Fatal("expected collision")
	}
	if mtv.Direction != (Vec2f{X: -1, Y: 0}) || mtv.Magnitude != 5 || mtv.Vector != (Vec2f{X: -5, Y: 0}) {
		t.Errorf("unexpected mtv %+v", mtv)
	}
}

func testSymmetric(t *testing.T, a, b Bound) {
	t.Helper()

	mtv, ok := Intersect(a, b)
	otherMTV, otherOK := Intersect(b, a)
	if ok != otherOK {
		t.Fatalf("%s and %s: asymmetric collision %t %t", BoundString(a), BoundString(b), ok, otherOK)
	}
	if !ok {
		return
	}

	if !approx(mtv.Magnitude, otherMTV.Magnitude) {
		t.Errorf("%s and %s: magnitude %f != %f", BoundString(a), BoundString(b), mtv.Magnitude, otherMTV.Magnitude)
	}
	if !vecApprox(mtv.Direction, otherMTV.Direction.Neg()) {
		t.Errorf("%s and %s: direction %v is not opposite of %v", BoundString(a), BoundString(b), mtv.Direction, otherMTV.Direction)
	}
}

func TestIntersect_symmetry(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a := randomBound(20)
		b := randomBound(20)
		if a.Center() == b.Center() {
			continue
		}
		testSymmetric(t, a, b)
	}
}

func TestIntersect_symmetryLevel(t *testing.T) {
	// Centers are level along the axis of least overlap
	tests := []struct {
		a, b Bound
	}{
		{AABBFrom(0, 0, 10, 2), AABBFrom(5, 0, 10, 2)},
		{AABBFrom(0, 0, 2, 10), AABBFrom(0, 5, 2, 10)},
		{AABBFrom(0, 0, 10, 10), AABBFrom(4, 1, 2, 6)},
		{AABBFrom(0, 0, 10, 2), Vec2f{X: 3, Y: 1}},
		{AABBFrom(0, 0, 10, 2), CircleFrom(3, 1, 0.5)},
	}

	for _, test := range tests {
		testSymmetric(t, test.a, test.b)
	}

	mtv, _ := Intersect(AABBFrom(0, 0, 10, 2), AABBFrom(5, 0, 10, 2))
	if mtv.Magnitude != 2 || !vecApprox(mtv.Direction, Vec2f{Y: -1}) {
		t.Errorf("unexpected mtv %+v", mtv)
	}
}

func TestIntersect_direction(t *testing.T) {
	// The MTV always points from the first bound's center toward the second's
	for i := 0; i < 2000; i++ {
		a := randomBound(20)
		b := randomBound(20)
		mtv, ok := Intersect(a, b)
		if !ok {
			continue
		}
		if d := a.Center().To(b.Center()).Dot(mtv.Direction); d < -0.001 {
			t.Errorf("%s and %s: direction %v points away", BoundString(a), BoundString(b), mtv.Direction)
		}
	}
}

func TestCollides_matchesIntersect(t *testing.T) {
	for i := 0; i < 2000; i++ {
		a := randomBound(20)
		b := randomBound(20)
		_, ok := Intersect(a, b)
		if collides := Collides(a, b); collides != ok {
			t.Errorf("%s and %s: Collides %t, Intersect %t", BoundString(a), BoundString(b), collides, ok)
		}
	}
}

func BenchmarkIntersect(b *testing.B) {
	kinds := []string{"AABB", "Circle", "Point"}
	for _, kind := range kinds {
		for _, otherKind := range kinds {
			b.Run(fmt.Sprintf("%s%s", kind, otherKind), func(b *testing.B) {
				const count = 1024
				bounds := make([]Bound, count)
				others := make([]Bound, count)
				for i := range bounds {
					bounds[i] = randomBoundOf(kind, 50)
					others[i] = randomBoundOf(otherKind, 50)
				}
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, _ = Intersect(bounds[i&(count-1)], others[(i+count/2)&(count-1)])
				}
			})
		}
	}
}

func randomBound(size float32) Bound {
	switch rand.Intn(3) {
	case 0:
		return randomBoundOf("AABB", size)
	case 1:
		return randomBoundOf("Circle", size)
	default:
		return randomBoundOf("Point", size)
	}
}

func randomBoundOf(kind string, size float32) Bound {
	x := rand.Float32() * size
	y := rand.Float32() * size
	switch kind {
	case "AABB":
		return AABBFrom(x, y, rand.Float32()*size/2, rand.Float32()*size/2)
	case "Circle":
		return CircleFrom(x, y, rand.Float32()*size/4)
	default:
		return Vec2f{X: x, Y: y}
	}
}
