// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package scatter

import (
	"github.com/SoftbearStudios/quadsat/world"
	"github.com/aquilax/go-perlin"
	"math/rand"
)

const (
	frequency = 0.01
	attempts  = 8 // before accepting a point in a sparse area
)

// Kind is which shapes a Generator makes.
type Kind uint8

const (
	KindAny Kind = iota
	KindPoint
	KindAABB
	KindCircle
)

// Generator scatters bounds in clusters using perlin noise as a density map.
// It is deterministic for a given seed.
type Generator struct {
	density *perlin.Perlin
	rand    *rand.Rand
	offset  world.Vec2f
}

// New creates a new Generator with a seed.
func New(seed int64) *Generator {
	r := rand.New(rand.NewSource(seed))
	return &Generator{
		density: perlin.NewPerlin(2, 2, 3, seed),
		rand:    r,
		offset:  world.Vec2f{X: r.Float32() * 1000, Y: r.Float32() * 1000},
	}
}

// Density is in [0, 1], higher is more crowded.
func (g *Generator) Density(point world.Vec2f) float32 {
	x := float64(point.X+g.offset.X) * frequency
	y := float64(point.Y+g.offset.Y) * frequency
	d := float32(g.density.Noise2D(x, y)*1.5 + 0.5)
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// Point returns a point inside region, preferring dense areas.
func (g *Generator) Point(region world.AABB) (point world.Vec2f) {
	for i := 0; i < attempts; i++ {
		point = world.Vec2f{
			X: region.X + g.rand.Float32()*region.Width,
			Y: region.Y + g.rand.Float32()*region.Height,
		}
		if g.rand.Float32() < g.Density(point) {
			return
		}
	}
	return
}

// Bound returns a bound whose origin is inside region and whose size is at most maxSize.
func (g *Generator) Bound(region world.AABB, kind Kind, maxSize float32) world.Bound {
	if kind == KindAny {
		kind = Kind(g.rand.Intn(3)) + KindPoint
	}

	origin := g.Point(region)
	switch kind {
	case KindAABB:
		return world.AABB{Vec2f: origin, Width: g.rand.Float32() * maxSize, Height: g.rand.Float32() * maxSize}
	case KindCircle:
		return world.Circle{Vec2f: origin, R: g.rand.Float32() * maxSize * 0.5}
	default:
		return origin
	}
}

// Bounds returns count bounds, see Bound.
func (g *Generator) Bounds(region world.AABB, kind Kind, maxSize float32, count int) []world.Bound {
	bounds := make([]world.Bound, count)
	for i := range bounds {
		bounds[i] = g.Bound(region, kind, maxSize)
	}
	return bounds
}
