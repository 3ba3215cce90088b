// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import (
	"fmt"
	"github.com/SoftbearStudios/quadsat/world"
)

// DefaultCapacity is used when New is given a capacity below 1.
const DefaultCapacity = 5

type (
	// Index is a region quadtree of world.Bound.
	// Bounds are routed by their origin and stored in the leaf whose region contains it.
	// Not safe for concurrent use, see SyncIndex.
	Index struct {
		root node
	}

	// Result is a bound that overlapped a query window.
	// MTV points from the window toward the bound.
	Result struct {
		Bound world.Bound
		MTV   world.MTV
	}

	node struct {
		region   world.AABB
		capacity int // distinct point keys, not bounds
		size     int // bounds in this subtree
		children *[4]node
		buckets  map[world.PointKey][]world.Bound
	}
)

// New creates an empty Index managing region.
func New(region world.AABB, capacity int) *Index {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Index{root: newNode(region, capacity)}
}

func newNode(region world.AABB, capacity int) node {
	return node{region: region, capacity: capacity}
}

func (idx *Index) Region() world.AABB {
	return idx.root.region
}

func (idx *Index) Capacity() int {
	return idx.root.capacity
}

// Count returns number of bounds in the index.
func (idx *Index) Count() int {
	return idx.root.size
}

// NodeCount returns number of nodes including the root.
func (idx *Index) NodeCount() int {
	return idx.root.nodeCount()
}

// Leaf returns if the root has not subdivided.
func (idx *Index) Leaf() bool {
	return idx.root.children == nil
}

// Insert adds bound, returning false if its origin is outside the index or the
// same bound is already stored.
func (idx *Index) Insert(bound world.Bound) bool {
	return idx.root.insert(bound)
}

// Remove returns false if bound was not stored.
func (idx *Index) Remove(bound world.Bound) bool {
	return idx.root.remove(bound)
}

// Move replaces bound with moved. If moved cannot be inserted bound is kept.
func (idx *Index) Move(bound, moved world.Bound) bool {
	if !idx.root.remove(bound) {
		return false
	}
	if !idx.root.insert(moved) {
		idx.root.insert(bound)
		return false
	}
	return true
}

// Clear removes all bounds and subdivisions.
func (idx *Index) Clear() {
	idx.root.clear()
}

// Query returns every stored bound that overlaps window, except window itself.
func (idx *Index) Query(window world.Bound) []Result {
	return idx.root.query(window, window.AABB(), nil)
}

// Bounds returns every stored bound.
func (idx *Index) Bounds() []world.Bound {
	return idx.root.appendBounds(make([]world.Bound, 0, idx.root.size))
}

// ForBounds iterates all bounds and returns if stopped early.
// Cannot insert or remove during iteration.
func (idx *Index) ForBounds(callback func(bound world.Bound) (stop bool)) bool {
	return idx.root.iterate(callback)
}

// Debug prints debug output to os.Stdout
func (idx *Index) Debug() {
	fmt.Printf("quadtree: nodes: %d, bounds: %d\n", idx.NodeCount(), idx.Count())
}

func (n *node) nodeCount() (count int) {
	count = 1
	if n.children != nil {
		for i := range n.children {
			count += n.children[i].nodeCount()
		}
	}
	return
}

func (n *node) iterate(callback func(bound world.Bound) (stop bool)) bool {
	for _, bucket := range n.buckets {
		for _, bound := range bucket {
			if callback(bound) {
				return true
			}
		}
	}

	if n.children != nil {
		for i := range n.children {
			if n.children[i].iterate(callback) {
				return true
			}
		}
	}
	return false
}

func (n *node) appendBounds(bounds []world.Bound) []world.Bound {
	n.iterate(func(bound world.Bound) bool {
		bounds = append(bounds, bound)
		return false
	})
	return bounds
}

func (n *node) insert(bound world.Bound) bool {
	if !n.region.ContainsPoint(bound.Origin()) {
		return false
	}

	// Containers never hold bounds directly. Quadrants share edges, so always
	// pick the first that contains the origin or duplicates on an edge slip through.
	if n.children != nil {
		origin := bound.Origin()
		for i := range n.children {
			child := &n.children[i]
			if !child.region.ContainsPoint(origin) {
				continue
			}
			if !child.insert(bound) {
				return false
			}
			n.size++
			return true
		}
		return false
	}

	key := world.PointKeyOf(bound)
	bucket := n.buckets[key]
	if indexOf(bucket, bound) != -1 {
		return false
	}

	// Bounds sharing an origin never count against capacity, otherwise they could never be split apart
	if len(bucket) > 0 || len(n.buckets) < n.capacity {
		if n.buckets == nil {
			n.buckets = make(map[world.PointKey][]world.Bound, n.capacity)
		}
		n.buckets[key] = append(bucket, bound)
		n.size++
		return true
	}

	return n.subdivide(bound)
}

// subdivide turns a full leaf into a container and inserts its bounds and bound into the children.
func (n *node) subdivide(bound world.Bound) bool {
	bounds := append(n.appendBounds(make([]world.Bound, 0, n.size+1)), bound)

	n.buckets = nil
	n.size = 0
	n.children = new([4]node)
	for i, quadrant := range n.region.Quadrants() {
		n.children[i] = newNode(quadrant, n.capacity)
	}

	ok := true
	for _, b := range bounds {
		// Every bound fit this region so it must fit a child
		if !n.insert(b) {
			ok = false
		}
	}
	return ok
}

func (n *node) remove(bound world.Bound) bool {
	if !n.region.ContainsPoint(bound.Origin()) {
		return false
	}

	if n.children == nil {
		key := world.PointKeyOf(bound)
		bucket := n.buckets[key]
		i := indexOf(bucket, bound)
		if i == -1 {
			return false
		}

		end := len(bucket) - 1
		copy(bucket[i:], bucket[i+1:])
		bucket[end] = nil // Clear pointers
		if end == 0 {
			delete(n.buckets, key)
		} else {
			n.buckets[key] = bucket[:end]
		}
		n.size--
		return true
	}

	removed := false
	for i := range n.children {
		if n.children[i].remove(bound) {
			removed = true
			break
		}
	}
	if !removed {
		return false
	}

	n.size--
	if n.size <= n.capacity {
		n.collapse()
	}
	return true
}

// collapse turns a container back into a leaf, keeping the bounds of its subtree.
// The subtree must hold at most capacity bounds.
func (n *node) collapse() {
	bounds := n.appendBounds(make([]world.Bound, 0, n.size))
	n.clear()

	n.buckets = make(map[world.PointKey][]world.Bound, n.capacity)
	for _, bound := range bounds {
		key := world.PointKeyOf(bound)
		n.buckets[key] = append(n.buckets[key], bound)
	}
	n.size = len(bounds)
}

func (n *node) clear() {
	n.buckets = nil
	n.children = nil
	n.size = 0
}

func (n *node) query(window world.Bound, windowAABB world.AABB, results []Result) []Result {
	if !n.region.Intersects(windowAABB) {
		return results
	}

	if n.children != nil {
		for i := range n.children {
			results = n.children[i].query(window, windowAABB, results)
		}
		return results
	}

	for _, bucket := range n.buckets {
		for _, bound := range bucket {
			// Never report window as overlapping itself
			if bound == window {
				continue
			}
			if mtv, ok := world.Intersect(window, bound); ok {
				results = append(results, Result{Bound: bound, MTV: mtv})
			}
		}
	}
	return results
}

func indexOf(bucket []world.Bound, bound world.Bound) int {
	for i, b := range bucket {
		if b == bound {
			return i
		}
	}
	return -1
}
