package spatial

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/gridkit/coord"
)

// ErrOutOfBounds reports an insert or update outside the index's root
// bounds.
var ErrOutOfBounds = errors.New("spatial: position outside index bounds")

// ID identifies an entity stored in the index. The index never inspects
// the entity itself.
type ID uint32

// maxDepth bounds subdivision so that many entities sharing one position
// cannot split forever; the deepest leaves simply hold more than
// capacity.
const maxDepth = 16

// noChild marks a leaf node's child field.
const noChild int32 = -1

// node is one quadtree cell. Nodes live in a flat arena; child and
// parent are arena indices, never pointers. A node is internal exactly
// when entities is nil; an internal node's four children sit at
// consecutive indices child..child+3 and partition its bounds.
type node struct {
	bounds   Rect
	parent   int32
	child    int32
	depth    uint8
	entities []ID
}

// Quadtree is a hierarchical spatial index over pixel positions within
// fixed root bounds. A leaf splits into four quadrants when an insert
// would exceed its capacity; four leaf siblings merge back when removals
// shrink their combined population to half the capacity, which gives
// hysteresis against split/merge thrash at the boundary.
type Quadtree struct {
	capacity int
	nodes    []node
	free     []int32
	leafOf   map[ID]int32
	position map[ID]coord.Pixel
}

// NewQuadtree creates an index covering bounds. capacity is the maximum
// leaf population before subdivision; values below 1 become 4.
func NewQuadtree(bounds Rect, capacity int) *Quadtree {
	if capacity < 1 {
		capacity = 4
	}
	q := &Quadtree{
		capacity: capacity,
		leafOf:   make(map[ID]int32),
		position: make(map[ID]coord.Pixel),
	}
	q.nodes = append(q.nodes, node{
		bounds:   bounds,
		parent:   noChild,
		child:    noChild,
		entities: []ID{},
	})
	return q
}

// Bounds returns the root bounds.
func (q *Quadtree) Bounds() Rect {
	return q.nodes[0].bounds
}

// Len returns the number of stored entities.
func (q *Quadtree) Len() int {
	return len(q.leafOf)
}

// PositionOf returns an entity's stored position.
func (q *Quadtree) PositionOf(id ID) (coord.Pixel, bool) {
	p, ok := q.position[id]
	return p, ok
}

// Insert adds an entity at pos. Re-inserting a present id moves it.
func (q *Quadtree) Insert(id ID, pos coord.Pixel) error {
	if !q.nodes[0].bounds.Contains(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if _, ok := q.leafOf[id]; ok {
		q.Remove(id)
	}

	leaf := q.descend(0, pos)
	for len(q.nodes[leaf].entities) >= q.capacity && q.nodes[leaf].depth < maxDepth {
		q.split(leaf)
		leaf = q.descend(leaf, pos)
	}

	q.nodes[leaf].entities = append(q.nodes[leaf].entities, id)
	q.leafOf[id] = leaf
	q.position[id] = pos
	return nil
}

// Remove deletes an entity and reports whether it was present.
func (q *Quadtree) Remove(id ID) bool {
	leaf, ok := q.leafOf[id]
	if !ok {
		return false
	}

	ents := q.nodes[leaf].entities
	for i, e := range ents {
		if e == id {
			ents[i] = ents[len(ents)-1]
			q.nodes[leaf].entities = ents[:len(ents)-1]
			break
		}
	}
	delete(q.leafOf, id)
	delete(q.position, id)

	q.tryMerge(q.nodes[leaf].parent)
	return true
}

// Update moves an entity. When the new position stays inside the same
// leaf the move is in place; otherwise it is a remove plus insert.
func (q *Quadtree) Update(id ID, pos coord.Pixel) error {
	leaf, ok := q.leafOf[id]
	if !ok {
		return q.Insert(id, pos)
	}
	if q.nodes[leaf].bounds.Contains(pos) {
		q.position[id] = pos
		return nil
	}
	if !q.nodes[0].bounds.Contains(pos) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	q.Remove(id)
	return q.Insert(id, pos)
}

// QueryRect returns the ids of all entities inside the rectangle. The
// descent prunes any subtree whose bounds do not intersect it.
func (q *Quadtree) QueryRect(r Rect) []ID {
	var hits []ID
	q.visit(0, func(n *node) bool {
		if !n.bounds.Intersects(r) {
			return false
		}
		for _, id := range n.entities {
			if r.Contains(q.position[id]) {
				hits = append(hits, id)
			}
		}
		return true
	})
	slices.Sort(hits)
	return hits
}

// QueryCircle returns the ids of all entities within radius of center.
// Subtrees are pruned by the cheap rectangle test first; the exact
// distance test runs only on surviving leaf entities.
func (q *Quadtree) QueryCircle(center coord.Pixel, radius float64) []ID {
	r2 := radius * radius
	var hits []ID
	q.visit(0, func(n *node) bool {
		if !n.bounds.IntersectsCircle(center, radius) {
			return false
		}
		for _, id := range n.entities {
			p := q.position[id]
			dx, dy := p.X-center.X, p.Y-center.Y
			if dx*dx+dy*dy <= r2 {
				hits = append(hits, id)
			}
		}
		return true
	})
	slices.Sort(hits)
	return hits
}

// Clear removes every entity, collapsing the tree back to a single leaf.
func (q *Quadtree) Clear() {
	root := q.nodes[0].bounds
	q.nodes = q.nodes[:1]
	q.nodes[0] = node{bounds: root, parent: noChild, child: noChild, entities: []ID{}}
	q.free = q.free[:0]
	clear(q.leafOf)
	clear(q.position)
}

// Stats describes the tree's current shape.
type Stats struct {
	Nodes    int
	Leaves   int
	Entities int
	MaxDepth int
}

// Stats walks the tree and returns node, leaf, and entity counts plus
// the deepest leaf level.
func (q *Quadtree) Stats() Stats {
	var st Stats
	q.visit(0, func(n *node) bool {
		st.Nodes++
		if n.entities != nil {
			st.Leaves++
			st.Entities += len(n.entities)
			if d := int(n.depth); d > st.MaxDepth {
				st.MaxDepth = d
			}
		}
		return true
	})
	return st
}

// VisitBounds calls fn with the bounds and depth of every live node, for
// debug rendering of the tree structure.
func (q *Quadtree) VisitBounds(fn func(bounds Rect, depth int, leaf bool)) {
	q.visit(0, func(n *node) bool {
		fn(n.bounds, int(n.depth), n.entities != nil)
		return true
	})
}

// visit runs fn on the subtree at idx, descending only while fn returns
// true. Freed nodes are never reachable from the root.
func (q *Quadtree) visit(idx int32, fn func(*node) bool) {
	n := &q.nodes[idx]
	if !fn(n) {
		return
	}
	if n.child != noChild {
		child := n.child
		for i := int32(0); i < 4; i++ {
			q.visit(child+i, fn)
		}
	}
}

// descend walks from idx to the leaf whose bounds contain pos.
func (q *Quadtree) descend(idx int32, pos coord.Pixel) int32 {
	for q.nodes[idx].child != noChild {
		child := q.nodes[idx].child
		next := child
		for i := int32(0); i < 4; i++ {
			if q.nodes[child+i].bounds.Contains(pos) {
				next = child + i
				break
			}
		}
		idx = next
	}
	return idx
}

// split turns the leaf at idx into an internal node with four leaf
// children and redistributes its entities into them.
func (q *Quadtree) split(idx int32) {
	b := q.nodes[idx].bounds
	halfW, halfH := b.W/2, b.H/2
	quads := [4]Rect{
		{X: b.X, Y: b.Y, W: halfW, H: halfH},
		{X: b.X + halfW, Y: b.Y, W: halfW, H: halfH},
		{X: b.X, Y: b.Y + halfH, W: halfW, H: halfH},
		{X: b.X + halfW, Y: b.Y + halfH, W: halfW, H: halfH},
	}

	child := q.allocFour()
	depth := q.nodes[idx].depth + 1
	for i := int32(0); i < 4; i++ {
		q.nodes[child+i] = node{
			bounds:   quads[i],
			parent:   idx,
			child:    noChild,
			depth:    depth,
			entities: []ID{},
		}
	}

	ents := q.nodes[idx].entities
	q.nodes[idx].entities = nil
	q.nodes[idx].child = child

	for _, id := range ents {
		leaf := q.descend(idx, q.position[id])
		q.nodes[leaf].entities = append(q.nodes[leaf].entities, id)
		q.leafOf[id] = leaf
	}
}

// allocFour returns the index of four consecutive free nodes, reusing
// freed groups before growing the arena.
func (q *Quadtree) allocFour() int32 {
	if n := len(q.free); n > 0 {
		idx := q.free[n-1]
		q.free = q.free[:n-1]
		return idx
	}
	idx := int32(len(q.nodes))
	q.nodes = append(q.nodes, make([]node, 4)...)
	return idx
}

// tryMerge collapses the internal node at idx back into a leaf when its
// four children are all leaves holding at most capacity/2 entities
// combined, then tries the same one level up.
func (q *Quadtree) tryMerge(idx int32) {
	for idx != noChild {
		n := &q.nodes[idx]
		if n.child == noChild {
			return
		}
		total := 0
		for i := int32(0); i < 4; i++ {
			c := &q.nodes[n.child+i]
			if c.entities == nil {
				return // grandchildren present; nothing to merge
			}
			total += len(c.entities)
		}
		if total > q.capacity/2 {
			return
		}

		merged := make([]ID, 0, total)
		for i := int32(0); i < 4; i++ {
			merged = append(merged, q.nodes[n.child+i].entities...)
		}
		q.free = append(q.free, n.child)
		n.child = noChild
		n.entities = merged
		for _, id := range merged {
			q.leafOf[id] = idx
		}

		idx = n.parent
	}
}
