// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"math/rand"

	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/2dChan/voromesh/internal/topology"
	"github.com/2dChan/voromesh/internal/vertexstore"
)

// Bounds2D is the host-supplied box that Init inflates by 6x to build
// the bounding simplex.
type Bounds2D struct {
	Min, Max [2]float64
}

// Engine2D is the 2D incremental tessellator. It owns every mutable
// scratch structure used across insertions: the predicate scratch pool,
// the flip to-check stack, and the per-tessellation PRNG. None of this
// state is shared across Engine2D instances.
type Engine2D struct {
	opts    Options
	verts   *vertexstore.Store2D
	topo    *topology.Store2D
	scratch *predicate.Scratch
	rng     *rand.Rand

	lastSimplex int
	toCheck     []int
	currentVert int

	vertexStart, vertexEnd, ghostOffset int
	consolidated                        bool

	degenerateP, degenerateQ int
	degenerateBroken         bool
}

// NewEngine2D builds the bounding simplex and dummy border for bounds.
func NewEngine2D(bounds Bounds2D, opts Options) *Engine2D {
	e := &Engine2D{opts: opts, rng: newRand(opts.Seed), degenerateP: -1, degenerateQ: -1}
	e.scratch = predicate.NewScratch()
	e.initBoundingSimplex(bounds)
	return e
}

func (e *Engine2D) initBoundingSimplex(bounds Bounds2D) {
	dx := bounds.Max[0] - bounds.Min[0]
	dy := bounds.Max[1] - bounds.Min[1]
	span := dx
	if dy > span {
		span = dy
	}
	if span <= 0 {
		span = 1
	}
	size := 6 * span
	cx := (bounds.Min[0] + bounds.Max[0]) / 2
	cy := (bounds.Min[1] + bounds.Max[1]) / 2

	p0 := [2]float64{cx - 2*size, cy - size}
	p1 := [2]float64{cx + 2*size, cy - size}
	p2 := [2]float64{cx, cy + 2*size}

	// The rescale box is square (4*size + 2*margin on both axes), so both
	// axes share one scale factor and the exact in-circle test sees the
	// same circles as the host coordinates.
	margin := size * 0.1
	lo := [2]float64{cx - 2*size - margin, cy - size - margin}
	hi := [2]float64{cx + 2*size + margin, cy + 3*size + margin}

	e.verts = vertexstore.NewStore2D(lo, hi, e.opts.InitialVertexCap)
	e.topo = topology.NewStore2D(e.opts.InitialSimplexCap)

	v0, _ := e.verts.AddVertex(p0[0], p0[1])
	v1, _ := e.verts.AddVertex(p1[0], p1[1])
	v2, _ := e.verts.AddVertex(p2[0], p2[1])

	tri := e.topo.NewSimplex([3]int{v0, v1, v2})
	d0 := e.topo.NewSimplex([3]int{v1, v2, DummyVertex})
	d1 := e.topo.NewSimplex([3]int{v2, v0, DummyVertex})
	d2 := e.topo.NewSimplex([3]int{v0, v1, DummyVertex})

	e.topo.SwapNeighbour(tri, 0, d0, 2)
	e.topo.SwapNeighbour(tri, 1, d1, 2)
	e.topo.SwapNeighbour(tri, 2, d2, 2)

	e.verts.SetSimplexLink(v0, tri)
	e.verts.SetSimplexLink(v1, tri)
	e.verts.SetSimplexLink(v2, tri)

	e.lastSimplex = tri
	e.vertexStart = 3
	e.vertexEnd = -1
	e.ghostOffset = -1
}

func (e *Engine2D) isDummy(simplex int) bool {
	v := e.topo.Get(simplex).Vertices
	return v[0] == DummyVertex || v[1] == DummyVertex || v[2] == DummyVertex
}

func (e *Engine2D) mantissa(v int) predicate.Point2I { return e.verts.Mantissa(v) }

// orient2D is Orient2D with an optional double-precision pre-check: when
// the engine was built WithFastPath, it first tries FastOrient2D on the
// vertices' rescaled double-precision coordinates, falling back to the
// exact integer predicate only when that pre-check can't clear its
// error bound.
func (e *Engine2D) orient2D(a, b, c int) predicate.Sign {
	if e.opts.UseFastPath {
		if sign, ok := predicate.FastOrient2D(e.verts.Double(a), e.verts.Double(b), e.verts.Double(c)); ok {
			return sign
		}
	}
	return predicate.Orient2D(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c))
}

// inCircle2D is InCircle with the same fast-path pre-check as orient2D.
func (e *Engine2D) inCircle2D(a, b, c, d int) predicate.Sign {
	if e.opts.UseFastPath {
		if sign, ok := predicate.FastInCircle(e.verts.Double(a), e.verts.Double(b), e.verts.Double(c), e.verts.Double(d)); ok {
			return sign
		}
	}
	return predicate.InCircle(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c), e.mantissa(d))
}

// locate walks from e.lastSimplex to the simplex containing w, returning
// the final face signs alongside it.
func (e *Engine2D) locate(w int) (simplex int, signs [3]predicate.Sign, err error) {
	cur := e.lastSimplex
	for steps := 0; ; steps++ {
		if steps > 10_000_000 {
			return -1, signs, preconditionf("point location did not converge (misconfigured bounding box)")
		}
		tri := e.topo.Get(cur)
		var negFaces []int
		zeroCount := 0
		for i := 0; i < 3; i++ {
			v1 := tri.Vertices[(i+1)%3]
			v2 := tri.Vertices[(i+2)%3]
			sign := e.orient2D(v1, v2, w)
			signs[i] = sign
			switch sign {
			case predicate.Negative:
				negFaces = append(negFaces, i)
			case predicate.Zero:
				zeroCount++
			}
		}
		if len(negFaces) == 0 {
			if zeroCount >= 2 {
				return -1, signs, preconditionf("coincident or collinear input at simplex %d", cur)
			}
			e.lastSimplex = cur
			return cur, signs, nil
		}
		chosen := negFaces[0]
		if len(negFaces) > 1 {
			chosen = negFaces[e.rng.Intn(len(negFaces))]
		}
		next := tri.Neighbours[chosen]
		if next == topology.None {
			return -1, signs, preconditionf("point location walked off the mesh")
		}
		cur = next
	}
}

// splitFan replaces the hole bounded by ring (a CCW cycle of vertices,
// each outer edge (ring[i], ring[i+1 mod m]) backed by outerN[i]/outerR[i])
// with m new triangles fanning out from w. reuse supplies slot indices to
// recycle (the one or two simplices being replaced) before new slots are
// allocated. This single construction implements both the 1->3 interior
// split and the 2->4 on-edge split: both are "insert w inside a boundary
// cycle", differing only in the cycle's size.
func (e *Engine2D) splitFan(ring []int, outerN, outerR []int, w int, reuse []int) []int {
	m := len(ring)
	slots := make([]int, m)
	for i := 0; i < m; i++ {
		verts := [3]int{ring[i], ring[(i+1)%m], w}
		if i < len(reuse) {
			idx := reuse[i]
			sx := e.topo.Get(idx)
			sx.Vertices = verts
			sx.Neighbours = [3]int{topology.None, topology.None, topology.None}
			sx.Reciprocal = [3]int{topology.None, topology.None, topology.None}
			sx.Active = true
			slots[i] = idx
		} else {
			slots[i] = e.topo.NewSimplex(verts)
		}
	}
	for i := 0; i < m; i++ {
		next := slots[(i+1)%m]
		e.topo.SwapNeighbour(slots[i], 0, next, 1)
		e.topo.SwapNeighbour(slots[i], 2, outerN[i], outerR[i])
	}
	for i := 0; i < m; i++ {
		e.verts.SetSimplexLink(ring[i], slots[i])
	}
	e.verts.SetSimplexLink(w, slots[0])
	return slots
}
