// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/2dChan/voromesh/internal/topology"
)

// insertAt locates the freshly appended vertex w, splits the containing
// simplex (or pair of simplices, for an on-edge hit) around it, and
// runs the flip cascade to restore the Delaunay property.
func (e *Engine2D) insertAt(w int) error {
	if err := e.checkDegenerateInput(w); err != nil {
		return err
	}
	simplex, signs, err := e.locate(w)
	if err != nil {
		return err
	}
	T := e.topo.Get(simplex)

	zeroSlot := -1
	for i, s := range signs {
		if s == predicate.Zero {
			zeroSlot = i
			break
		}
	}

	var newSlots []int
	if zeroSlot == -1 {
		// Strictly inside: 1->3 split.
		ring := [3]int{T.Vertices[0], T.Vertices[1], T.Vertices[2]}
		outerN := [3]int{T.Neighbours[(0+2)%3], T.Neighbours[(1+2)%3], T.Neighbours[(2+2)%3]}
		outerR := [3]int{T.Reciprocal[(0+2)%3], T.Reciprocal[(1+2)%3], T.Reciprocal[(2+2)%3]}
		newSlots = e.splitFan(ring[:], outerN[:], outerR[:], w, []int{simplex})
	} else {
		// On one edge: 2->4 split against the neighbour across it.
		k := zeroSlot
		bIdx := T.Neighbours[k]
		rk := T.Reciprocal[k]
		apexT := T.Vertices[k]
		shared1 := T.Vertices[(k+1)%3]
		shared2 := T.Vertices[(k+2)%3]
		B := e.topo.Get(bIdx)
		apexB := B.Vertices[rk]

		slotBShared2 := e.topo.VertexSlot(bIdx, shared2)
		slotBShared1 := e.topo.VertexSlot(bIdx, shared1)

		ring := [4]int{apexT, shared1, apexB, shared2}
		outerN := [4]int{
			T.Neighbours[(k+2)%3],
			B.Neighbours[slotBShared2],
			B.Neighbours[slotBShared1],
			T.Neighbours[(k+1)%3],
		}
		outerR := [4]int{
			T.Reciprocal[(k+2)%3],
			B.Reciprocal[slotBShared2],
			B.Reciprocal[slotBShared1],
			T.Reciprocal[(k+1)%3],
		}
		newSlots = e.splitFan(ring[:], outerN[:], outerR[:], w, []int{simplex, bIdx})
	}

	e.currentVert = w
	e.toCheck = e.toCheck[:0]
	e.toCheck = append(e.toCheck, newSlots...)
	e.runFlipCascade()
	e.lastSimplex = newSlots[0]
	e.recordDegenerateTracking(w)
	return nil
}

// runFlipCascade drains the LIFO to-check queue, performing a 2->2 edge
// flip whenever the in-circle predicate finds the cascade vertex's
// opposite neighbour inside the circumcircle.
func (e *Engine2D) runFlipCascade() {
	for len(e.toCheck) > 0 {
		n := len(e.toCheck)
		tIdx := e.toCheck[n-1]
		e.toCheck = e.toCheck[:n-1]
		if !e.topo.Active(tIdx) {
			continue
		}
		slot := e.topo.VertexSlot(tIdx, e.currentVert)
		if slot == topology.None {
			continue
		}
		T := e.topo.Get(tIdx)
		bIdx := T.Neighbours[slot]
		if bIdx == topology.None || e.isDummy(bIdx) {
			continue
		}
		rk := T.Reciprocal[slot]
		opposite := e.topo.Get(bIdx).Vertices[rk]

		sign := e.inCircle2D(T.Vertices[0], T.Vertices[1], T.Vertices[2], opposite)
		if sign != predicate.Negative {
			continue
		}
		e.opts.Logger.Debug("2D edge flip", "simplex", tIdx, "neighbour", bIdx)
		e.edgeFlip22(tIdx, slot)
		e.toCheck = append(e.toCheck, tIdx, bIdx)
	}
}

// edgeFlip22 replaces the two triangles sharing the edge opposite slot k
// in tIdx with the two triangles of the other diagonal.
func (e *Engine2D) edgeFlip22(tIdx, k int) {
	T := e.topo.Get(tIdx)
	bIdx := T.Neighbours[k]
	rk := T.Reciprocal[k]
	w := T.Vertices[k]
	p := T.Vertices[(k+1)%3]
	q := T.Vertices[(k+2)%3]
	B := e.topo.Get(bIdx)
	u := B.Vertices[rk]

	slotBq := e.topo.VertexSlot(bIdx, q)
	slotBp := e.topo.VertexSlot(bIdx, p)

	outTq_n, outTq_r := T.Neighbours[(k+2)%3], T.Reciprocal[(k+2)%3]
	outTp_n, outTp_r := T.Neighbours[(k+1)%3], T.Reciprocal[(k+1)%3]
	outBq_n, outBq_r := B.Neighbours[slotBq], B.Reciprocal[slotBq]
	outBp_n, outBp_r := B.Neighbours[slotBp], B.Reciprocal[slotBp]

	T.Vertices = [3]int{p, u, w}
	T.Neighbours = [3]int{topology.None, topology.None, topology.None}
	T.Reciprocal = [3]int{topology.None, topology.None, topology.None}
	B.Vertices = [3]int{w, u, q}
	B.Neighbours = [3]int{topology.None, topology.None, topology.None}
	B.Reciprocal = [3]int{topology.None, topology.None, topology.None}

	e.topo.SwapNeighbour(tIdx, 1, outTq_n, outTq_r)
	e.topo.SwapNeighbour(bIdx, 1, outTp_n, outTp_r)
	e.topo.SwapNeighbour(tIdx, 2, outBq_n, outBq_r)
	e.topo.SwapNeighbour(bIdx, 0, outBp_n, outBp_r)
	e.topo.SwapNeighbour(tIdx, 0, bIdx, 2)

	e.verts.SetSimplexLink(p, tIdx)
	e.verts.SetSimplexLink(u, tIdx)
	e.verts.SetSimplexLink(w, bIdx)
	e.verts.SetSimplexLink(q, bIdx)
}

// checkDegenerateInput catches the case locate's own face-sign check
// cannot: a real vertex set that is, as a whole, still exactly collinear
// (no two already-inserted real vertices span a line every other real
// vertex departs from). Once a third real vertex breaks collinearity the
// check is permanently skipped, so this costs one exact orientation test
// per insertion only while the real point set has no 2D extent yet.
func (e *Engine2D) checkDegenerateInput(w int) error {
	if e.degenerateBroken || w < e.vertexStart || e.degenerateP < 0 || e.degenerateQ < 0 {
		return nil
	}
	if e.orient2D(e.degenerateP, e.degenerateQ, w) != predicate.Zero {
		return nil
	}
	return preconditionf("coincident or collinear input: vertex %d collinear with every real vertex inserted so far", w)
}

// recordDegenerateTracking updates checkDegenerateInput's running state
// once w has been inserted successfully.
func (e *Engine2D) recordDegenerateTracking(w int) {
	switch {
	case e.degenerateBroken || w < e.vertexStart:
		return
	case e.degenerateP < 0:
		e.degenerateP = w
	case e.degenerateQ < 0:
		e.degenerateQ = w
	default:
		e.degenerateBroken = true
	}
}
