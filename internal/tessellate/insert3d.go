// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/2dChan/voromesh/internal/topology"
)

// insertAt locates w and splits the simplex (or pair of simplices, or
// face-batch) it landed in around w, then runs the flip cascade to
// restore the Delaunay property.
func (e *Engine3D) insertAt(w int) error {
	simplex, signs, err := e.locate(w)
	if err != nil {
		return err
	}

	var zeroSlots []int
	for i, s := range signs {
		if s == predicate.Zero {
			zeroSlots = append(zeroSlots, i)
		}
	}

	var newTets []int
	switch len(zeroSlots) {
	case 0:
		newTets = e.split1to4(simplex, w)
	case 1:
		newTets = e.split2to6(simplex, zeroSlots[0], w)
	default:
		// On an edge of the located tetrahedron (the general N-way
		// split): resolved as a single face split, relying on the
		// flip cascade to clean up the remaining degeneracy rather than
		// implementing the full N-way rewrite.
		e.opts.Logger.Debug("3D insertion on an edge handled as a single-face split", "simplex", simplex, "zeroFaces", len(zeroSlots))
		newTets = e.split2to6(simplex, zeroSlots[0], w)
	}

	e.currentVert = w
	e.toCheck = e.toCheck[:0]
	e.toCheck = append(e.toCheck, newTets...)
	e.runFlipCascade3D()
	e.lastSimplex = newTets[0]
	return nil
}

// split1to4 replaces simplex, which strictly contains w, with four
// tetrahedra fanning out from w to each of simplex's four faces.
func (e *Engine3D) split1to4(simplex, w int) []int {
	v := e.topo.Get(simplex).Vertices
	faces, nbrs, recips := e.collectOuterFaces([]int{simplex})

	var newTets [4]int
	for i := 0; i < 4; i++ {
		others := otherThree(v, i)
		ov := e.orientedTet3D(others[0], others[1], others[2], w)
		if i == 0 {
			e.resetTet(simplex, ov)
			newTets[0] = simplex
		} else {
			newTets[i] = e.topo.NewSimplex(ov)
		}
	}

	e.wireOuter(newTets[:], faces, nbrs, recips)
	e.autoWireInternal(newTets[:])
	e.linkVertices(newTets[:])
	return newTets[:]
}

// split2to6 replaces simplex and its neighbour across zeroSlot (the face
// w lies on) with six tetrahedra: three fanning from simplex's apex and
// three from the neighbour's apex, all sharing w.
func (e *Engine3D) split2to6(simplex, zeroSlot, w int) []int {
	T := e.topo.Get(simplex)
	apexT := T.Vertices[zeroSlot]
	a, b, c := faceVertices(T.Vertices, zeroSlot)
	ring := [3]int{a, b, c}

	bIdx := T.Neighbours[zeroSlot]
	rk := T.Reciprocal[zeroSlot]
	apexB := e.topo.Get(bIdx).Vertices[rk]

	faces, nbrs, recips := e.collectOuterFaces([]int{simplex, bIdx})

	var all [6]int
	for k := 0; k < 3; k++ {
		ov := e.orientedTet3D(apexT, ring[k], ring[(k+1)%3], w)
		if k == 0 {
			e.resetTet(simplex, ov)
			all[0] = simplex
		} else {
			all[k] = e.topo.NewSimplex(ov)
		}
	}
	for k := 0; k < 3; k++ {
		ov := e.orientedTet3D(apexB, ring[k], ring[(k+1)%3], w)
		if k == 0 {
			e.resetTet(bIdx, ov)
			all[3] = bIdx
		} else {
			all[3+k] = e.topo.NewSimplex(ov)
		}
	}

	e.wireOuter(all[:], faces, nbrs, recips)
	e.autoWireInternal(all[:])
	e.linkVertices(all[:])
	return all[:]
}

func (e *Engine3D) linkVertices(tets []int) {
	for _, t := range tets {
		tv := e.topo.Get(t).Vertices
		for _, vv := range tv {
			e.verts.SetSimplexLink(vv, t)
		}
	}
}

// runFlipCascade3D drains the LIFO to-check queue, testing each
// tetrahedron incident to the cascade vertex against the neighbour
// across its opposite face. A violation is resolved by a 2-3 flip when
// the five-point configuration is convex, or a 3-2 collapse of the
// surrounding edge link otherwise; a configuration that is neither (4-4
// or a higher-degree edge) is left in place and logged.
func (e *Engine3D) runFlipCascade3D() {
	for len(e.toCheck) > 0 {
		n := len(e.toCheck)
		tIdx := e.toCheck[n-1]
		e.toCheck = e.toCheck[:n-1]
		if !e.topo.Active(tIdx) {
			continue
		}
		s := e.topo.VertexSlot(tIdx, e.currentVert)
		if s == topology.None {
			continue
		}
		T := e.topo.Get(tIdx)
		bIdx := T.Neighbours[s]
		if bIdx == topology.None || e.isDummy(bIdx) {
			continue
		}
		rk := T.Reciprocal[s]
		u := e.topo.Get(bIdx).Vertices[rk]

		sign := e.inSphere3D(T.Vertices[0], T.Vertices[1], T.Vertices[2], T.Vertices[3], u)
		if sign != predicate.Negative {
			continue
		}

		w := e.currentVert
		shared := otherThree(T.Vertices, s)
		s0 := e.orient3D(shared[0], shared[1], w, u)
		s1 := e.orient3D(shared[1], shared[2], w, u)
		s2 := e.orient3D(shared[2], shared[0], w, u)
		if s0 == s1 && s1 == s2 && s0 != predicate.Zero {
			e.opts.Logger.Debug("3D 2-3 flip", "simplex", tIdx, "neighbour", bIdx)
			e.flip23(tIdx, s)
			continue
		}

		ring := e.edgeLink(w, u, tIdx)
		if e.flip32(w, u, ring) {
			e.opts.Logger.Debug("3D 3-2 flip", "vertexA", w, "vertexB", u)
			continue
		}
		e.opts.Logger.Debug("3D flip deferred (4-4 or higher-degree edge)", "simplex", tIdx, "neighbour", bIdx)
	}
}

// flip23 replaces tA and its neighbour across slotA (sharing a
// triangular face) with three tetrahedra sharing the new edge between
// the two tets' apexes.
func (e *Engine3D) flip23(tA, slotA int) {
	T := e.topo.Get(tA)
	bIdx := T.Neighbours[slotA]
	rk := T.Reciprocal[slotA]
	apexA := T.Vertices[slotA]
	apexB := e.topo.Get(bIdx).Vertices[rk]
	shared := otherThree(T.Vertices, slotA)

	faces, nbrs, recips := e.collectOuterFaces([]int{tA, bIdx})

	var tets [3]int
	edges := [3][2]int{{shared[0], shared[1]}, {shared[1], shared[2]}, {shared[2], shared[0]}}
	for i, ed := range edges {
		ov := e.orientedTet3D(apexA, apexB, ed[0], ed[1])
		switch i {
		case 0:
			e.resetTet(tA, ov)
			tets[0] = tA
		case 1:
			e.resetTet(bIdx, ov)
			tets[1] = bIdx
		default:
			tets[2] = e.topo.NewSimplex(ov)
		}
	}

	e.wireOuter(tets[:], faces, nbrs, recips)
	e.autoWireInternal(tets[:])
	e.linkVertices(tets[:])
	e.toCheck = append(e.toCheck, tets[0], tets[1], tets[2])
}

// flip32 collapses the three tetrahedra in ring, all sharing edge (x,y),
// into two tetrahedra sharing the triangular face spanned by the edge's
// three rim vertices. Returns false (no-op) if ring is not a clean
// three-tet fan around (x,y).
func (e *Engine3D) flip32(x, y int, ring []int) bool {
	if len(ring) != 3 {
		return false
	}
	var rim [3]int
	n := 0
	for _, t := range ring {
		for _, v := range e.topo.Get(t).Vertices {
			if v == x || v == y {
				continue
			}
			seen := false
			for _, r := range rim[:n] {
				if r == v {
					seen = true
					break
				}
			}
			if seen {
				continue
			}
			if n == 3 {
				return false
			}
			rim[n] = v
			n++
		}
	}
	if n != 3 {
		return false
	}

	faces, nbrs, recips := e.collectOuterFaces(ring)

	ovX := e.orientedTet3D(rim[0], rim[1], rim[2], x)
	ovY := e.orientedTet3D(rim[0], rim[1], rim[2], y)
	e.resetTet(ring[0], ovX)
	e.resetTet(ring[1], ovY)
	e.topo.Deactivate(ring[2])

	tets := []int{ring[0], ring[1]}
	e.wireOuter(tets, faces, nbrs, recips)
	e.autoWireInternal(tets)
	e.linkVertices(tets)
	e.toCheck = append(e.toCheck, tets...)
	return true
}
