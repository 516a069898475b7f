// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/2dChan/voromesh/internal/topology"
)

// otherThree returns the three vertices of v other than the one at slot.
func otherThree(v [4]int, slot int) [3]int {
	var out [3]int
	k := 0
	for i, x := range v {
		if i == slot {
			continue
		}
		out[k] = x
		k++
	}
	return out
}

func sameSet3(a, b [3]int) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// orientedTet3D returns (a,b,c,d) in an order with Orient3D positive,
// fixing d's position so the caller can rely on the newly inserted
// vertex staying in the same slot regardless of how the other three
// were supplied. Only a and b are ever swapped.
func (e *Engine3D) orientedTet3D(a, b, c, d int) [4]int {
	sign := predicate.Orient3D(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c), e.mantissa(d))
	if sign != predicate.Positive {
		a, b = b, a
	}
	return [4]int{a, b, c, d}
}

// autoWireInternal discovers and wires every shared-face pair among a
// freshly created batch of tetrahedra (any two that share exactly three
// vertices are neighbours across that face). Safe to call repeatedly;
// it only fills faces that are still unset.
func (e *Engine3D) autoWireInternal(tets []int) {
	for i := 0; i < len(tets); i++ {
		av := e.topo.Get(tets[i]).Vertices
		for sa := 0; sa < 4; sa++ {
			if e.topo.Get(tets[i]).Neighbours[sa] != topology.None {
				continue
			}
			faceA := otherThree(av, sa)
			for j := 0; j < len(tets); j++ {
				if j == i {
					continue
				}
				bv := e.topo.Get(tets[j]).Vertices
				for sb := 0; sb < 4; sb++ {
					if sameSet3(faceA, otherThree(bv, sb)) {
						e.topo.SwapNeighbour(tets[i], sa, tets[j], sb)
						goto nextFace
					}
				}
			}
		nextFace:
		}
	}
}

// resetTet overwrites an existing tetrahedron's vertices and clears its
// neighbour links, for reuse as one of a split or flip's output tets.
func (e *Engine3D) resetTet(idx int, v [4]int) {
	s := e.topo.Get(idx)
	s.Vertices = v
	s.Neighbours = [4]int{topology.None, topology.None, topology.None, topology.None}
	s.Reciprocal = [4]int{topology.None, topology.None, topology.None, topology.None}
}

// collectOuterFaces gathers every face of oldTets whose neighbour is not
// itself one of oldTets, i.e. the faces that must be rewired onto
// whatever replaces the batch. Must be called before any of oldTets is
// overwritten.
func (e *Engine3D) collectOuterFaces(oldTets []int) (faces [][3]int, nbrs, recips []int) {
	inOld := make(map[int]bool, len(oldTets))
	for _, t := range oldTets {
		inOld[t] = true
	}
	for _, t := range oldTets {
		sx := e.topo.Get(t)
		for s := 0; s < 4; s++ {
			if inOld[sx.Neighbours[s]] {
				continue
			}
			faces = append(faces, otherThree(sx.Vertices, s))
			nbrs = append(nbrs, sx.Neighbours[s])
			recips = append(recips, sx.Reciprocal[s])
		}
	}
	return
}

// edgeLink walks the ring of tetrahedra sharing edge (x,y), starting
// from start, always stepping to the neighbour across the face
// containing x, y and the vertex last visited (never backtracking). The
// ring is incomplete (open) unless it returns to start.
func (e *Engine3D) edgeLink(x, y, start int) []int {
	ring := []int{start}
	prev := -1
	cur := start
	for {
		tv := e.topo.Get(cur).Vertices
		var others []int
		for _, v := range tv {
			if v != x && v != y {
				others = append(others, v)
			}
		}
		next := topology.None
		for _, o := range others {
			s := e.topo.VertexSlot(cur, o)
			cand := e.topo.Get(cur).Neighbours[s]
			if cand != prev && cand != topology.None {
				next = cand
				break
			}
		}
		if next == topology.None || next == start {
			break
		}
		ring = append(ring, next)
		prev = cur
		cur = next
		if len(ring) > 64 {
			break
		}
	}
	return ring
}

// wireOuter matches each outer face's vertex set against the faces of
// tets and wires it to the corresponding (neighbour, reciprocal) pair
// captured from the original simplices before they were overwritten.
func (e *Engine3D) wireOuter(tets []int, outerFace [][3]int, outerN, outerR []int) {
	for f := range outerFace {
		for _, t := range tets {
			tv := e.topo.Get(t).Vertices
			for s := 0; s < 4; s++ {
				if e.topo.Get(t).Neighbours[s] != topology.None {
					continue
				}
				if sameSet3(outerFace[f], otherThree(tv, s)) {
					e.topo.SwapNeighbour(t, s, outerN[f], outerR[f])
				}
			}
		}
	}
}
