// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/2dChan/voromesh/internal/topology"
)

// Verify checks reciprocity, orientation, the local Delaunay property
// and vertex back-links over the whole topology and vertex store. It
// is run after every mutating call when the engine was built
// WithVerification, and panics on the first violation found: these are
// host bugs in the tessellator itself, not recoverable conditions.
func (e *Engine2D) Verify() {
	for i := 0; i < e.topo.Len(); i++ {
		if !e.topo.Active(i) {
			continue
		}
		tri := e.topo.Get(i)
		for slot, n := range tri.Neighbours {
			if n == topology.None {
				continue
			}
			r := tri.Reciprocal[slot]
			other := e.topo.Get(n)
			if other.Neighbours[r] != i || other.Reciprocal[r] != slot {
				panic(preconditionf("reciprocity violated: simplex %d slot %d -> %d slot %d does not reciprocate", i, slot, n, r))
			}
		}
		if !e.isDummy(i) {
			sign := predicate.Orient2D(e.scratch, e.mantissa(tri.Vertices[0]), e.mantissa(tri.Vertices[1]), e.mantissa(tri.Vertices[2]))
			if sign != predicate.Positive {
				panic(preconditionf("orientation violated: simplex %d has non-positive orientation %v", i, sign))
			}
		}
		for slot, n := range tri.Neighbours {
			if n == topology.None || e.isDummy(i) || e.isDummy(n) {
				continue
			}
			opposite := e.topo.Get(n).Vertices[tri.Reciprocal[slot]]
			a, b, c := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
			sign := predicate.InCircle(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c), e.mantissa(opposite))
			if sign == predicate.Negative {
				panic(preconditionf("Delaunay violation: vertex %d lies inside the circumcircle of simplex %d", opposite, i))
			}
		}
	}
	for v := e.vertexStart; v < e.verts.Len(); v++ {
		link := e.verts.SimplexLink(v)
		if link < 0 {
			continue
		}
		if !e.topo.Active(link) || e.topo.Get(link).Vertices[e.topo.VertexSlot(link, v)] != v {
			panic(preconditionf("back-link violated: vertex %d's link simplex %d does not carry it", v, link))
		}
	}
}

// Verify is Engine2D.Verify's 3D counterpart.
func (e *Engine3D) Verify() {
	for i := 0; i < e.topo.Len(); i++ {
		if !e.topo.Active(i) {
			continue
		}
		tet := e.topo.Get(i)
		for slot, n := range tet.Neighbours {
			if n == topology.None {
				continue
			}
			r := tet.Reciprocal[slot]
			other := e.topo.Get(n)
			if other.Neighbours[r] != i || other.Reciprocal[r] != slot {
				panic(preconditionf("reciprocity violated: simplex %d slot %d -> %d slot %d does not reciprocate", i, slot, n, r))
			}
		}
		if !e.isDummy(i) {
			sign := predicate.Orient3D(e.scratch, e.mantissa(tet.Vertices[0]), e.mantissa(tet.Vertices[1]), e.mantissa(tet.Vertices[2]), e.mantissa(tet.Vertices[3]))
			if sign != predicate.Positive {
				panic(preconditionf("orientation violated: simplex %d has non-positive orientation %v", i, sign))
			}
		}
		for slot, n := range tet.Neighbours {
			if n == topology.None || e.isDummy(i) || e.isDummy(n) {
				continue
			}
			opposite := e.topo.Get(n).Vertices[tet.Reciprocal[slot]]
			a, b, c, d := tet.Vertices[0], tet.Vertices[1], tet.Vertices[2], tet.Vertices[3]
			sign := predicate.InSphere(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c), e.mantissa(d), e.mantissa(opposite))
			if sign == predicate.Negative {
				panic(preconditionf("Delaunay violation: vertex %d lies inside the circumsphere of simplex %d", opposite, i))
			}
		}
	}
	for v := e.vertexStart; v < e.verts.Len(); v++ {
		link := e.verts.SimplexLink(v)
		if link < 0 {
			continue
		}
		if !e.topo.Active(link) || e.topo.Get(link).Vertices[e.topo.VertexSlot(link, v)] != v {
			panic(preconditionf("back-link violated: vertex %d's link simplex %d does not carry it", v, link))
		}
	}
}
