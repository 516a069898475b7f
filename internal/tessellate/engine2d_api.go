// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"github.com/2dChan/voromesh/internal/geomkernel"
	"github.com/2dChan/voromesh/internal/topology"
	"github.com/golang/geo/r2"
)

// AddLocalVertex inserts a local generator at the pre-reserved index
// slot: index must equal the number of local vertices already inserted.
func (e *Engine2D) AddLocalVertex(index int, pos r2.Point) error {
	if e.consolidated {
		return preconditionf("AddLocalVertex called after Consolidate")
	}
	wantLocalIndex := e.verts.Len() - e.vertexStart
	if index != wantLocalIndex {
		return preconditionf("AddLocalVertex index %d does not match the next reserved slot %d", index, wantLocalIndex)
	}
	w, err := e.verts.AddVertex(pos.X, pos.Y)
	if err != nil {
		return preconditionf("%v", err)
	}
	if err := e.insertAt(w); err != nil {
		return err
	}
	if e.opts.VerificationMode {
		e.Verify()
	}
	return nil
}

// AddGhostVertex appends a ghost generator; only valid after Consolidate.
func (e *Engine2D) AddGhostVertex(pos r2.Point) (int, error) {
	if !e.consolidated {
		return -1, preconditionf("AddGhostVertex called before Consolidate")
	}
	w, err := e.verts.AddVertex(pos.X, pos.Y)
	if err != nil {
		return -1, preconditionf("%v", err)
	}
	if err := e.insertAt(w); err != nil {
		return -1, err
	}
	if e.opts.VerificationMode {
		e.Verify()
	}
	return w, nil
}

// Consolidate freezes the local/ghost boundary.
func (e *Engine2D) Consolidate() error {
	if e.consolidated {
		return preconditionf("Consolidate called twice")
	}
	e.vertexEnd = e.verts.Len()
	e.ghostOffset = e.verts.Len()
	e.consolidated = true
	if e.opts.VerificationMode {
		e.Verify()
	}
	return nil
}

// IsLocal, IsGhost and IsAuxiliary classify a vertex index into one of
// the four disjoint ranges a tessellation's vertex ids fall into.
func (e *Engine2D) IsLocal(v int) bool     { return v >= e.vertexStart && v < e.vertexEnd }
func (e *Engine2D) IsGhost(v int) bool     { return e.consolidated && v >= e.ghostOffset }
func (e *Engine2D) IsAuxiliary(v int) bool { return v < e.vertexStart }

// NumLocal returns the number of local vertices once consolidated.
func (e *Engine2D) NumLocal() int { return e.vertexEnd - e.vertexStart }

// NumVertices returns the total vertex count, including the bounding
// simplex's auxiliary corners.
func (e *Engine2D) NumVertices() int { return e.verts.Len() }

// VertexStart returns the first local vertex index, for translating
// between raw vertex ids and 0-based local indices.
func (e *Engine2D) VertexStart() int { return e.vertexStart }

// VertexPosition returns the host double-precision position of v.
func (e *Engine2D) VertexPosition(v int) r2.Point {
	d := e.verts.Double(v)
	return r2.Point{X: d[0], Y: d[1]}
}

// SimplexLink returns a simplex incident to v, for use by the Voronoi
// builder as the starting point of its edge rotation.
func (e *Engine2D) SimplexLink(v int) int { return e.verts.SimplexLink(v) }

// NumSimplices, Simplex and VertexSlot expose the topology store to
// internal/voronoi and internal/dbg without leaking the store type
// itself across the package boundary.
func (e *Engine2D) NumSimplices() int { return e.topo.Len() }
func (e *Engine2D) SimplexActive(i int) bool { return e.topo.Active(i) }
func (e *Engine2D) SimplexVertices(i int) [3]int { return e.topo.Get(i).Vertices }
func (e *Engine2D) SimplexNeighbours(i int) [3]int { return e.topo.Get(i).Neighbours }
func (e *Engine2D) SimplexReciprocal(i int) [3]int { return e.topo.Get(i).Reciprocal }
func (e *Engine2D) VertexSlot(simplex, v int) int { return e.topo.VertexSlot(simplex, v) }
func (e *Engine2D) IsDummySimplex(i int) bool { return e.isDummy(i) }

// Circumcenter returns the circumcenter of simplex i's triangle.
func (e *Engine2D) Circumcenter(i int) r2.Point {
	vs := e.topo.Get(i).Vertices
	return geomkernel.Circumcenter2D(e.VertexPosition(vs[0]), e.VertexPosition(vs[1]), e.VertexPosition(vs[2]))
}

// SearchRadius walks the one-ring of local vertex v and returns twice the
// largest incident circumradius.
func (e *Engine2D) SearchRadius(localIndex int) (float64, error) {
	v := e.vertexStart + localIndex
	if !e.IsLocal(v) {
		return 0, preconditionf("SearchRadius: %d is not a local vertex index", localIndex)
	}
	start := e.verts.SimplexLink(v)
	if start < 0 {
		return 0, preconditionf("SearchRadius: vertex %d has no incident simplex", v)
	}
	maxR := 0.0
	cur := start
	slot := e.topo.VertexSlot(cur, v)
	center := e.VertexPosition(v)
	for first := true; first || cur != start; first = false {
		c := e.Circumcenter(cur)
		r := geomkernel.CircumRadius2D(c, center)
		if r > maxR {
			maxR = r
		}
		// rotate to the next simplex sharing vertex v: step across the
		// face opposite the "next" vertex in CCW order around v.
		tri := e.topo.Get(cur)
		nextSlot := (slot + 1) % 3
		across := tri.Neighbours[nextSlot]
		if across == topology.None || e.isDummy(across) {
			break
		}
		slot = e.topo.VertexSlot(across, v)
		cur = across
	}
	e.verts.SetSearchRadius(v, 2*maxR)
	return 2 * maxR, nil
}
