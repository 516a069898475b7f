// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"github.com/2dChan/voromesh/internal/geomkernel"
	"github.com/2dChan/voromesh/internal/topology"
	"github.com/golang/geo/r3"
)

func (e *Engine3D) AddLocalVertex(index int, pos r3.Vector) error {
	if e.consolidated {
		return preconditionf("AddLocalVertex called after Consolidate")
	}
	wantLocalIndex := e.verts.Len() - e.vertexStart
	if index != wantLocalIndex {
		return preconditionf("AddLocalVertex index %d does not match the next reserved slot %d", index, wantLocalIndex)
	}
	w, err := e.verts.AddVertex(pos.X, pos.Y, pos.Z)
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

func (e *Engine3D) AddGhostVertex(pos r3.Vector) (int, error) {
	if !e.consolidated {
		return -1, preconditionf("AddGhostVertex called before Consolidate")
	}
	w, err := e.verts.AddVertex(pos.X, pos.Y, pos.Z)
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

func (e *Engine3D) Consolidate() error {
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

func (e *Engine3D) IsLocal(v int) bool     { return v >= e.vertexStart && v < e.vertexEnd }
func (e *Engine3D) IsGhost(v int) bool     { return e.consolidated && v >= e.ghostOffset }
func (e *Engine3D) IsAuxiliary(v int) bool { return v < e.vertexStart }
func (e *Engine3D) NumLocal() int          { return e.vertexEnd - e.vertexStart }

// NumVertices returns the total vertex count, including the bounding
// simplex's auxiliary corners.
func (e *Engine3D) NumVertices() int { return e.verts.Len() }

// VertexStart returns the first local vertex index, for translating
// between raw vertex ids and 0-based local indices.
func (e *Engine3D) VertexStart() int { return e.vertexStart }

func (e *Engine3D) SimplexLink(v int) int            { return e.verts.SimplexLink(v) }
func (e *Engine3D) NumSimplices() int                { return e.topo.Len() }
func (e *Engine3D) SimplexActive(i int) bool         { return e.topo.Active(i) }
func (e *Engine3D) SimplexVertices(i int) [4]int     { return e.topo.Get(i).Vertices }
func (e *Engine3D) SimplexNeighbours(i int) [4]int   { return e.topo.Get(i).Neighbours }
func (e *Engine3D) SimplexReciprocal(i int) [4]int   { return e.topo.Get(i).Reciprocal }
func (e *Engine3D) VertexSlot(simplex, v int) int    { return e.topo.VertexSlot(simplex, v) }
func (e *Engine3D) IsDummySimplex(i int) bool        { return e.isDummy(i) }

// SearchRadius walks every tetrahedron incident to local vertex v,
// accumulating the largest circumradius among them, and returns twice
// that value. 3D vertex one-rings are not a simple cycle the way 2D ones
// are, so this performs a small breadth-first walk over incident
// tetrahedra rather than a single rotation.
func (e *Engine3D) SearchRadius(localIndex int) (float64, error) {
	v := e.vertexStart + localIndex
	if !e.IsLocal(v) {
		return 0, preconditionf("SearchRadius: %d is not a local vertex index", localIndex)
	}
	start := e.verts.SimplexLink(v)
	if start < 0 {
		return 0, preconditionf("SearchRadius: vertex %d has no incident simplex", v)
	}
	center := e.VertexPosition(v)
	maxR := 0.0
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if e.isDummy(cur) {
			continue
		}
		c := e.Circumcenter(cur)
		if r := geomkernel.CircumRadius3D(c, center); r > maxR {
			maxR = r
		}
		tet := e.topo.Get(cur)
		for slot, n := range tet.Neighbours {
			if n == topology.None || visited[n] {
				continue
			}
			// Only continue the walk across faces that still touch v,
			// i.e. faces not opposite v itself.
			if tet.Vertices[slot] == v {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	e.verts.SetSearchRadius(v, 2*maxR)
	return 2 * maxR, nil
}
