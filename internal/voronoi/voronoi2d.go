// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi builds the Delaunay-dual Voronoi diagram from a
// consolidated tessellation: per-generator cell volumes and centroids,
// and the faces separating neighbouring cells.
package voronoi

import (
	"math"

	"github.com/2dChan/voromesh/internal/geomkernel"
	"github.com/2dChan/voromesh/internal/tessellate"
	"github.com/golang/geo/r2"
)

// FaceKindInterior and FaceKindBoundary are the two sid values a debug
// dump's "F" lines carry: 0 for local-local faces, 1 for faces that
// border a ghost.
const (
	FaceKindInterior = 0
	FaceKindBoundary = 1
)

// Face2D is the dual of one Delaunay edge: a segment between the
// circumcenters of the two triangles on either side of it.
type Face2D struct {
	Left, Right int // generator vertex indices (raw, as returned by the tessellator)
	Kind        int
	Length      float64
	Midpoint    r2.Point
	Vertices    [2]r2.Point
}

// Diagram2D is the materialised dual of a consolidated Engine2D.
type Diagram2D struct {
	CellVolume   []float64 // indexed by local index
	CellCentroid []r2.Point

	Faces []Face2D

	// CellFaceOffsets/CellFaces is a CSR index from local generator to
	// the faces incident to it, both interior and boundary.
	CellFaceOffsets []int
	CellFaces       []int
}

// Build2D walks every local generator's one-ring, classifying and
// accumulating faces into cell volumes/centroids and a face list.
func Build2D(e *tessellate.Engine2D) (*Diagram2D, error) {
	n := e.NumLocal()
	if n < 0 {
		// NumLocal stays negative until Consolidate fixes the local range.
		return nil, tessellate.Preconditionf("Voronoi diagram requested before Consolidate")
	}
	d := &Diagram2D{
		CellVolume:      make([]float64, n),
		CellCentroid:    make([]r2.Point, n),
		CellFaceOffsets: make([]int, n+1),
	}
	cellFaceLists := make([][]int, n)

	vertexStart := e.VertexStart()
	for local := 0; local < n; local++ {
		g := local + vertexStart
		start := e.SimplexLink(g)
		if start < 0 {
			return nil, tessellate.Preconditionf("generator %d has no incident simplex", g)
		}

		visited := map[int]bool{g: true}
		type edgeSeed struct {
			simplex, other int
		}
		seed, ok := firstEdge2D(e, g, start)
		if !ok {
			continue
		}
		visited[seed.other] = true
		queue := []edgeSeed{{start, seed.other}}

		var moment r2.Point
		for len(queue) > 0 {
			ee := queue[0]
			queue = queue[1:]
			a := ee.other

			if e.IsAuxiliary(a) {
				continue
			}

			polygon, thirds, ok := rotateEdge2D(e, g, a, ee.simplex)
			if !ok {
				continue
			}
			for k, third := range thirds {
				if !visited[third] {
					visited[third] = true
					// thirds[1] lies in the neighbour of ee.simplex across
					// edge (g,a), so that neighbour seeds its edge.
					s := ee.simplex
					if k == 1 {
						_, slot, _ := thirdVertex2D(e.SimplexVertices(ee.simplex), g, a)
						s = e.SimplexNeighbours(ee.simplex)[slot]
					}
					queue = append(queue, edgeSeed{s, third})
				}
			}

			length := polygon[0].Sub(polygon[1]).Norm()
			mid := r2.Point{X: (polygon[0].X + polygon[1].X) / 2, Y: (polygon[0].Y + polygon[1].Y) / 2}

			kind := -1
			switch {
			case e.IsLocal(a):
				if g < a {
					kind = FaceKindInterior
				}
			case e.IsGhost(a):
				kind = FaceKindBoundary
			}
			if kind >= 0 {
				faceIdx := len(d.Faces)
				d.Faces = append(d.Faces, Face2D{
					Left: g, Right: a, Kind: kind,
					Length: length, Midpoint: mid,
					Vertices: [2]r2.Point{polygon[0], polygon[1]},
				})
				cellFaceLists[local] = append(cellFaceLists[local], faceIdx)
				if kind == FaceKindInterior {
					otherLocal := a - vertexStart
					cellFaceLists[otherLocal] = append(cellFaceLists[otherLocal], faceIdx)
				}
			}

			area, centroid := geomkernel.PolygonAreaCentroid2D([]r2.Point{e.VertexPosition(g), polygon[0], polygon[1]})
			// The fan triangle's sign follows the rotation direction; the
			// convex cell around g is the union of the triangles' magnitudes.
			area = math.Abs(area)
			d.CellVolume[local] += area
			moment.X += area * centroid.X
			moment.Y += area * centroid.Y
		}

		if d.CellVolume[local] != 0 {
			d.CellCentroid[local] = r2.Point{X: moment.X / d.CellVolume[local], Y: moment.Y / d.CellVolume[local]}
		} else {
			d.CellCentroid[local] = e.VertexPosition(g)
		}
	}

	for local := 0; local < n; local++ {
		d.CellFaceOffsets[local+1] = d.CellFaceOffsets[local] + len(cellFaceLists[local])
		d.CellFaces = append(d.CellFaces, cellFaceLists[local]...)
	}
	return d, nil
}

// firstEdge2D finds an arbitrary non-g vertex of start to seed the FIFO.
func firstEdge2D(e *tessellate.Engine2D, g, start int) (struct{ simplex, other int }, bool) {
	verts := e.SimplexVertices(start)
	for _, v := range verts {
		if v != g {
			return struct{ simplex, other int }{start, v}, true
		}
	}
	return struct{ simplex, other int }{}, false
}

// rotateEdge2D walks the (at most two, in 2D) triangles incident to
// Delaunay edge (g,a), starting from simplex, returning their
// circumcenters and each triangle's third vertex.
func rotateEdge2D(e *tessellate.Engine2D, g, a, simplex int) (polygon [2]r2.Point, thirds []int, ok bool) {
	cur := simplex
	count := 0
	for {
		if e.IsDummySimplex(cur) {
			return polygon, nil, false
		}
		if count >= 2 {
			return polygon, nil, false
		}
		polygon[count] = e.Circumcenter(cur)
		verts := e.SimplexVertices(cur)
		third, thirdSlot, found := thirdVertex2D(verts, g, a)
		if !found {
			return polygon, nil, false
		}
		thirds = append(thirds, third)
		count++
		next := e.SimplexNeighbours(cur)[thirdSlot]
		if next < 0 {
			return polygon, nil, false
		}
		if next == simplex {
			break
		}
		cur = next
	}
	if count != 2 {
		return polygon, nil, false
	}
	return polygon, thirds, true
}

func thirdVertex2D(verts [3]int, g, a int) (v, slot int, ok bool) {
	for s, x := range verts {
		if x != g && x != a {
			return x, s, true
		}
	}
	return 0, 0, false
}

