// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"math"

	"github.com/2dChan/voromesh/internal/geomkernel"
	"github.com/2dChan/voromesh/internal/tessellate"
	"github.com/golang/geo/r3"
)

// Face3D is the dual of one Delaunay edge: the polygon of circumcenters
// of every tetrahedron incident to that edge.
type Face3D struct {
	Left, Right int
	Kind        int
	Area        float64
	Midpoint    r3.Vector
	Vertices    []r3.Vector
}

// Diagram3D is the materialised dual of a consolidated Engine3D.
type Diagram3D struct {
	CellVolume   []float64
	CellCentroid []r3.Vector

	Faces []Face3D

	CellFaceOffsets []int
	CellFaces       []int
}

// Build3D is Build2D's 3D counterpart: per generator, a FIFO of
// Delaunay edges, each rotated around to gather its bounding polygon of
// circumcenters.
func Build3D(e *tessellate.Engine3D) (*Diagram3D, error) {
	n := e.NumLocal()
	if n < 0 {
		// NumLocal stays negative until Consolidate fixes the local range.
		return nil, tessellate.Preconditionf("Voronoi diagram requested before Consolidate")
	}
	d := &Diagram3D{
		CellVolume:      make([]float64, n),
		CellCentroid:    make([]r3.Vector, n),
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
		seed, ok := firstEdge3D(e, g, start)
		if !ok {
			continue
		}
		visited[seed.other] = true
		queue := []edgeSeed{{start, seed.other}}

		var moment r3.Vector
		for len(queue) > 0 {
			ee := queue[0]
			queue = queue[1:]
			a := ee.other

			if e.IsAuxiliary(a) {
				continue
			}

			polygon, thirds, tets, ok := rotateEdge3D(e, g, a, ee.simplex)
			if !ok {
				continue
			}
			for k, third := range thirds {
				if !visited[third] {
					visited[third] = true
					queue = append(queue, edgeSeed{tets[k], third})
				}
			}

			kind := -1
			switch {
			case e.IsLocal(a):
				if g < a {
					kind = FaceKindInterior
				}
			case e.IsGhost(a):
				kind = FaceKindBoundary
			}

			area, mid := geomkernel.PolygonAreaCentroid3D(polygon)
			if kind >= 0 {
				faceIdx := len(d.Faces)
				d.Faces = append(d.Faces, Face3D{
					Left: g, Right: a, Kind: kind,
					Area: area, Midpoint: mid,
					Vertices: append([]r3.Vector(nil), polygon...),
				})
				cellFaceLists[local] = append(cellFaceLists[local], faceIdx)
				if kind == FaceKindInterior {
					otherLocal := a - vertexStart
					cellFaceLists[otherLocal] = append(cellFaceLists[otherLocal], faceIdx)
				}
			}

			gPos := e.VertexPosition(g)
			for i := 1; i < len(polygon)-1; i++ {
				vol, centroid := geomkernel.TetraSignedVolumeCentroid(gPos, polygon[0], polygon[i], polygon[i+1])
				// The sign follows the rotation direction around the edge;
				// the convex cell around g is the union of the magnitudes.
				vol = math.Abs(vol)
				d.CellVolume[local] += vol
				moment = moment.Add(centroid.Mul(vol))
			}
		}

		if d.CellVolume[local] != 0 {
			d.CellCentroid[local] = moment.Mul(1 / d.CellVolume[local])
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

func firstEdge3D(e *tessellate.Engine3D, g, start int) (struct{ simplex, other int }, bool) {
	verts := e.SimplexVertices(start)
	for _, v := range verts {
		if v != g {
			return struct{ simplex, other int }{start, v}, true
		}
	}
	return struct{ simplex, other int }{}, false
}

// rotateEdge3D walks every tetrahedron incident to Delaunay edge (g,a).
// Each such tetrahedron has exactly two further vertices, the edge's
// "rim" pair; one is shared with the tetrahedron just visited (skip),
// the other is new. Advancing means crossing the face opposite skip,
// which replaces skip with a fresh rim vertex for the next tetrahedron
// — crossing opposite the other vertex instead would step straight back
// the way we came. tets[k] is the tetrahedron in which thirds[k] was found.
func rotateEdge3D(e *tessellate.Engine3D, g, a, start int) (polygon []r3.Vector, thirds, tets []int, ok bool) {
	skip, found := firstRimVertex3D(e.SimplexVertices(start), g, a)
	if !found {
		return nil, nil, nil, false
	}
	cur := start
	for steps := 0; ; steps++ {
		if steps > 10000 {
			return nil, nil, nil, false
		}
		if e.IsDummySimplex(cur) {
			return nil, nil, nil, false
		}
		polygon = append(polygon, e.Circumcenter(cur))
		third, skipSlot, found := thirdVertex3D(e.SimplexVertices(cur), g, a, skip)
		if !found {
			return nil, nil, nil, false
		}
		thirds = append(thirds, third)
		tets = append(tets, cur)
		next := e.SimplexNeighbours(cur)[skipSlot]
		if next < 0 {
			return nil, nil, nil, false
		}
		if next == start {
			break
		}
		cur = next
		skip = third
	}
	if len(polygon) < 3 {
		return nil, nil, nil, false
	}
	return polygon, thirds, tets, true
}

// firstRimVertex3D returns either of verts' two non-(g,a) vertices, to
// seed rotateEdge3D's notion of which one is "already behind us" at the
// starting tetrahedron.
func firstRimVertex3D(verts [4]int, g, a int) (v int, ok bool) {
	for _, x := range verts {
		if x != g && x != a {
			return x, true
		}
	}
	return 0, false
}

// thirdVertex3D returns verts' rim vertex other than skip (the "new"
// one for this step) together with skip's own slot, which is the face
// to cross to advance the rotation.
func thirdVertex3D(verts [4]int, g, a, skip int) (third, skipSlot int, ok bool) {
	third, skipSlot = -1, -1
	for s, x := range verts {
		if x == skip {
			skipSlot = s
			continue
		}
		if x != g && x != a {
			third = x
		}
	}
	if third < 0 || skipSlot < 0 {
		return 0, 0, false
	}
	return third, skipSlot, true
}
