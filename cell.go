// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voromesh

import (
	"fmt"

	"github.com/2dChan/voromesh/internal/voronoi"
	"github.com/golang/geo/r2"
)

// Cell2D is a view structure for accessing one cell of a Mesh2D. Its
// index corresponds to the local generator index.
type Cell2D struct {
	idx int
	m   *Mesh2D
}

// Index returns the cell's local generator index.
func (c Cell2D) Index() int {
	return c.idx
}

// Volume returns the cell's area.
func (c Cell2D) Volume() float64 {
	return c.m.d.CellVolume[c.idx]
}

// Centroid returns the cell's area-weighted centroid.
func (c Cell2D) Centroid() r2.Point {
	return c.m.d.CellCentroid[c.idx]
}

// NumFaces returns the number of faces bounding the cell.
func (c Cell2D) NumFaces() int {
	return c.m.d.CellFaceOffsets[c.idx+1] - c.m.d.CellFaceOffsets[c.idx]
}

// Face returns the cell's i-th bounding face.
func (c Cell2D) Face(i int) (Face2D, error) {
	start := c.m.d.CellFaceOffsets[c.idx]
	end := c.m.d.CellFaceOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Face2D{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, end-start)
	}
	return Face2D{idx: c.m.d.CellFaces[start+i], m: c.m}, nil
}

// Neighbor returns the cell on the other side of the i-th face. It
// returns an error if that face is a boundary face (no neighbor cell).
func (c Cell2D) Neighbor(i int) (Cell2D, error) {
	f, err := c.Face(i)
	if err != nil {
		return Cell2D{}, err
	}
	face := c.m.d.Faces[f.idx]
	if face.Kind != voronoi.FaceKindInterior {
		return Cell2D{}, fmt.Errorf("Neighbor: face %d is a boundary face, has no neighbor cell", i)
	}
	g := c.idx + c.m.vertexStart
	other := face.Left
	if other == g {
		other = face.Right
	}
	return Cell2D{idx: other - c.m.vertexStart, m: c.m}, nil
}

// Face2D is a view structure for accessing one face of a Mesh2D.
type Face2D struct {
	idx int
	m   *Mesh2D
}

// Kind is 0 for an interior face, 1 for a boundary face.
func (f Face2D) Kind() int {
	return f.m.d.Faces[f.idx].Kind
}

// Length returns the face's segment length.
func (f Face2D) Length() float64 {
	return f.m.d.Faces[f.idx].Length
}

// Midpoint returns the face's segment midpoint.
func (f Face2D) Midpoint() r2.Point {
	return f.m.d.Faces[f.idx].Midpoint
}

// Vertices returns the two circumcenters bounding the face's segment.
func (f Face2D) Vertices() [2]r2.Point {
	return f.m.d.Faces[f.idx].Vertices
}
