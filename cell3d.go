// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voromesh

import (
	"fmt"

	"github.com/2dChan/voromesh/internal/voronoi"
	"github.com/golang/geo/r3"
)

// Cell3D is a view structure for accessing one cell of a Mesh3D. Its
// index corresponds to the local generator index.
type Cell3D struct {
	idx int
	m   *Mesh3D
}

// Index returns the cell's local generator index.
func (c Cell3D) Index() int {
	return c.idx
}

// Volume returns the cell's volume.
func (c Cell3D) Volume() float64 {
	return c.m.d.CellVolume[c.idx]
}

// Centroid returns the cell's volume-weighted centroid.
func (c Cell3D) Centroid() r3.Vector {
	return c.m.d.CellCentroid[c.idx]
}

// NumFaces returns the number of faces bounding the cell.
func (c Cell3D) NumFaces() int {
	return c.m.d.CellFaceOffsets[c.idx+1] - c.m.d.CellFaceOffsets[c.idx]
}

// Face returns the cell's i-th bounding face.
func (c Cell3D) Face(i int) (Face3D, error) {
	start := c.m.d.CellFaceOffsets[c.idx]
	end := c.m.d.CellFaceOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Face3D{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, end-start)
	}
	return Face3D{idx: c.m.d.CellFaces[start+i], m: c.m}, nil
}

// Neighbor returns the cell on the other side of the i-th face. It
// returns an error if that face is a boundary face (no neighbor cell).
func (c Cell3D) Neighbor(i int) (Cell3D, error) {
	f, err := c.Face(i)
	if err != nil {
		return Cell3D{}, err
	}
	face := c.m.d.Faces[f.idx]
	if face.Kind != voronoi.FaceKindInterior {
		return Cell3D{}, fmt.Errorf("Neighbor: face %d is a boundary face, has no neighbor cell", i)
	}
	g := c.idx + c.m.vertexStart
	other := face.Left
	if other == g {
		other = face.Right
	}
	return Cell3D{idx: other - c.m.vertexStart, m: c.m}, nil
}

// Face3D is a view structure for accessing one face of a Mesh3D.
type Face3D struct {
	idx int
	m   *Mesh3D
}

// Kind is 0 for an interior face, 1 for a boundary face.
func (f Face3D) Kind() int {
	return f.m.d.Faces[f.idx].Kind
}

// Area returns the face's polygon area.
func (f Face3D) Area() float64 {
	return f.m.d.Faces[f.idx].Area
}

// Midpoint returns the face's polygon centroid.
func (f Face3D) Midpoint() r3.Vector {
	return f.m.d.Faces[f.idx].Midpoint
}

// Vertices returns the face's circumcenter polygon, in rotation order.
func (f Face3D) Vertices() []r3.Vector {
	return f.m.d.Faces[f.idx].Vertices
}
