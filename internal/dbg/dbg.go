// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package dbg writes line-oriented, tab-separated debug dumps:
// vertex/simplex listings for a tessellation, and cell/face listings
// for a Voronoi diagram.
package dbg

import (
	"bufio"
	"fmt"
	"io"

	"github.com/2dChan/voromesh/internal/tessellate"
	"github.com/2dChan/voromesh/internal/voronoi"
)

// PrintTessellation2D writes one "V" line per vertex and one "T" line
// per active, non-dummy triangle.
func PrintTessellation2D(w io.Writer, e *tessellate.Engine2D) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < e.NumVertices(); v++ {
		p := e.VertexPosition(v)
		if _, err := fmt.Fprintf(bw, "V\t%d\t%g\t%g\n", v, p.X, p.Y); err != nil {
			return err
		}
	}
	for i := 0; i < e.NumSimplices(); i++ {
		if !e.SimplexActive(i) || e.IsDummySimplex(i) {
			continue
		}
		vs := e.SimplexVertices(i)
		if _, err := fmt.Fprintf(bw, "T\t%d\t%d\t%d\n", vs[0], vs[1], vs[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintTessellation3D is PrintTessellation2D's 3D counterpart.
func PrintTessellation3D(w io.Writer, e *tessellate.Engine3D) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < e.NumVertices(); v++ {
		p := e.VertexPosition(v)
		if _, err := fmt.Fprintf(bw, "V\t%d\t%g\t%g\t%g\n", v, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for i := 0; i < e.NumSimplices(); i++ {
		if !e.SimplexActive(i) || e.IsDummySimplex(i) {
			continue
		}
		vs := e.SimplexVertices(i)
		if _, err := fmt.Fprintf(bw, "T\t%d\t%d\t%d\t%d\n", vs[0], vs[1], vs[2], vs[3]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintVoronoi2D writes one "C" line per cell (centroid, volume and its
// incident face count) followed by one "F" line per face (kind, area,
// midpoint and the two vertices bounding the segment).
func PrintVoronoi2D(w io.Writer, d *voronoi.Diagram2D) error {
	bw := bufio.NewWriter(w)
	for c := range d.CellVolume {
		nfaces := d.CellFaceOffsets[c+1] - d.CellFaceOffsets[c]
		centroid := d.CellCentroid[c]
		if _, err := fmt.Fprintf(bw, "C\t%g\t%g\t%g\t%d\n", centroid.X, centroid.Y, d.CellVolume[c], nfaces); err != nil {
			return err
		}
	}
	for _, f := range d.Faces {
		if _, err := fmt.Fprintf(bw, "F\t%d\t%g\t%g\t%g\t(%g %g)\t(%g %g)\n",
			f.Kind, f.Length, f.Midpoint.X, f.Midpoint.Y,
			f.Vertices[0].X, f.Vertices[0].Y, f.Vertices[1].X, f.Vertices[1].Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintVoronoi3D is PrintVoronoi2D's 3D counterpart; each "F" line's
// trailing vertex list is the face's full circumcenter polygon.
func PrintVoronoi3D(w io.Writer, d *voronoi.Diagram3D) error {
	bw := bufio.NewWriter(w)
	for c := range d.CellVolume {
		nfaces := d.CellFaceOffsets[c+1] - d.CellFaceOffsets[c]
		centroid := d.CellCentroid[c]
		if _, err := fmt.Fprintf(bw, "C\t%g\t%g\t%g\t%g\t%d\n", centroid.X, centroid.Y, centroid.Z, d.CellVolume[c], nfaces); err != nil {
			return err
		}
	}
	for _, f := range d.Faces {
		if _, err := fmt.Fprintf(bw, "F\t%d\t%g\t%g\t%g\t%g", f.Kind, f.Area, f.Midpoint.X, f.Midpoint.Y, f.Midpoint.Z); err != nil {
			return err
		}
		for _, v := range f.Vertices {
			if _, err := fmt.Fprintf(bw, "\t(%g %g %g)", v.X, v.Y, v.Z); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
