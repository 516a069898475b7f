// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"math"
	"testing"

	"github.com/2dChan/voromesh/internal/tessellate"
	"github.com/golang/geo/r3"
)

func cubeWithGhosts3D(t *testing.T) *tessellate.Engine3D {
	t.Helper()
	e := tessellate.NewEngine3D(tessellate.Bounds3D{Min: [3]float64{0, 0, 0}, Max: [3]float64{1, 1, 1}}, tessellate.DefaultOptions())
	locals := []r3.Vector{
		{X: 0.3, Y: 0.3, Z: 0.3},
		{X: 0.7, Y: 0.3, Z: 0.3},
		{X: 0.5, Y: 0.7, Z: 0.3},
		{X: 0.5, Y: 0.5, Z: 0.7},
	}
	for i, p := range locals {
		if err := e.AddLocalVertex(i, p); err != nil {
			t.Fatalf("AddLocalVertex(%d): %v", i, err)
		}
	}
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate: %v", err)
	}
	ghosts := []r3.Vector{
		{X: -2, Y: -2, Z: -2}, {X: 3, Y: -2, Z: -2}, {X: 0.5, Y: 3, Z: -2}, {X: 0.5, Y: 0.5, Z: 3},
		{X: -2, Y: 0.5, Z: 0.5}, {X: 3, Y: 0.5, Z: 0.5},
	}
	for _, p := range ghosts {
		if _, err := e.AddGhostVertex(p); err != nil {
			t.Fatalf("AddGhostVertex(%v): %v", p, err)
		}
	}
	return e
}

func TestBuild3D_CellVolumesPositive(t *testing.T) {
	e := cubeWithGhosts3D(t)
	d, err := Build3D(e)
	if err != nil {
		t.Fatalf("Build3D: %v", err)
	}
	if len(d.CellVolume) != e.NumLocal() {
		t.Fatalf("CellVolume has %d entries, want %d", len(d.CellVolume), e.NumLocal())
	}
	for i, v := range d.CellVolume {
		if v <= 0 {
			t.Errorf("cell %d volume = %v, want > 0", i, v)
		}
	}
}

func TestBuild3D_InteriorFacesSharedBetweenTwoCells(t *testing.T) {
	e := cubeWithGhosts3D(t)
	d, err := Build3D(e)
	if err != nil {
		t.Fatalf("Build3D: %v", err)
	}
	for fi, f := range d.Faces {
		if f.Kind != FaceKindInterior {
			continue
		}
		if f.Left >= f.Right {
			t.Errorf("face %d: interior face not stored with Left < Right (%d, %d)", fi, f.Left, f.Right)
		}
		if len(f.Vertices) < 3 {
			t.Errorf("face %d: polygon has %d vertices, want >= 3", fi, len(f.Vertices))
		}
		if f.Area <= 0 {
			t.Errorf("face %d: area = %v, want > 0", fi, f.Area)
		}
	}
}

func TestBuild3D_CellFaceOffsetsMonotone(t *testing.T) {
	e := cubeWithGhosts3D(t)
	d, err := Build3D(e)
	if err != nil {
		t.Fatalf("Build3D: %v", err)
	}
	for i := 1; i < len(d.CellFaceOffsets); i++ {
		if d.CellFaceOffsets[i] < d.CellFaceOffsets[i-1] {
			t.Fatalf("CellFaceOffsets not monotone at %d: %v", i, d.CellFaceOffsets)
		}
	}
	if got := d.CellFaceOffsets[len(d.CellFaceOffsets)-1]; got != len(d.CellFaces) {
		t.Errorf("final offset = %d, want %d (len(CellFaces))", got, len(d.CellFaces))
	}
}

func TestBuild3D_CentroidNotNaN(t *testing.T) {
	e := cubeWithGhosts3D(t)
	d, err := Build3D(e)
	if err != nil {
		t.Fatalf("Build3D: %v", err)
	}
	for i, c := range d.CellCentroid {
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
			t.Errorf("cell %d centroid is NaN: %v", i, c)
		}
	}
}
