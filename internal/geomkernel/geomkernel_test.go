// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geomkernel

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

func TestCircumcenter2D_Equidistant(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 4, Y: 0}
	c := r2.Point{X: 0, Y: 3}
	center := Circumcenter2D(a, b, c)
	ra := CircumRadius2D(center, a)
	rb := CircumRadius2D(center, b)
	rc := CircumRadius2D(center, c)
	if math.Abs(ra-rb) > 1e-9 || math.Abs(rb-rc) > 1e-9 {
		t.Errorf("Circumcenter2D(%v,%v,%v) = %v: radii %v %v %v not equal", a, b, c, center, ra, rb, rc)
	}
}

func TestCircumcenter3D_Equidistant(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 0}
	b := r3.Vector{X: 4, Y: 0, Z: 0}
	c := r3.Vector{X: 0, Y: 3, Z: 0}
	d := r3.Vector{X: 0, Y: 0, Z: 5}
	center := Circumcenter3D(a, b, c, d)
	ra := CircumRadius3D(center, a)
	rb := CircumRadius3D(center, b)
	rc := CircumRadius3D(center, c)
	rd := CircumRadius3D(center, d)
	for _, pair := range [][2]float64{{ra, rb}, {rb, rc}, {rc, rd}} {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Errorf("Circumcenter3D(%v,%v,%v,%v) = %v: radii %v %v %v %v not equal", a, b, c, d, center, ra, rb, rc, rd)
		}
	}
}

func TestPolygonAreaCentroid2D_UnitSquare(t *testing.T) {
	verts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	area, centroid := PolygonAreaCentroid2D(verts)
	if math.Abs(area-1) > 1e-9 {
		t.Errorf("PolygonAreaCentroid2D(unit square) area = %v, want 1", area)
	}
	want := r2.Point{X: 0.5, Y: 0.5}
	if math.Abs(centroid.X-want.X) > 1e-9 || math.Abs(centroid.Y-want.Y) > 1e-9 {
		t.Errorf("PolygonAreaCentroid2D(unit square) centroid = %v, want %v", centroid, want)
	}
}

func TestPolygonAreaCentroid2D_Degenerate(t *testing.T) {
	if area, centroid := PolygonAreaCentroid2D(nil); area != 0 || centroid != (r2.Point{}) {
		t.Errorf("PolygonAreaCentroid2D(nil) = %v, %v, want 0, zero point", area, centroid)
	}
	single := []r2.Point{{X: 3, Y: 4}}
	if area, centroid := PolygonAreaCentroid2D(single); area != 0 || centroid != single[0] {
		t.Errorf("PolygonAreaCentroid2D(single) = %v, %v, want 0, %v", area, centroid, single[0])
	}
}

func TestPolygonAreaCentroid3D_UnitSquareInPlane(t *testing.T) {
	verts := []r3.Vector{
		{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2},
	}
	area, centroid := PolygonAreaCentroid3D(verts)
	if math.Abs(area-1) > 1e-9 {
		t.Errorf("PolygonAreaCentroid3D(unit square) area = %v, want 1", area)
	}
	want := r3.Vector{X: 0.5, Y: 0.5, Z: 2}
	if centroid.Sub(want).Norm() > 1e-9 {
		t.Errorf("PolygonAreaCentroid3D(unit square) centroid = %v, want %v", centroid, want)
	}
}

func TestTetraSignedVolumeCentroid_UnitTetra(t *testing.T) {
	g := r3.Vector{X: 0, Y: 0, Z: 0}
	a := r3.Vector{X: 1, Y: 0, Z: 0}
	b := r3.Vector{X: 0, Y: 1, Z: 0}
	c := r3.Vector{X: 0, Y: 0, Z: 1}
	volume, centroid := TetraSignedVolumeCentroid(g, a, b, c)
	if math.Abs(volume-1.0/6.0) > 1e-9 {
		t.Errorf("TetraSignedVolumeCentroid(...) volume = %v, want 1/6", volume)
	}
	want := r3.Vector{X: 0.25, Y: 0.25, Z: 0.25}
	if centroid.Sub(want).Norm() > 1e-9 {
		t.Errorf("TetraSignedVolumeCentroid(...) centroid = %v, want %v", centroid, want)
	}
}

func TestTetraSignedVolumeCentroid_FlipsSignOnVertexSwap(t *testing.T) {
	g := r3.Vector{X: 0, Y: 0, Z: 0}
	a := r3.Vector{X: 1, Y: 0, Z: 0}
	b := r3.Vector{X: 0, Y: 1, Z: 0}
	c := r3.Vector{X: 0, Y: 0, Z: 1}
	v1, _ := TetraSignedVolumeCentroid(g, a, b, c)
	v2, _ := TetraSignedVolumeCentroid(g, b, a, c)
	if math.Abs(v1+v2) > 1e-9 {
		t.Errorf("swapping two vertices: volume %v, %v should be negatives of each other", v1, v2)
	}
}
