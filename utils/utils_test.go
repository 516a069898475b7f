// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints2D_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := GenerateRandomPoints2D(tt.cnt, r2.Point{}, r2.Point{X: 1, Y: 1}, tt.seed)
			if len(pts) != tt.cnt {
				t.Errorf("GenerateRandomPoints2D(%v, ...) len = %v, want %v", tt.cnt, len(pts), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints2D_InsideBox(t *testing.T) {
	min, max := r2.Point{X: -1, Y: 2}, r2.Point{X: 3, Y: 5}
	pts := GenerateRandomPoints2D(100, min, max, 0)
	for i, p := range pts {
		if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
			t.Errorf("pts[%d] = %v, want inside [%v, %v]", i, p, min, max)
		}
	}
}

func TestGenerateRandomPoints2D_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	min, max := r2.Point{}, r2.Point{X: 1, Y: 1}
	a := GenerateRandomPoints2D(cnt, min, max, seed)
	b := GenerateRandomPoints2D(cnt, min, max, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints2D(...) mismatch (-want +got):\n%v", diff)
	}
}

func TestGenerateRandomPoints3D_InsideBox(t *testing.T) {
	min, max := r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 1, Z: 1}
	pts := GenerateRandomPoints3D(100, min, max, 1)
	for i, p := range pts {
		if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y || p.Z < min.Z || p.Z > max.Z {
			t.Errorf("pts[%d] = %v, want inside [%v, %v]", i, p, min, max)
		}
	}
}

func TestGenerateJitteredGrid2D_Count(t *testing.T) {
	pts := GenerateJitteredGrid2D(4, 5, r2.Point{}, r2.Point{X: 1, Y: 1}, 0.2, 0)
	if len(pts) != 20 {
		t.Errorf("len(pts) = %v, want 20", len(pts))
	}
}

func TestGenerateJitteredGrid3D_Count(t *testing.T) {
	pts := GenerateJitteredGrid3D(3, 3, 3, r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1}, 0.2, 0)
	if len(pts) != 27 {
		t.Errorf("len(pts) = %v, want 27", len(pts))
	}
}

func TestGenerateBoundaryGhosts2D_OnCircle(t *testing.T) {
	const radius = 5.0
	center := r2.Point{X: 1, Y: 2}
	pts := GenerateBoundaryGhosts2D(16, center, radius)
	for i, p := range pts {
		d := p.Sub(center).Norm()
		if diff := d - radius; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("pts[%d] distance from center = %v, want %v", i, d, radius)
		}
	}
}

func TestGenerateBoundaryGhosts3D_OnSphere(t *testing.T) {
	const radius = 5.0
	center := r3.Vector{X: 1, Y: 2, Z: 3}
	pts := GenerateBoundaryGhosts3D(32, center, radius)
	for i, p := range pts {
		d := p.Sub(center).Norm()
		if diff := d - radius; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("pts[%d] distance from center = %v, want %v", i, d, radius)
		}
	}
}

func TestGenerateHilbertOrdered3D_InsideBoxAndCountPreserved(t *testing.T) {
	min, max := r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 1, Z: 1}
	pts := GenerateHilbertOrdered3D(1000, min, max, 7)
	if len(pts) != 1000 {
		t.Fatalf("len(pts) = %v, want 1000", len(pts))
	}
	for i, p := range pts {
		if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y || p.Z < min.Z || p.Z > max.Z {
			t.Errorf("pts[%d] = %v, want inside [%v, %v]", i, p, min, max)
		}
	}
}

func TestGenerateHilbertOrdered3D_ConsecutivePointsAreLocal(t *testing.T) {
	min, max := r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1}
	pts := GenerateHilbertOrdered3D(500, min, max, 3)
	var sumStep, sumRandom float64
	for i := 1; i < len(pts); i++ {
		sumStep += pts[i].Sub(pts[i-1]).Norm()
		sumRandom += pts[i].Sub(pts[0]).Norm()
	}
	if sumStep >= sumRandom {
		t.Errorf("mean consecutive step %v not smaller than mean distance from a fixed point %v; curve does not look locality-preserving", sumStep/float64(len(pts)-1), sumRandom/float64(len(pts)-1))
	}
}
