// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

func TestEngine2D_VerificationModeDoesNotPanicOnValidMesh(t *testing.T) {
	opts := DefaultOptions()
	opts.VerificationMode = true
	e := NewEngine2D(Bounds2D{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}}, opts)
	pts := []r2.Point{
		{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.5, Y: 0.5},
		{X: 0.2, Y: 0.8}, {X: 0.8, Y: 0.8},
	}
	for i, p := range pts {
		if err := e.AddLocalVertex(i, p); err != nil {
			t.Fatalf("AddLocalVertex(%d, %v) error = %v", i, p, err)
		}
	}
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
}

func TestEngine3D_VerificationModeDoesNotPanicOnValidMesh(t *testing.T) {
	opts := DefaultOptions()
	opts.VerificationMode = true
	e := NewEngine3D(Bounds3D{Min: [3]float64{0, 0, 0}, Max: [3]float64{1, 1, 1}}, opts)
	pts := []r3.Vector{
		{X: 0.2, Y: 0.2, Z: 0.2}, {X: 0.8, Y: 0.2, Z: 0.2}, {X: 0.5, Y: 0.5, Z: 0.2},
		{X: 0.2, Y: 0.8, Z: 0.2}, {X: 0.5, Y: 0.5, Z: 0.8},
	}
	for i, p := range pts {
		if err := e.AddLocalVertex(i, p); err != nil {
			t.Fatalf("AddLocalVertex(%d, %v) error = %v", i, p, err)
		}
	}
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
}
