// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"errors"
	"testing"

	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/golang/geo/r2"
)

func mustNewEngine2D(t *testing.T, pts []r2.Point) *Engine2D {
	t.Helper()
	e := NewEngine2D(Bounds2D{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}}, DefaultOptions())
	for i, p := range pts {
		if err := e.AddLocalVertex(i, p); err != nil {
			t.Fatalf("AddLocalVertex(%d, %v) error = %v", i, p, err)
		}
	}
	return e
}

// checkTopology2D asserts every active non-dummy triangle's reciprocal
// links are mutually consistent.
func checkTopology2D(t *testing.T, e *Engine2D) {
	t.Helper()
	for i := 0; i < e.NumSimplices(); i++ {
		if !e.SimplexActive(i) || e.IsDummySimplex(i) {
			continue
		}
		n := e.SimplexNeighbours(i)
		r := e.SimplexReciprocal(i)
		for slot := 0; slot < 3; slot++ {
			nb := n[slot]
			if nb < 0 {
				t.Errorf("simplex %d slot %d has no neighbour", i, slot)
				continue
			}
			if e.SimplexNeighbours(nb)[r[slot]] != i {
				t.Errorf("simplex %d slot %d -> %d/%d is not reciprocal", i, slot, nb, r[slot])
			}
		}
	}
}

func TestEngine2D_InsertInterior(t *testing.T) {
	e := mustNewEngine2D(t, []r2.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
		{X: 0.5, Y: 0.4},
	})
	checkTopology2D(t, e)
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
	if got := e.NumLocal(); got != 4 {
		t.Errorf("NumLocal() = %v, want 4", got)
	}
}

func TestEngine2D_InsertOnEdge(t *testing.T) {
	e := mustNewEngine2D(t, []r2.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
	})
	if err := e.AddLocalVertex(3, r2.Point{X: 0.5, Y: 0.2}); err != nil {
		t.Fatalf("AddLocalVertex on edge error = %v", err)
	}
	checkTopology2D(t, e)
}

func TestEngine2D_DelaunayPropertyHolds(t *testing.T) {
	pts := []r2.Point{
		{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.1}, {X: 0.1, Y: 0.9}, {X: 0.9, Y: 0.9},
		{X: 0.5, Y: 0.5}, {X: 0.3, Y: 0.6}, {X: 0.7, Y: 0.3},
	}
	e := mustNewEngine2D(t, pts)
	checkTopology2D(t, e)

	for i := 0; i < e.NumSimplices(); i++ {
		if !e.SimplexActive(i) || e.IsDummySimplex(i) {
			continue
		}
		vs := e.SimplexVertices(i)
		for local := 0; local < e.verts.Len()-e.vertexStart; local++ {
			w := e.vertexStart + local
			if w == vs[0] || w == vs[1] || w == vs[2] {
				continue
			}
			sign := predicate.InCircle(e.scratch, e.mantissa(vs[0]), e.mantissa(vs[1]), e.mantissa(vs[2]), e.mantissa(w))
			if sign == predicate.Negative {
				t.Errorf("simplex %d (verts %v) has vertex %d strictly inside its circumcircle", i, vs, w)
			}
		}
	}
}

func TestEngine2D_SearchRadiusPositive(t *testing.T) {
	e := mustNewEngine2D(t, []r2.Point{
		{X: 0.2, Y: 0.2},
		{X: 0.8, Y: 0.2},
		{X: 0.5, Y: 0.8},
		{X: 0.5, Y: 0.45},
	})
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
	for i := 0; i < e.NumLocal(); i++ {
		r, err := e.SearchRadius(i)
		if err != nil {
			t.Fatalf("SearchRadius(%d) error = %v", i, err)
		}
		if r <= 0 {
			t.Errorf("SearchRadius(%d) = %v, want > 0", i, r)
		}
	}
}

func TestEngine2D_ColinearTrioRejected(t *testing.T) {
	e := NewEngine2D(Bounds2D{Min: [2]float64{-5, -5}, Max: [2]float64{5, 5}}, DefaultOptions())
	if err := e.AddLocalVertex(0, r2.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("AddLocalVertex(0): %v", err)
	}
	if err := e.AddLocalVertex(1, r2.Point{X: 1, Y: 0}); err != nil {
		t.Fatalf("AddLocalVertex(1): %v", err)
	}
	if err := e.AddLocalVertex(2, r2.Point{X: 2, Y: 0}); err == nil {
		t.Error("AddLocalVertex(2) on a colinear trio: want error, got nil")
	} else if !errors.Is(err, ErrPrecondition) {
		t.Errorf("AddLocalVertex(2) error = %v, want wrapped ErrPrecondition", err)
	}
}

func TestEngine2D_AddLocalVertexAfterConsolidateRejected(t *testing.T) {
	e := mustNewEngine2D(t, []r2.Point{{X: 0.2, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.5, Y: 0.8}})
	if err := e.Consolidate(); err != nil {
		t.Fatalf("Consolidate() error = %v", err)
	}
	if err := e.AddLocalVertex(3, r2.Point{X: 0.4, Y: 0.4}); err == nil {
		t.Error("AddLocalVertex after Consolidate: want error, got nil")
	}
}
