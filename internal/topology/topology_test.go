// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package topology

import "testing"

func TestStore2D_ReciprocityAfterSwap(t *testing.T) {
	s := NewStore2D(4)
	a := s.NewSimplex([3]int{0, 1, 2})
	b := s.NewSimplex([3]int{1, 0, 3})

	s.SwapNeighbour(a, 2, b, 2)

	if got := s.Get(a).Neighbours[2]; got != b {
		t.Fatalf("a.Neighbours[2] = %d, want %d", got, b)
	}
	if got := s.Get(b).Neighbours[2]; got != a {
		t.Fatalf("b.Neighbours[2] = %d, want %d", got, a)
	}
	if got := s.Get(a).Reciprocal[2]; got != 2 {
		t.Fatalf("a.Reciprocal[2] = %d, want 2", got)
	}
}

func TestStore2D_DeactivateReusesSlot(t *testing.T) {
	s := NewStore2D(4)
	a := s.NewSimplex([3]int{0, 1, 2})
	s.Deactivate(a)
	if s.Active(a) {
		t.Fatalf("slot %d should be inactive", a)
	}
	b := s.NewSimplex([3]int{3, 4, 5})
	if b != a {
		t.Fatalf("NewSimplex after Deactivate = %d, want reused slot %d", b, a)
	}
	if !s.Active(b) {
		t.Fatalf("reused slot %d should be active", b)
	}
}

func TestStore3D_ReciprocityAfterSwap(t *testing.T) {
	s := NewStore3D(4)
	a := s.NewSimplex([4]int{0, 1, 2, 3})
	b := s.NewSimplex([4]int{1, 0, 2, 4})

	s.SwapNeighbour(a, 3, b, 3)

	if got := s.Get(a).Neighbours[3]; got != b {
		t.Fatalf("a.Neighbours[3] = %d, want %d", got, b)
	}
	if got := s.Get(b).Neighbours[3]; got != a {
		t.Fatalf("b.Neighbours[3] = %d, want %d", got, a)
	}
}

func TestVertexSlot(t *testing.T) {
	s := NewStore3D(4)
	a := s.NewSimplex([4]int{5, 6, 7, 8})
	if got := s.VertexSlot(a, 7); got != 2 {
		t.Fatalf("VertexSlot(a, 7) = %d, want 2", got)
	}
	if got := s.VertexSlot(a, 99); got != None {
		t.Fatalf("VertexSlot(a, 99) = %d, want None", got)
	}
}
