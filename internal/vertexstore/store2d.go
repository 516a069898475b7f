// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package vertexstore

import (
	"math"

	"github.com/2dChan/voromesh/internal/predicate"
)

// Store2D holds every coordinate view for a 2D tessellation's vertices.
type Store2D struct {
	anchor      [2]float64
	inverseSide [2]float64

	double      [][2]float64
	rescaled    [][2]float64
	mantissa    []predicate.Point2I
	simplexLink []int
	searchRadii []float64
}

// NewStore2D configures the rescale parameters and preallocates
// capacity vertex slots.
func NewStore2D(lo, hi [2]float64, capacity int) *Store2D {
	if capacity < 16 {
		capacity = 16
	}
	s := &Store2D{}
	for axis := 0; axis < 2; axis++ {
		s.anchor[axis], s.inverseSide[axis] = Rescale1D(lo[axis], hi[axis])
	}
	s.double = make([][2]float64, 0, capacity)
	s.rescaled = make([][2]float64, 0, capacity)
	s.mantissa = make([]predicate.Point2I, 0, capacity)
	s.simplexLink = make([]int, 0, capacity)
	s.searchRadii = make([]float64, 0, capacity)
	return s
}

// Len returns the number of vertices recorded so far.
func (s *Store2D) Len() int { return len(s.double) }

// AddVertex appends a vertex at (x, y), recording all three coordinate
// views, a "none" back-link sentinel, and an infinite search radius.
// Growth doubles capacity via append's own amortised doubling.
func (s *Store2D) AddVertex(x, y float64) (int, error) {
	rx := rescaleCoord(x, s.anchor[0], s.inverseSide[0])
	ry := rescaleCoord(y, s.anchor[1], s.inverseSide[1])
	if err := checkRange(rx); err != nil {
		return None, err
	}
	if err := checkRange(ry); err != nil {
		return None, err
	}
	s.double = append(s.double, [2]float64{x, y})
	s.rescaled = append(s.rescaled, [2]float64{rx, ry})
	s.mantissa = append(s.mantissa, predicate.Point2I{X: mantissaOf(rx), Y: mantissaOf(ry)})
	s.simplexLink = append(s.simplexLink, None)
	s.searchRadii = append(s.searchRadii, math.Inf(1))
	return len(s.double) - 1, nil
}

func (s *Store2D) Double(i int) [2]float64 { return s.double[i] }

func (s *Store2D) Mantissa(i int) predicate.Point2I { return s.mantissa[i] }

func (s *Store2D) SimplexLink(i int) int { return s.simplexLink[i] }

func (s *Store2D) SetSimplexLink(i, simplex int) { s.simplexLink[i] = simplex }

func (s *Store2D) SearchRadius(i int) float64 { return s.searchRadii[i] }

func (s *Store2D) SetSearchRadius(i int, r float64) { s.searchRadii[i] = r }
