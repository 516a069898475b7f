// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package vertexstore

import (
	"math"

	"github.com/2dChan/voromesh/internal/predicate"
)

// Store3D is the 3D analogue of Store2D.
type Store3D struct {
	anchor      [3]float64
	inverseSide [3]float64

	double      [][3]float64
	rescaled    [][3]float64
	mantissa    []predicate.Point3I
	simplexLink []int
	searchRadii []float64
}

func NewStore3D(lo, hi [3]float64, capacity int) *Store3D {
	if capacity < 16 {
		capacity = 16
	}
	s := &Store3D{}
	for axis := 0; axis < 3; axis++ {
		s.anchor[axis], s.inverseSide[axis] = Rescale1D(lo[axis], hi[axis])
	}
	s.double = make([][3]float64, 0, capacity)
	s.rescaled = make([][3]float64, 0, capacity)
	s.mantissa = make([]predicate.Point3I, 0, capacity)
	s.simplexLink = make([]int, 0, capacity)
	s.searchRadii = make([]float64, 0, capacity)
	return s
}

func (s *Store3D) Len() int { return len(s.double) }

func (s *Store3D) AddVertex(x, y, z float64) (int, error) {
	rx := rescaleCoord(x, s.anchor[0], s.inverseSide[0])
	ry := rescaleCoord(y, s.anchor[1], s.inverseSide[1])
	rz := rescaleCoord(z, s.anchor[2], s.inverseSide[2])
	if err := checkRange(rx); err != nil {
		return None, err
	}
	if err := checkRange(ry); err != nil {
		return None, err
	}
	if err := checkRange(rz); err != nil {
		return None, err
	}
	s.double = append(s.double, [3]float64{x, y, z})
	s.rescaled = append(s.rescaled, [3]float64{rx, ry, rz})
	s.mantissa = append(s.mantissa, predicate.Point3I{X: mantissaOf(rx), Y: mantissaOf(ry), Z: mantissaOf(rz)})
	s.simplexLink = append(s.simplexLink, None)
	s.searchRadii = append(s.searchRadii, math.Inf(1))
	return len(s.double) - 1, nil
}

func (s *Store3D) Double(i int) [3]float64 { return s.double[i] }

func (s *Store3D) Mantissa(i int) predicate.Point3I { return s.mantissa[i] }

func (s *Store3D) SimplexLink(i int) int { return s.simplexLink[i] }

func (s *Store3D) SetSimplexLink(i, simplex int) { s.simplexLink[i] = simplex }

func (s *Store3D) SearchRadius(i int) float64 { return s.searchRadii[i] }

func (s *Store3D) SetSearchRadius(i int, r float64) { s.searchRadii[i] = r }
