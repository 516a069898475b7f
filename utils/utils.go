// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded point-set generators for tests and
// examples: uniform box sampling and jittered lattices, in 2D and 3D.
package utils

import (
	"math"
	"math/rand"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// GenerateRandomPoints2D generates a vector of uniformly random points
// inside [min, max]. The seed parameter ensures reproducibility.
func GenerateRandomPoints2D(cnt int, min, max r2.Point, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	pts := make([]r2.Point, cnt)
	for i := range cnt {
		pts[i] = r2.Point{
			X: min.X + random.Float64()*(max.X-min.X),
			Y: min.Y + random.Float64()*(max.Y-min.Y),
		}
	}
	return pts
}

// GenerateRandomPoints3D is GenerateRandomPoints2D's 3D counterpart.
func GenerateRandomPoints3D(cnt int, min, max r3.Vector, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	pts := make([]r3.Vector, cnt)
	for i := range cnt {
		pts[i] = r3.Vector{
			X: min.X + random.Float64()*(max.X-min.X),
			Y: min.Y + random.Float64()*(max.Y-min.Y),
			Z: min.Z + random.Float64()*(max.Z-min.Z),
		}
	}
	return pts
}

// GenerateJitteredGrid2D lays out an nx-by-ny lattice inside [min, max]
// and perturbs each point by up to jitter*cellSize in each axis, the
// usual way to get a well-spread but non-degenerate point set for
// tessellation tests.
func GenerateJitteredGrid2D(nx, ny int, min, max r2.Point, jitter float64, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	dx := (max.X - min.X) / float64(nx)
	dy := (max.Y - min.Y) / float64(ny)
	pts := make([]r2.Point, 0, nx*ny)
	for i := range nx {
		for j := range ny {
			cx := min.X + (float64(i)+0.5)*dx
			cy := min.Y + (float64(j)+0.5)*dy
			pts = append(pts, r2.Point{
				X: cx + (random.Float64()*2-1)*jitter*dx,
				Y: cy + (random.Float64()*2-1)*jitter*dy,
			})
		}
	}
	return pts
}

// GenerateJitteredGrid3D is GenerateJitteredGrid2D's 3D counterpart.
func GenerateJitteredGrid3D(nx, ny, nz int, min, max r3.Vector, jitter float64, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	dx := (max.X - min.X) / float64(nx)
	dy := (max.Y - min.Y) / float64(ny)
	dz := (max.Z - min.Z) / float64(nz)
	pts := make([]r3.Vector, 0, nx*ny*nz)
	for i := range nx {
		for j := range ny {
			for k := range nz {
				cx := min.X + (float64(i)+0.5)*dx
				cy := min.Y + (float64(j)+0.5)*dy
				cz := min.Z + (float64(k)+0.5)*dz
				pts = append(pts, r3.Vector{
					X: cx + (random.Float64()*2-1)*jitter*dx,
					Y: cy + (random.Float64()*2-1)*jitter*dy,
					Z: cz + (random.Float64()*2-1)*jitter*dz,
				})
			}
		}
	}
	return pts
}

// GenerateBoundaryGhosts2D scatters n ghost candidates on a ring of
// radius around center, one of the simplest supply callbacks a host
// can pass to Tessellation2D.ConvergeSearchRadius.
func GenerateBoundaryGhosts2D(n int, center r2.Point, radius float64) []r2.Point {
	pts := make([]r2.Point, n)
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Point{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)}
	}
	return pts
}

// GenerateBoundaryGhosts3D scatters ghost candidates on a Fibonacci
// sphere of radius around center, the 3D counterpart of
// GenerateBoundaryGhosts2D.
func GenerateBoundaryGhosts3D(n int, center r3.Vector, radius float64) []r3.Vector {
	pts := make([]r3.Vector, n)
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	for i := range n {
		y := 1 - 2*float64(i)/float64(n-1)
		r := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		pts[i] = r3.Vector{
			X: center.X + radius*r*math.Cos(theta),
			Y: center.Y + radius*y,
			Z: center.Z + radius*r*math.Sin(theta),
		}
	}
	return pts
}

// GenerateHilbertOrdered3D generates cnt uniformly random points inside
// [min, max] and returns them sorted along a 3D Hilbert curve, the
// locality-preserving order that gives an incremental tessellator's
// point-location walk its short amortised length.
func GenerateHilbertOrdered3D(cnt int, min, max r3.Vector, seed int64) []r3.Vector {
	pts := GenerateRandomPoints3D(cnt, min, max, seed)
	const bits = 16
	const scale = (1 << bits) - 1
	keys := make([]uint64, cnt)
	for i, p := range pts {
		qx := uint32(scale * (p.X - min.X) / (max.X - min.X))
		qy := uint32(scale * (p.Y - min.Y) / (max.Y - min.Y))
		qz := uint32(scale * (p.Z - min.Z) / (max.Z - min.Z))
		keys[i] = hilbertIndex3D(bits, qx, qy, qz)
	}
	order := make([]int, cnt)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return keys[order[i]] < keys[order[j]] })
	sorted := make([]r3.Vector, cnt)
	for i, k := range order {
		sorted[i] = pts[k]
	}
	return sorted
}

// hilbertIndex3D computes the distance along a 3D Hilbert curve of
// order bits to the cell containing (x, y, z), via Skilling's
// axes-to-transpose algorithm.
func hilbertIndex3D(bits uint, x, y, z uint32) uint64 {
	X := [3]uint32{x, y, z}
	m := uint32(1) << (bits - 1)

	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := range X {
			if X[i]&q != 0 {
				X[0] ^= p
			} else {
				t := (X[0] ^ X[i]) & p
				X[0] ^= t
				X[i] ^= t
			}
		}
	}
	for i := 1; i < len(X); i++ {
		X[i] ^= X[i-1]
	}
	var t uint32
	for q := m; q > 1; q >>= 1 {
		if X[len(X)-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range X {
		X[i] ^= t
	}

	var idx uint64
	for b := int(bits) - 1; b >= 0; b-- {
		for i := range X {
			idx = (idx << 1) | uint64((X[i]>>uint(b))&1)
		}
	}
	return idx
}
