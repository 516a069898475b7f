// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geomkernel provides the floating-point geometry helpers the
// tessellator and Voronoi builder need once a topological decision has
// already been made by the exact predicates in internal/predicate:
// circumcenters, polygon area/centroid and tetrahedron signed
// volume/centroid. None of these need to be exact: the resulting face
// geometry only needs to be consistent, not bit-exact.
package geomkernel

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Circumcenter2D returns the center of the circle through a, b and c,
// via the standard determinant form.
func Circumcenter2D(a, b, c r2.Point) r2.Point {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return a
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	return r2.Point{X: ux, Y: uy}
}

// Circumcenter3D returns the center of the sphere through a, b, c and d,
// via the 3D analogue of Circumcenter2D's determinant expansion.
func Circumcenter3D(a, b, c, d r3.Vector) r3.Vector {
	// Solve the linear system obtained by equating |x-a|^2 = |x-b|^2 etc.,
	// i.e. 2(b-a).x = |b|^2-|a|^2, for the three neighbour pairs (b,c,d)
	// relative to a, via Cramer's rule.
	sub := func(p, q r3.Vector) r3.Vector { return p.Sub(q) }
	ba := sub(b, a)
	ca := sub(c, a)
	da := sub(d, a)

	rhs := r3.Vector{
		X: ba.Dot(ba),
		Y: ca.Dot(ca),
		Z: da.Dot(da),
	}

	det := ba.Dot(ca.Cross(da))
	if det == 0 {
		return a
	}

	// x = a + (1/(2*det)) * (rhs.X*(ca x da) + rhs.Y*(da x ba) + rhs.Z*(ba x ca))
	term := ca.Cross(da).Mul(rhs.X).
		Add(da.Cross(ba).Mul(rhs.Y)).
		Add(ba.Cross(ca).Mul(rhs.Z))
	offset := term.Mul(1 / (2 * det))
	return a.Add(offset)
}

// PolygonAreaCentroid2D computes the signed area and centroid of a
// (convex, CCW-ordered) polygon given as circumcenters accumulated by
// the Voronoi edge rotation, via a fan decomposition from verts[0].
func PolygonAreaCentroid2D(verts []r2.Point) (area float64, centroid r2.Point) {
	if len(verts) < 3 {
		if len(verts) == 0 {
			return 0, r2.Point{}
		}
		return 0, verts[0]
	}
	v0 := verts[0]
	var cx, cy, totalArea float64
	for i := 1; i < len(verts)-1; i++ {
		v1, v2 := verts[i], verts[i+1]
		cross := (v1.X-v0.X)*(v2.Y-v0.Y) - (v1.Y-v0.Y)*(v2.X-v0.X)
		triArea := 0.5 * cross
		totalArea += triArea
		tcx := (v0.X + v1.X + v2.X) / 3
		tcy := (v0.Y + v1.Y + v2.Y) / 3
		cx += triArea * tcx
		cy += triArea * tcy
	}
	if totalArea == 0 {
		return 0, v0
	}
	return totalArea, r2.Point{X: cx / totalArea, Y: cy / totalArea}
}

// PolygonAreaCentroid3D is the 3D analogue: area and centroid of a planar
// face (a Voronoi polygon embedded in 3D), again by fan decomposition
// from verts[0].
func PolygonAreaCentroid3D(verts []r3.Vector) (area float64, centroid r3.Vector) {
	if len(verts) < 3 {
		if len(verts) == 0 {
			return 0, r3.Vector{}
		}
		return 0, verts[0]
	}
	v0 := verts[0]
	var moment r3.Vector
	var totalArea float64
	for i := 1; i < len(verts)-1; i++ {
		v1, v2 := verts[i], verts[i+1]
		cross := v1.Sub(v0).Cross(v2.Sub(v0))
		triArea := 0.5 * cross.Norm()
		totalArea += triArea
		tc := v0.Add(v1).Add(v2).Mul(1.0 / 3.0)
		moment = moment.Add(tc.Mul(triArea))
	}
	if totalArea == 0 {
		return 0, v0
	}
	return totalArea, moment.Mul(1 / totalArea)
}

// TetraSignedVolumeCentroid returns the signed volume and centroid of
// the tetrahedron (g, a, b, c). Used by the Voronoi builder to accumulate
// a generator's cell volume/centroid from the fan of tetrahedra spanned
// by the generator and each triangle of each incident face's fan
// decomposition.
func TetraSignedVolumeCentroid(g, a, b, c r3.Vector) (volume float64, centroid r3.Vector) {
	ga := a.Sub(g)
	gb := b.Sub(g)
	gc := c.Sub(g)
	volume = ga.Dot(gb.Cross(gc)) / 6
	centroid = g.Add(a).Add(b).Add(c).Mul(0.25)
	return volume, centroid
}

// CircumRadius2D and CircumRadius3D are used by the tessellator's
// search-radius query: plain double precision is fine there because the
// value only gates ghost-import decisions.
func CircumRadius2D(center, a r2.Point) float64 {
	return math.Hypot(center.X-a.X, center.Y-a.Y)
}

func CircumRadius3D(center, a r3.Vector) float64 {
	return center.Sub(a).Norm()
}
