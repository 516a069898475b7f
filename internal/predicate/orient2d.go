// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicate

// Orient2D returns the sign of the cross product (b-a) x (c-a): Positive
// when c lies strictly left of the directed line a->b, Negative when it
// lies strictly right, Zero when a, b and c are collinear.
func Orient2D(s *Scratch, a, b, c Point2I) Sign {
	bax, bay := &s.t[0], &s.t[1]
	cax, cay := &s.t[2], &s.t[3]
	p1, p2 := &s.t[4], &s.t[5]

	bax.SetInt64(int64(b.X) - int64(a.X))
	bay.SetInt64(int64(b.Y) - int64(a.Y))
	cax.SetInt64(int64(c.X) - int64(a.X))
	cay.SetInt64(int64(c.Y) - int64(a.Y))

	p1.Mul(bax, cay)
	p2.Mul(bay, cax)
	s.sum.Sub(p1, p2)
	return signOf(&s.sum)
}

// FastOrient2D computes the same sign in double precision, returning ok
// = false when the magnitude does not clear a conservative error bound,
// in which case the caller must fall back to Orient2D.
func FastOrient2D(a, b, c [2]float64) (sign Sign, ok bool) {
	bax, bay := b[0]-a[0], b[1]-a[1]
	cax, cay := c[0]-a[0], c[1]-a[1]
	det := bax*cay - bay*cax

	bound := errorBoundFactor * (absf(bax*cay) + absf(bay*cax))
	if absf(det) <= bound {
		return Zero, false
	}
	if det > 0 {
		return Positive, true
	}
	return Negative, true
}
