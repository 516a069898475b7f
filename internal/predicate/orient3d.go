// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicate

// Orient3D returns the sign of det[a-d; b-d; c-d], i.e. whether d lies on
// the positive side (Positive), negative side (Negative) or exactly on
// the plane (Zero) of the positively-wound triangle (a, b, c): reduce to
// coordinates relative to the last point, then sum three 2x2-minor
// products.
func Orient3D(s *Scratch, a, b, c, d Point3I) Sign {
	sax, say, saz := &s.t[0], &s.t[1], &s.t[2]
	sbx, sby, sbz := &s.t[3], &s.t[4], &s.t[5]
	scx, scy, scz := &s.t[6], &s.t[7], &s.t[8]

	sax.SetInt64(int64(a.X) - int64(d.X))
	say.SetInt64(int64(a.Y) - int64(d.Y))
	saz.SetInt64(int64(a.Z) - int64(d.Z))
	sbx.SetInt64(int64(b.X) - int64(d.X))
	sby.SetInt64(int64(b.Y) - int64(d.Y))
	sbz.SetInt64(int64(b.Z) - int64(d.Z))
	scx.SetInt64(int64(c.X) - int64(d.X))
	scy.SetInt64(int64(c.Y) - int64(d.Y))
	scz.SetInt64(int64(c.Z) - int64(d.Z))

	t1, t2, t3 := &s.t[9], &s.t[10], &s.t[11]
	p1, p2 := &s.t[12], &s.t[13]

	// sax * (sby*scz - sbz*scy)
	p1.Mul(sby, scz)
	p2.Mul(sbz, scy)
	t1.Sub(p1, p2)
	t1.Mul(t1, sax)

	// - say * (sbx*scz - sbz*scx)
	p1.Mul(sbx, scz)
	p2.Mul(sbz, scx)
	t2.Sub(p1, p2)
	t2.Mul(t2, say)

	// saz * (sbx*scy - sby*scx)
	p1.Mul(sbx, scy)
	p2.Mul(sby, scx)
	t3.Sub(p1, p2)
	t3.Mul(t3, saz)

	s.sum.Sub(t1, t2)
	s.sum.Add(&s.sum, t3)
	return signOf(&s.sum)
}

// FastOrient3D is the double-precision pre-check for Orient3D.
func FastOrient3D(a, b, c, d [3]float64) (sign Sign, ok bool) {
	sax, say, saz := a[0]-d[0], a[1]-d[1], a[2]-d[2]
	sbx, sby, sbz := b[0]-d[0], b[1]-d[1], b[2]-d[2]
	scx, scy, scz := c[0]-d[0], c[1]-d[1], c[2]-d[2]

	m1 := sby*scz - sbz*scy
	m2 := sbx*scz - sbz*scx
	m3 := sbx*scy - sby*scx
	det := sax*m1 - say*m2 + saz*m3

	bound := errorBoundFactor * (absf(sax*m1) + absf(say*m2) + absf(saz*m3))
	if absf(det) <= bound {
		return Zero, false
	}
	if det > 0 {
		return Positive, true
	}
	return Negative, true
}
