// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicate

import "math/big"

// vec3 is a transient big.Int triple used only inside InSphere/InCircle;
// unlike Scratch's pool these are not reused across calls because the
// 4x4 lifted-paraboloid expansion needs more live values than the 2x2/3x3
// orient routines do.
type vec3 struct{ x, y, z big.Int }

func newVec3Rel(p, q Point3I) *vec3 {
	v := &vec3{}
	v.x.SetInt64(int64(p.X) - int64(q.X))
	v.y.SetInt64(int64(p.Y) - int64(q.Y))
	v.z.SetInt64(int64(p.Z) - int64(q.Z))
	return v
}

func (v *vec3) squaredLength() *big.Int {
	var x2, y2, z2, out big.Int
	x2.Mul(&v.x, &v.x)
	y2.Mul(&v.y, &v.y)
	z2.Mul(&v.z, &v.z)
	out.Add(&x2, &y2)
	out.Add(&out, &z2)
	return &out
}

// det3 returns the scalar triple product p . (q x r), the 3x3 determinant
// with rows p, q, r.
func det3(p, q, r *vec3) *big.Int {
	var m1, m2, m3, a, b, out big.Int
	a.Mul(&q.y, &r.z)
	b.Mul(&q.z, &r.y)
	m1.Sub(&a, &b)
	m1.Mul(&m1, &p.x)

	a.Mul(&q.x, &r.z)
	b.Mul(&q.z, &r.x)
	m2.Sub(&a, &b)
	m2.Mul(&m2, &p.y)

	a.Mul(&q.x, &r.y)
	b.Mul(&q.y, &r.x)
	m3.Sub(&a, &b)
	m3.Mul(&m3, &p.z)

	out.Sub(&m1, &m2)
	out.Add(&out, &m3)
	return &out
}

// InSphere returns Negative when e lies strictly inside the circumsphere
// of the positively-oriented tetrahedron (a, b, c, d), Positive when
// strictly outside, Zero when e lies exactly on the sphere. This is the
// sign convention the flip zoo checks directly: a negative result marks
// the Delaunay property as violated.
//
// Derived from the standard lifted-paraboloid determinant
//
//	| a-e  |a-e|^2 |
//	| b-e  |b-e|^2 |
//	| c-e  |c-e|^2 |
//	| d-e  |d-e|^2 |
//
// expanded by cofactors along the squared-length column, with the
// intermediate 2x2 minors (ab/bc/cd/da/ac/bd) folded into the equivalent
// 3x3-triple-product cofactor form.
func InSphere(s *Scratch, a, b, c, d, e Point3I) Sign {
	sa := newVec3Rel(a, e)
	sb := newVec3Rel(b, e)
	sc := newVec3Rel(c, e)
	sd := newVec3Rel(d, e)

	wa, wb, wc, wd := sa.squaredLength(), sb.squaredLength(), sc.squaredLength(), sd.squaredLength()

	minor1 := det3(sb, sc, sd)
	minor2 := det3(sa, sc, sd)
	minor3 := det3(sa, sb, sd)
	minor4 := det3(sa, sb, sc)

	var t1, t2, t3, t4 big.Int
	t1.Mul(wa, minor1)
	t2.Mul(wb, minor2)
	t3.Mul(wc, minor3)
	t4.Mul(wd, minor4)

	// det4 = -wa*minor1 + wb*minor2 - wc*minor3 + wd*minor4
	s.sum.Neg(&t1)
	s.sum.Add(&s.sum, &t2)
	s.sum.Sub(&s.sum, &t3)
	s.sum.Add(&s.sum, &t4)

	// det4 positive means e inside for CCW a,b,c,d; flip the sign to match
	// the "inside is negative" convention.
	s.sum.Neg(&s.sum)
	return signOf(&s.sum)
}

// FastInSphere is the double-precision pre-check for InSphere.
func FastInSphere(a, b, c, d, e [3]float64) (sign Sign, ok bool) {
	sub := func(p [3]float64) [3]float64 { return [3]float64{p[0] - e[0], p[1] - e[1], p[2] - e[2]} }
	sa, sb, sc, sd := sub(a), sub(b), sub(c), sub(d)
	sq := func(v [3]float64) float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }
	det3f := func(p, q, r [3]float64) float64 {
		return p[0]*(q[1]*r[2]-q[2]*r[1]) - p[1]*(q[0]*r[2]-q[2]*r[0]) + p[2]*(q[0]*r[1]-q[1]*r[0])
	}
	wa, wb, wc, wd := sq(sa), sq(sb), sq(sc), sq(sd)
	m1, m2, m3, m4 := det3f(sb, sc, sd), det3f(sa, sc, sd), det3f(sa, sb, sd), det3f(sa, sb, sc)
	det := -wa*m1 + wb*m2 - wc*m3 + wd*m4

	bound := errorBoundFactor * (absf(wa*m1) + absf(wb*m2) + absf(wc*m3) + absf(wd*m4))
	if absf(det) <= bound {
		return Zero, false
	}
	if det < 0 {
		return Positive, true
	}
	return Negative, true
}
