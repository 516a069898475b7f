// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicate

import "math/big"

// InCircle returns Negative when d lies strictly inside the circumcircle
// of the positively-oriented triangle (a, b, c), the 2D analogue of
// InSphere: the same relative-coordinate, squared-length-column
// reduction one dimension down.
func InCircle(s *Scratch, a, b, c, d Point2I) Sign {
	sax, say := &s.t[0], &s.t[1]
	sbx, sby := &s.t[2], &s.t[3]
	scx, scy := &s.t[4], &s.t[5]

	sax.SetInt64(int64(a.X) - int64(d.X))
	say.SetInt64(int64(a.Y) - int64(d.Y))
	sbx.SetInt64(int64(b.X) - int64(d.X))
	sby.SetInt64(int64(b.Y) - int64(d.Y))
	scx.SetInt64(int64(c.X) - int64(d.X))
	scy.SetInt64(int64(c.Y) - int64(d.Y))

	wa, wb, wc := &s.t[6], &s.t[7], &s.t[8]
	var x2, y2 big.Int
	x2.Mul(sax, sax)
	y2.Mul(say, say)
	wa.Add(&x2, &y2)
	x2.Mul(sbx, sbx)
	y2.Mul(sby, sby)
	wb.Add(&x2, &y2)
	x2.Mul(scx, scx)
	y2.Mul(scy, scy)
	wc.Add(&x2, &y2)

	// minors: bc = sbx*scy-scx*sby, ac = sax*scy-scx*say, ab = sax*sby-sbx*say
	bc, ac, ab := &s.t[9], &s.t[10], &s.t[11]
	var p1, p2 big.Int
	p1.Mul(sbx, scy)
	p2.Mul(scx, sby)
	bc.Sub(&p1, &p2)
	p1.Mul(sax, scy)
	p2.Mul(scx, say)
	ac.Sub(&p1, &p2)
	p1.Mul(sax, sby)
	p2.Mul(sbx, say)
	ab.Sub(&p1, &p2)

	// det3 = wa*bc - wb*ac + wc*ab, positive when d is inside for CCW a,b,c.
	var t1, t2, t3 big.Int
	t1.Mul(wa, bc)
	t2.Mul(wb, ac)
	t3.Mul(wc, ab)
	s.sum.Sub(&t1, &t2)
	s.sum.Add(&s.sum, &t3)

	s.sum.Neg(&s.sum)
	return signOf(&s.sum)
}

// FastInCircle is the double-precision pre-check for InCircle.
func FastInCircle(a, b, c, d [2]float64) (sign Sign, ok bool) {
	sax, say := a[0]-d[0], a[1]-d[1]
	sbx, sby := b[0]-d[0], b[1]-d[1]
	scx, scy := c[0]-d[0], c[1]-d[1]
	wa := sax*sax + say*say
	wb := sbx*sbx + sby*sby
	wc := scx*scx + scy*scy
	bc := sbx*scy - scx*sby
	ac := sax*scy - scx*say
	ab := sax*sby - sbx*say
	det := wa*bc - wb*ac + wc*ab

	bound := errorBoundFactor * (absf(wa*bc) + absf(wb*ac) + absf(wc*ab))
	if absf(det) <= bound {
		return Zero, false
	}
	if det > 0 {
		return Negative, true
	}
	return Positive, true
}
