// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voromesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/2dChan/voromesh/internal/geomkernel"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

// SelfCheck compares the sum of every cell's volume against the area
// of the convex hull of the generator points, as an external sanity
// check of volume conservation. The cells are not clipped to the hull,
// so the sum also counts the parts of the outer cells that lie beyond
// it, and that excess grows with the ghosts' distance from the hull;
// tol is the relative difference allowed between the two.
func (m *Mesh2D) SelfCheck(points []r2.Point, tol float64) error {
	var total float64
	for _, v := range m.d.CellVolume {
		total += v
	}
	hull := convexHull2D(points)
	if len(hull) < 3 {
		return fmt.Errorf("voromesh: SelfCheck: convex hull has %d vertices, want >= 3", len(hull))
	}
	var hullArea float64
	for i := 1; i < len(hull)-1; i++ {
		hullArea += triangleArea2D(hull[0], hull[i], hull[i+1])
	}
	if diff := math.Abs(total - hullArea); diff > tol*hullArea {
		return fmt.Errorf("voromesh: SelfCheck: cell volumes sum to %v, convex hull area is %v (relative diff %v > tol %v)", total, hullArea, diff/hullArea, tol)
	}
	return nil
}

// SelfCheck is Mesh2D.SelfCheck's 3D counterpart, built on
// github.com/markus-wa/quickhull-go/v2.
func (m *Mesh3D) SelfCheck(points []r3.Vector, tol float64) error {
	var total float64
	for _, v := range m.d.CellVolume {
		total += v
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(points, true, true, 1e-12)
	if len(ch.Indices)%3 != 0 {
		return fmt.Errorf("voromesh: SelfCheck: inconsistent number of indices returned from QuickHull")
	}
	var ref r3.Vector
	for _, p := range points {
		ref = ref.Add(p)
	}
	ref = ref.Mul(1 / float64(len(points)))
	var hullVolume float64
	for i := 0; i < len(ch.Indices); i += 3 {
		a := points[ch.Indices[i]]
		b := points[ch.Indices[i+1]]
		c := points[ch.Indices[i+2]]
		vol, _ := geomkernel.TetraSignedVolumeCentroid(ref, a, b, c)
		hullVolume += vol
	}
	hullVolume = math.Abs(hullVolume)
	if diff := math.Abs(total - hullVolume); diff > tol*hullVolume {
		return fmt.Errorf("voromesh: SelfCheck: cell volumes sum to %v, convex hull volume is %v (relative diff %v > tol %v)", total, hullVolume, diff/hullVolume, tol)
	}
	return nil
}

func triangleArea2D(a, b, c r2.Point) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) / 2
}

// convexHull2D is Andrew's monotone chain, the standard library's
// sort.Slice substituting for the 2D hull library the pack does not
// carry (quickhull-go's ConvexHull only accepts r3.Vector).
func convexHull2D(points []r2.Point) []r2.Point {
	pts := append([]r2.Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	cross := func(o, a, b r2.Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}
	var lower, upper []r2.Point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
