// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package tessellate

import (
	"math/rand"

	"github.com/2dChan/voromesh/internal/geomkernel"
	"github.com/2dChan/voromesh/internal/predicate"
	"github.com/2dChan/voromesh/internal/topology"
	"github.com/2dChan/voromesh/internal/vertexstore"
	"github.com/golang/geo/r3"
)

// Bounds3D is the host-supplied box Init inflates by 9x.
type Bounds3D struct {
	Min, Max [3]float64
}

// Engine3D is the 3D incremental tessellator; structurally the same
// ownership model as Engine2D.
type Engine3D struct {
	opts    Options
	verts   *vertexstore.Store3D
	topo    *topology.Store3D
	scratch *predicate.Scratch
	rng     *rand.Rand

	lastSimplex int
	toCheck     []int
	currentVert int
	locateSteps int

	vertexStart, vertexEnd, ghostOffset int
	consolidated                        bool
}

func NewEngine3D(bounds Bounds3D, opts Options) *Engine3D {
	e := &Engine3D{opts: opts, rng: newRand(opts.Seed)}
	e.scratch = predicate.NewScratch()
	e.initBoundingSimplex(bounds)
	return e
}

func (e *Engine3D) initBoundingSimplex(bounds Bounds3D) {
	dx := bounds.Max[0] - bounds.Min[0]
	dy := bounds.Max[1] - bounds.Min[1]
	dz := bounds.Max[2] - bounds.Min[2]
	span := dx
	if dy > span {
		span = dy
	}
	if dz > span {
		span = dz
	}
	if span <= 0 {
		span = 1
	}
	size := 9 * span
	cx := (bounds.Min[0] + bounds.Max[0]) / 2
	cy := (bounds.Min[1] + bounds.Max[1]) / 2
	cz := (bounds.Min[2] + bounds.Max[2]) / 2

	// A regular tetrahedron centered at c, "radius" size*sqrt(3).
	p0 := [3]float64{cx + size, cy + size, cz + size}
	p1 := [3]float64{cx + size, cy - size, cz - size}
	p2 := [3]float64{cx - size, cy + size, cz - size}
	p3 := [3]float64{cx - size, cy - size, cz + size}

	margin := size * 0.1
	lo := [3]float64{cx - size - margin, cy - size - margin, cz - size - margin}
	hi := [3]float64{cx + size + margin, cy + size + margin, cz + size + margin}

	e.verts = vertexstore.NewStore3D(lo, hi, e.opts.InitialVertexCap)
	e.topo = topology.NewStore3D(e.opts.InitialSimplexCap)

	v0, _ := e.verts.AddVertex(p0[0], p0[1], p0[2])
	v1, _ := e.verts.AddVertex(p1[0], p1[1], p1[2])
	v2, _ := e.verts.AddVertex(p2[0], p2[1], p2[2])
	v3, _ := e.verts.AddVertex(p3[0], p3[1], p3[2])

	// Orient so Orient3D(v0,v1,v2,v3) is positive; the regular-tetrahedron
	// construction above with this vertex order is already positively
	// oriented for a right-handed coordinate system.
	tet := e.topo.NewSimplex([4]int{v0, v1, v2, v3})

	d0 := e.topo.NewSimplex([4]int{v1, v2, v3, DummyVertex})
	d1 := e.topo.NewSimplex([4]int{v2, v3, v0, DummyVertex})
	d2 := e.topo.NewSimplex([4]int{v3, v0, v1, DummyVertex})
	d3 := e.topo.NewSimplex([4]int{v0, v1, v2, DummyVertex})

	e.topo.SwapNeighbour(tet, 0, d0, 3)
	e.topo.SwapNeighbour(tet, 1, d1, 3)
	e.topo.SwapNeighbour(tet, 2, d2, 3)
	e.topo.SwapNeighbour(tet, 3, d3, 3)

	for _, v := range [4]int{v0, v1, v2, v3} {
		e.verts.SetSimplexLink(v, tet)
	}

	e.lastSimplex = tet
	e.vertexStart = 4
	e.vertexEnd = -1
	e.ghostOffset = -1
}

func (e *Engine3D) isDummy(simplex int) bool {
	v := e.topo.Get(simplex).Vertices
	return v[0] == DummyVertex || v[1] == DummyVertex || v[2] == DummyVertex || v[3] == DummyVertex
}

func (e *Engine3D) mantissa(v int) predicate.Point3I { return e.verts.Mantissa(v) }

// orient3D is Orient3D with an optional double-precision pre-check: when
// the engine was built WithFastPath, it first tries FastOrient3D on the
// vertices' rescaled double-precision coordinates, falling back to the
// exact integer predicate only when that pre-check can't clear its
// error bound.
func (e *Engine3D) orient3D(a, b, c, d int) predicate.Sign {
	if e.opts.UseFastPath {
		if sign, ok := predicate.FastOrient3D(e.verts.Double(a), e.verts.Double(b), e.verts.Double(c), e.verts.Double(d)); ok {
			return sign
		}
	}
	return predicate.Orient3D(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c), e.mantissa(d))
}

// inSphere3D is InSphere with the same fast-path pre-check as orient3D.
func (e *Engine3D) inSphere3D(a, b, c, d, p int) predicate.Sign {
	if e.opts.UseFastPath {
		if sign, ok := predicate.FastInSphere(e.verts.Double(a), e.verts.Double(b), e.verts.Double(c), e.verts.Double(d), e.verts.Double(p)); ok {
			return sign
		}
	}
	return predicate.InSphere(e.scratch, e.mantissa(a), e.mantissa(b), e.mantissa(c), e.mantissa(d), e.mantissa(p))
}

// locate walks from e.lastSimplex to the tetrahedron containing w.
func (e *Engine3D) locate(w int) (simplex int, signs [4]predicate.Sign, err error) {
	cur := e.lastSimplex
	for steps := 0; ; steps++ {
		if steps > 10_000_000 {
			return -1, signs, preconditionf("point location did not converge (misconfigured bounding box)")
		}
		e.locateSteps++
		tet := e.topo.Get(cur)
		var negFaces []int
		zeroCount := 0
		for i := 0; i < 4; i++ {
			// face i is opposite Vertices[i]; a negative sign puts w on the
			// far side of that face from Vertices[i].
			a, b, c := faceVertices(tet.Vertices, i)
			sign := e.orient3D(a, b, c, w)
			signs[i] = sign
			switch sign {
			case predicate.Negative:
				negFaces = append(negFaces, i)
			case predicate.Zero:
				zeroCount++
			}
		}
		if len(negFaces) == 0 {
			if zeroCount >= 3 {
				return -1, signs, preconditionf("coincident or collinear input at simplex %d", cur)
			}
			e.lastSimplex = cur
			return cur, signs, nil
		}
		chosen := negFaces[0]
		if len(negFaces) > 1 {
			chosen = negFaces[e.rng.Intn(len(negFaces))]
		}
		next := tet.Neighbours[chosen]
		if next == topology.None {
			return -1, signs, preconditionf("point location walked off the mesh")
		}
		cur = next
	}
}

// faceVertices returns the three vertices of the face opposite
// Vertices[i], ordered so that Orient3D(a,b,c,Vertices[i]) is positive
// for a positively-oriented tetrahedron (i.e. so a negative sign for a
// query point means it lies outside this face).
func faceVertices(v [4]int, i int) (a, b, c int) {
	switch i {
	case 0:
		return v[1], v[3], v[2]
	case 1:
		return v[0], v[2], v[3]
	case 2:
		return v[0], v[3], v[1]
	default:
		return v[0], v[1], v[2]
	}
}

func (e *Engine3D) VertexPosition(v int) r3.Vector {
	d := e.verts.Double(v)
	return r3.Vector{X: d[0], Y: d[1], Z: d[2]}
}

func (e *Engine3D) Circumcenter(i int) r3.Vector {
	vs := e.topo.Get(i).Vertices
	return geomkernel.Circumcenter3D(e.VertexPosition(vs[0]), e.VertexPosition(vs[1]), e.VertexPosition(vs[2]), e.VertexPosition(vs[3]))
}
