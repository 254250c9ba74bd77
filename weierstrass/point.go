package weierstrass

import "github.com/moonfruit/go-pkengine/bigint"

// point is a projective point (X : Y : Z) with coordinates in Montgomery
// form, each below 4N. The point at infinity is (0 : 1 : 0).
type point struct {
	x, y, z *bigint.Int
}

func (f *field) point() *point {
	return &point{x: f.element(), y: f.element(), z: f.element()}
}

// identity sets p to the point at infinity.
func (f *field) identity(p *point) {
	p.x.Zero()
	p.y.Set(f.c.one)
	p.z.Zero()
}

// set copies q into p.
func (p *point) set(q *point) {
	p.x.Set(q.x)
	p.y.Set(q.y)
	p.z.Set(q.z)
}

// selectPoint sets p to q1 if ctl == 1, or to q2 if ctl == 0.
func (p *point) selectPoint(q1, q2 *point, ctl bigint.Word) {
	p.x.Select(q1.x, q2.x, ctl)
	p.y.Select(q1.y, q2.y, ctl)
	p.z.Select(q1.z, q2.z, ctl)
}

func (p *point) wipe() {
	p.x.Wipe()
	p.y.Wipe()
	p.z.Wipe()
}

// adder holds the temporaries for point addition.
type adder struct {
	f                      *field
	t0, t1, t2, t3, t4, t5 *bigint.Int
	x3, y3, z3             *bigint.Int
}

func newAdder(f *field) *adder {
	return &adder{
		f:  f,
		t0: f.element(), t1: f.element(), t2: f.element(),
		t3: f.element(), t4: f.element(), t5: f.element(),
		x3: f.element(), y3: f.element(), z3: f.element(),
	}
}

// add sets r = p + q using the complete addition formulas for arbitrary a
// (Renes, Costello, Batina, "Complete addition formulas for prime order
// elliptic curves", 2016, algorithm 1). The formulas are valid for every
// pair of inputs, including p == q and either input at infinity, so the
// same routine doubles. r may alias p or q.
//
// Inputs are below 4N; so are the outputs. Bounds of intermediates are
// noted on the right.
func (s *adder) add(r, p, q *point) {
	f, c := s.f, s.f.c
	t0, t1, t2, t3, t4, t5 := s.t0, s.t1, s.t2, s.t3, s.t4, s.t5
	x3, y3, z3 := s.x3, s.y3, s.z3

	f.mul(t0, p.x, q.x)          // 2N
	f.mul(t1, p.y, q.y)          // 2N
	f.mul(t2, p.z, q.z)          // 2N
	f.add(t3, p.x, p.y)          // 8N
	f.add(t4, q.x, q.y)          // 8N
	f.mul(t3, t3, t4)            // 2N
	f.add(t4, t0, t1)            // 4N
	f.sub(t3, t3, t4, timesFour) // 6N: X1*Y2 + X2*Y1
	f.add(t4, p.x, p.z)          // 8N
	f.add(t5, q.x, q.z)          // 8N
	f.mul(t4, t4, t5)            // 2N
	f.add(t5, t0, t2)            // 4N
	f.sub(t4, t4, t5, timesFour) // 6N: X1*Z2 + X2*Z1
	f.add(t5, p.y, p.z)          // 8N
	f.add(x3, q.y, q.z)          // 8N
	f.mul(t5, t5, x3)            // 2N
	f.add(x3, t1, t2)            // 4N
	f.sub(t5, t5, x3, timesFour) // 6N: Y1*Z2 + Y2*Z1
	f.mul(z3, c.a, t4)           // 2N
	f.mul(x3, c.b3, t2)          // 2N
	f.add(z3, x3, z3)            // 4N
	f.sub(x3, t1, z3, timesFour) // 6N
	f.add(z3, t1, z3)            // 6N
	f.mul(y3, x3, z3)            // 2N
	f.add(t1, t0, t0)            // 4N
	f.add(t1, t1, t0)            // 6N
	f.mul(t2, c.a, t2)           // 2N
	f.mul(t4, c.b3, t4)          // 2N
	f.add(t1, t1, t2)            // 8N
	f.sub(t2, t0, t2, timesTwo)  // 4N
	f.mul(t2, c.a, t2)           // 2N
	f.add(t4, t4, t2)            // 4N
	f.mul(t0, t1, t4)            // 2N
	f.add(y3, y3, t0)            // 4N
	f.mul(t0, t5, t4)            // 2N
	f.mul(x3, t3, x3)            // 2N
	f.sub(x3, x3, t0, timesTwo)  // 4N
	f.mul(t0, t3, t1)            // 2N
	f.mul(z3, t5, z3)            // 2N
	f.add(z3, z3, t0)            // 4N

	r.x.Set(x3)
	r.y.Set(y3)
	r.z.Set(z3)
}

func (s *adder) wipe() {
	for _, v := range []*bigint.Int{s.t0, s.t1, s.t2, s.t3, s.t4, s.t5, s.x3, s.y3, s.z3} {
		v.Wipe()
	}
}
