// Package curves implements the group of points on a short Weierstrass curve
// Y^2 = X^3 + aX + b over Z/pZ.
//
// Arithmetic is affine and not constant time. The modulus is not checked for
// primality. Order and Points search linearly through the field and are
// only practical for small moduli.
package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/modular"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Params holds the coefficients and field modulus of a curve.
type Params struct {
	A *big.Int // linear coefficient
	B *big.Int // constant term
	P *big.Int // field modulus
}

// Curve is an immutable curve definition. All methods are safe for concurrent
// use.
type Curve struct {
	a, b, p *big.Int
}

// New returns the curve Y^2 = X^3 + aX + b over Z/pZ. It fails with
// ecc.ErrInvalidCurve when 4a^3 + 27b^2 = 0 (mod p) or p < 2.
func New(a, b, p *big.Int) (*Curve, error) {
	if a == nil || b == nil || p == nil {
		return nil, fmt.Errorf("curves: nil parameter: %w", ecc.ErrInvalidCurve)
	}
	if p.Cmp(two) < 0 {
		return nil, fmt.Errorf("curves: modulus %s must be at least 2: %w", p, ecc.ErrInvalidCurve)
	}

	c := &Curve{
		a: new(big.Int).Mod(a, p),
		b: new(big.Int).Mod(b, p),
		p: new(big.Int).Set(p),
	}
	if c.Discriminant().Sign() == 0 {
		return nil, fmt.Errorf("curves: a=%s b=%s p=%s: %w", a, b, p, ecc.ErrInvalidCurve)
	}

	return c, nil
}

// NewFromParams is New for a Params value.
func NewFromParams(params Params) (*Curve, error) {
	return New(params.A, params.B, params.P)
}

// Params returns a copy of the curve parameters.
func (c *Curve) Params() Params {
	return Params{
		A: new(big.Int).Set(c.a),
		B: new(big.Int).Set(c.b),
		P: new(big.Int).Set(c.p),
	}
}

// P returns a copy of the field modulus.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// Discriminant returns 4a^3 + 27b^2 mod p.
func (c *Curve) Discriminant() *big.Int {
	a3 := new(big.Int).Exp(c.a, three, nil)
	a3.Mul(a3, big.NewInt(4))
	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))
	d := a3.Add(a3, b2)
	return d.Mod(d, c.p)
}

// Polynomial returns x^3 + ax + b mod p.
func (c *Curve) Polynomial(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Add(r, c.a) // x^2 + a
	r.Mul(r, x)   // x^3 + ax
	r.Add(r, c.b) // x^3 + ax + b
	return r.Mod(r, c.p)
}

// NewPoint returns the finite point (x mod p, y mod p). It does not check
// membership; see IsOnCurve.
func (c *Curve) NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Mod(x, c.p),
		y:      new(big.Int).Mod(y, c.p),
		finite: true,
	}
}

// Reduce returns pt with both coordinates reduced into [0, p). Every point
// returned by a Curve method is already reduced; Reduce canonicalizes points
// built elsewhere, such as with the package-level NewPoint.
func (c *Curve) Reduce(pt Point) Point {
	if pt.IsIdentity() {
		return pt
	}
	return c.NewPoint(pt.x, pt.y)
}

// IsOnCurve reports whether y^2 = x^3 + ax + b (mod p). The identity is
// always on the curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsIdentity() {
		return true
	}
	lhs := new(big.Int).Mul(pt.y, pt.y)
	lhs.Mod(lhs, c.p)
	return lhs.Cmp(c.Polynomial(pt.x)) == 0
}

// PointAt returns the two points (x, y) and (x, p-y) whose x-coordinate is x.
// It fails with ecc.ErrNoSquareRoot when x^3 + ax + b is not a quadratic
// residue.
func (c *Curve) PointAt(x *big.Int) (Point, Point, error) {
	rx := new(big.Int).Mod(x, c.p)
	y, my, err := modular.SquareRoot(c.Polynomial(rx), c.p)
	if err != nil {
		return Point{}, Point{}, ecc.NewOpError("curves: point at", fmt.Sprintf("x=%s", rx), err)
	}
	return Point{x: rx, y: y, finite: true}, Point{x: new(big.Int).Set(rx), y: my, finite: true}, nil
}

// Negate returns -P. The identity is its own negation.
func (c *Curve) Negate(pt Point) Point {
	if pt.IsIdentity() {
		return pt
	}
	ny := new(big.Int).Neg(pt.y)
	return Point{x: new(big.Int).Mod(pt.x, c.p), y: ny.Mod(ny, c.p), finite: true}
}

// Add returns P1 + P2 under the chord-and-tangent group law.
//
// A required slope inverse that does not exist is returned as an error
// wrapping ecc.ErrNoInverse. Doubling a point with y = 0 fails this way, as
// does adding points under a modulus that is not prime.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	p1, p2 = c.Reduce(p1), c.Reduce(p2)
	if p1.IsIdentity() {
		return p2, nil
	}
	if p2.IsIdentity() {
		return p1, nil
	}

	x1, y1 := p1.x, p1.y
	x2, y2 := p2.x, p2.y

	// Vertical line, which covers P + (-P).
	if x1.Cmp(x2) == 0 && y1.Cmp(y2) != 0 {
		return Identity(), nil
	}

	var num, den *big.Int
	if x1.Cmp(x2) == 0 {
		// Tangent: (3x^2 + a) / 2y
		num = new(big.Int).Mul(x1, x1)
		num.Mul(num, three)
		num.Add(num, c.a)
		den = new(big.Int).Mul(two, y1)
	} else {
		// Chord: (y2 - y1) / (x2 - x1)
		num = new(big.Int).Sub(y2, y1)
		den = new(big.Int).Sub(x2, x1)
	}

	inv, err := modular.Inverse(den, c.p)
	if err != nil {
		log.Debugf("slope inverse failed adding %v and %v: %v", p1, p2, err)
		return Point{}, ecc.NewOpError("curves: add", fmt.Sprintf("%v + %v", p1, p2), err)
	}
	l := num.Mul(num, inv)
	l.Mod(l, c.p)

	// x3 = l^2 - x1 - x2
	x3 := new(big.Int).Mul(l, l)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.p)

	// y3 = l(x1 - x3) - y1
	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, l)
	y3.Sub(y3, y1)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, finite: true}, nil
}

// Double returns P + P.
func (c *Curve) Double(pt Point) (Point, error) {
	return c.Add(pt, pt)
}

// ScalarMultiply returns n*P by double-and-add over the bits of n, least
// significant first. n = 0 yields the identity. Negative or nil n fails with
// ecc.ErrInvalidScalar.
func (c *Curve) ScalarMultiply(pt Point, n *big.Int) (Point, error) {
	if n == nil {
		return Point{}, fmt.Errorf("curves: nil scalar: %w", ecc.ErrInvalidScalar)
	}
	if n.Sign() < 0 {
		return Point{}, fmt.Errorf("curves: negative scalar %s: %w", n, ecc.ErrInvalidScalar)
	}

	result := Identity()
	addend := pt
	bits := n.BitLen()
	for i := 0; i < bits; i++ {
		var err error
		if n.Bit(i) == 1 {
			result, err = c.Add(result, addend)
			if err != nil {
				return Point{}, err
			}
		}
		// The running base is not doubled past the top bit.
		if i+1 < bits {
			addend, err = c.Add(addend, addend)
			if err != nil {
				return Point{}, err
			}
		}
	}

	return result, nil
}

// Order returns the smallest i >= 1 with i*P = O, searching up to
// OrderBound. Each candidate is tried with a full scalar multiplication, so
// the search is O(p log p). Compute it once per base point.
func (c *Curve) Order(pt Point) (*big.Int, error) {
	return c.OrderWithin(pt, c.OrderBound())
}

// OrderWithin is Order with an explicit search bound. It fails with
// ecc.ErrOrderNotFound when i*P != O for every i in [1, bound].
func (c *Curve) OrderWithin(pt Point, bound *big.Int) (*big.Int, error) {
	log.Debugf("searching order of %v up to %s", pt, bound)

	for i := big.NewInt(1); i.Cmp(bound) <= 0; i.Add(i, one) {
		q, err := c.ScalarMultiply(pt, i)
		if err != nil {
			return nil, err
		}
		if q.IsIdentity() {
			log.Debugf("order of %v is %s", pt, i)
			return new(big.Int).Set(i), nil
		}
	}

	return nil, ecc.NewOpError("curves: order", fmt.Sprintf("%v within %s", pt, bound), ecc.ErrOrderNotFound)
}

// OrderBound returns p + 1 + 2*(floor(sqrt(p)) + 1), which is at least the
// Hasse bound p + 1 + 2*sqrt(p) on the number of points of a curve over a
// prime field. A point order can exceed p itself: the generator of Toy has
// order 19 over Z/17Z.
func (c *Curve) OrderBound() *big.Int {
	s := new(big.Int).Sqrt(c.p)
	s.Add(s, one)
	s.Mul(s, two)
	s.Add(s, c.p)
	return s.Add(s, one)
}

// Compress returns (x, y mod 2) of the reduced point, recording which square
// root y is. The identity compresses to itself.
func (c *Curve) Compress(pt Point) Point {
	if pt.IsIdentity() {
		return pt
	}
	pt = c.Reduce(pt)
	return Point{
		x:      pt.x,
		y:      big.NewInt(int64(pt.y.Bit(0))),
		finite: true,
	}
}

// Decompress recovers the full point from (x, bit) by choosing the square
// root of x^3 + ax + b whose parity matches bit. The identity decompresses to
// itself.
func (c *Curve) Decompress(pt Point) (Point, error) {
	if pt.IsIdentity() {
		return pt, nil
	}

	y, my, err := modular.SquareRoot(c.Polynomial(pt.x), c.p)
	if err != nil {
		return Point{}, ecc.NewOpError("curves: decompress", fmt.Sprintf("x=%s", pt.x), err)
	}

	x := new(big.Int).Mod(pt.x, c.p)
	if y.Bit(0) == pt.y.Bit(0) {
		return Point{x: x, y: y, finite: true}, nil
	}
	return Point{x: x, y: my, finite: true}, nil
}

// Points returns every finite point on the curve, ordered by x and then by
// the smaller root first. Points with y = 0 are not found, matching PointAt.
// This is O(p^2) and intended for exhaustive checks on toy curves.
func (c *Curve) Points() []Point {
	var pts []Point
	for x := big.NewInt(0); x.Cmp(c.p) < 0; x.Add(x, one) {
		p1, p2, err := c.PointAt(x)
		if err != nil {
			continue
		}
		pts = append(pts, p1, p2)
	}
	return pts
}
