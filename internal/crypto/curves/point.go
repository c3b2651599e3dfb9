package curves

import (
	"fmt"
	"math/big"
)

// Point is an element of the curve group: either a finite point (x, y) or the
// identity (point at infinity). The zero value is the identity.
//
// Points are immutable. Accessors return copies, so a Point can be shared
// freely between goroutines.
type Point struct {
	x, y   *big.Int
	finite bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// NewPoint returns the finite point (x, y). The coordinates are copied but not
// reduced; use Curve.NewPoint to reduce them modulo the field.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// NewPointInt64 is a convenience for small test and demo curves.
func NewPointInt64(x, y int64) Point {
	return Point{x: big.NewInt(x), y: big.NewInt(y), finite: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return !p.finite
}

// Coords returns copies of the affine coordinates. ok is false for the
// identity, in which case x and y are nil.
func (p Point) Coords() (x, y *big.Int, ok bool) {
	if !p.finite {
		return nil, nil, false
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y), true
}

// X returns a copy of the x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if !p.finite {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports structural equality: same coordinates, or both the identity.
func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.finite {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
