package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Toy returns the textbook curve Y^2 = X^3 + 2X + 2 over Z/17Z and its
// generator (5, 1), whose order is 19.
func Toy() (*Curve, Point) {
	c := mustNew(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	return c, NewPointInt64(5, 1)
}

// Secp256k1 returns the secp256k1 curve (a = 0, b = 7) and its generator,
// taking the parameters from the decred implementation.
//
// Only the O(log n) operations are usable at this size: Add, ScalarMultiply,
// IsOnCurve, Negate and Compress. Order, PointAt, Decompress and Points
// search the whole field and will not finish.
func Secp256k1() (*Curve, Point) {
	params := secp256k1.S256().Params()
	c := mustNew(big.NewInt(0), params.B, params.P)
	return c, NewPoint(params.Gx, params.Gy)
}

// Secp256k1Order returns the published group order of the secp256k1
// generator. It stands in for Order, which cannot search a 256-bit field.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func mustNew(a, b, p *big.Int) *Curve {
	c, err := New(a, b, p)
	if err != nil {
		panic(err)
	}
	return c
}
