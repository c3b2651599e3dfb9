// Package modular provides the integer arithmetic the curve layer is built
// on: greatest common divisor, Bezout coefficients, modular inverses and
// modular square roots.
//
// The functions are stateless and safe for concurrent use. SquareRoot is an
// exhaustive O(p) search and is only practical for small fields.
package modular

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var one = big.NewInt(1)

// GCD returns the non-negative greatest common divisor of a and b using the
// iterative Euclidean algorithm.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	r := new(big.Int)
	for y.Sign() != 0 {
		r.Mod(x, y)
		x, y, r = y, r, x
	}
	return x
}

// ExtendedGCD returns d, x, y such that a*x + b*y = d = gcd(a, b).
// For b = 0 it returns (a, 1, 0). The loop runs while b is positive, so a
// negative a against a positive modulus is handled by floor division.
func ExtendedGCD(a, b *big.Int) (d, x, y *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}

	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)
	x2, x1 := big.NewInt(1), big.NewInt(0)
	y2, y1 := big.NewInt(0), big.NewInt(1)

	for b.Sign() > 0 {
		// q = floor(a / b), r = a - q*b
		q, r := new(big.Int).DivMod(a, b, new(big.Int))

		nx := new(big.Int).Mul(q, x1)
		nx.Sub(x2, nx)
		ny := new(big.Int).Mul(q, y1)
		ny.Sub(y2, ny)

		a, b = b, r
		x2, x1 = x1, nx
		y2, y1 = y1, ny
	}

	return a, x2, y2
}

// Inverse returns a^-1 mod m in [0, m). It fails with ecc.ErrNoInverse when
// gcd(a, m) != 1 or m is not positive; it never returns a substitute value.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, fmt.Errorf("modular: nil operand: %w", ecc.ErrNoInverse)
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("modular: modulus %s is not positive: %w", m, ecc.ErrNoInverse)
	}

	d, x, _ := ExtendedGCD(a, m)
	if d.Cmp(one) != 0 {
		log.Tracef("no inverse of %s mod %s, gcd is %s", a, m, d)
		return nil, fmt.Errorf("modular: %s mod %s (gcd %s): %w", a, m, d, ecc.ErrNoInverse)
	}

	return x.Mod(x, m), nil
}

// SquareRoot returns both roots (r, p-r) of r^2 = n (mod p), where r is the
// smallest value in [1, p-1] satisfying the congruence. It fails with
// ecc.ErrNoSquareRoot when n is a non-residue, which includes n = 0 since
// the search never visits r = 0.
//
// This is a linear search over the whole residue range. It is the scaling
// bottleneck of the curve layer and is only usable for small moduli.
func SquareRoot(n, p *big.Int) (*big.Int, *big.Int, error) {
	if n == nil || p == nil {
		return nil, nil, fmt.Errorf("modular: nil operand: %w", ecc.ErrNoSquareRoot)
	}
	if p.Cmp(one) <= 0 {
		return nil, nil, fmt.Errorf("modular: modulus %s too small: %w", p, ecc.ErrNoSquareRoot)
	}

	target := new(big.Int).Mod(n, p)
	sq := new(big.Int)
	for i := big.NewInt(1); i.Cmp(p) < 0; i.Add(i, one) {
		sq.Mul(i, i)
		sq.Mod(sq, p)
		if sq.Cmp(target) == 0 {
			return new(big.Int).Set(i), new(big.Int).Sub(p, i), nil
		}
	}

	return nil, nil, fmt.Errorf("modular: %s has no square root mod %s: %w", n, p, ecc.ErrNoSquareRoot)
}

// IsQuadraticResidue reports whether SquareRoot would succeed for n mod p.
func IsQuadraticResidue(n, p *big.Int) bool {
	_, _, err := SquareRoot(n, p)
	return err == nil
}
