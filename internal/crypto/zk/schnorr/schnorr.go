package schnorr

import (
	crand "crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// Group fixes the curve, generator G and the order q of G that proofs are
// made over.
type Group struct {
	Curve *curves.Curve
	Base  curves.Point
	Order *big.Int
}

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R curves.Point // Commitment R = k * G
	S *big.Int     // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
func Prove(g *Group, x *big.Int, X curves.Point) (*Proof, error) {
	if g == nil || g.Curve == nil || g.Order == nil || x == nil {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}

	// 1. Generate random nonce k
	k, err := randInt(g.Order)
	if err != nil {
		return nil, err
	}

	return proveWithNonce(g, x, X, k)
}

func proveWithNonce(g *Group, x *big.Int, X curves.Point, k *big.Int) (*Proof, error) {
	// 2. Compute R = k * G
	R, err := g.Curve.ScalarMultiply(g.Base, k)
	if err != nil {
		return nil, err
	}

	// 3. Compute challenge e = H(X, R)
	e := challenge(g, X, R)

	// 4. Compute s = k + e * x mod q
	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, g.Order)

	return &Proof{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof) Verify(g *Group, X curves.Point) bool {
	if p == nil || p.S == nil || g == nil || g.Curve == nil || g.Order == nil {
		return false
	}

	// Check if s is in [0, q-1]
	if p.S.Sign() < 0 || p.S.Cmp(g.Order) >= 0 {
		return false
	}
	if !g.Curve.IsOnCurve(p.R) || !g.Curve.IsOnCurve(X) {
		return false
	}

	// 1. Compute challenge e = H(X, R)
	e := challenge(g, X, p.R)

	// 2. Verify s*G = R + e*X
	lhs, err := g.Curve.ScalarMultiply(g.Base, p.S)
	if err != nil {
		return false
	}

	eX, err := g.Curve.ScalarMultiply(X, e)
	if err != nil {
		return false
	}
	rhs, err := g.Curve.Add(p.R, eX)
	if err != nil {
		return false
	}

	return lhs.Equal(rhs)
}

// challenge computes H(G, X, R) mod q
func challenge(g *Group, X, R curves.Point) *big.Int {
	p := g.Curve.P()
	size := (p.BitLen() + 7) / 8

	h := sha256.New()
	for _, pt := range []curves.Point{g.Base, X, R} {
		x, y, ok := pt.Coords()
		if !ok {
			// The identity gets a tag byte no affine encoding starts with.
			h.Write([]byte{0x00})
			continue
		}
		h.Write([]byte{0x04})
		h.Write(x.Mod(x, p).FillBytes(make([]byte, size)))
		h.Write(y.Mod(y, p).FillBytes(make([]byte, size)))
	}

	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, g.Order)
}

// randInt generates a random integer in [0, max)
func randInt(max *big.Int) (*big.Int, error) {
	return crand.Int(crand.Reader, max)
}
