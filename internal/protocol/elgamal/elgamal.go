// Package elgamal implements ElGamal encryption of curve points.
//
// Mapping a message to a point and back is the caller's responsibility, as is
// drawing a fresh ephemeral scalar for every encryption.
package elgamal

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Ciphertext is the pair (C1, C2) = (kP, M + kQ).
type Ciphertext struct {
	C1 curves.Point
	C2 curves.Point
}

// Cipher encrypts points under public keys derived from a fixed base point.
type Cipher struct {
	curve *curves.Curve
	base  curves.Point
}

// New returns a Cipher over curve with generator base.
func New(curve *curves.Curve, base curves.Point) (*Cipher, error) {
	if curve == nil {
		return nil, errors.New("elgamal: curve cannot be nil")
	}
	if !curve.IsOnCurve(base) {
		return nil, fmt.Errorf("elgamal: base %v: %w", base, ecc.ErrPointNotOnCurve)
	}
	return &Cipher{curve: curve, base: curve.Reduce(base)}, nil
}

// GeneratePublic returns n * base.
func (c *Cipher) GeneratePublic(n *big.Int) (curves.Point, error) {
	return c.curve.ScalarMultiply(c.base, n)
}

// Encrypt returns (kP, M + kQ) for the message point M, public key Q and
// ephemeral scalar k.
func (c *Cipher) Encrypt(msg, pub curves.Point, k *big.Int) (*Ciphertext, error) {
	if !c.curve.IsOnCurve(msg) {
		return nil, fmt.Errorf("elgamal: message %v: %w", msg, ecc.ErrPointNotOnCurve)
	}
	if !c.curve.IsOnCurve(pub) {
		return nil, fmt.Errorf("elgamal: public key %v: %w", pub, ecc.ErrPointNotOnCurve)
	}

	// 1. C1 = k * P
	c1, err := c.curve.ScalarMultiply(c.base, k)
	if err != nil {
		return nil, err
	}

	// 2. C2 = M + k * Q
	kq, err := c.curve.ScalarMultiply(pub, k)
	if err != nil {
		return nil, err
	}
	c2, err := c.curve.Add(msg, kq)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt returns C2 - n*C1 for the private scalar n.
func (c *Cipher) Decrypt(ct *Ciphertext, n *big.Int) (curves.Point, error) {
	if ct == nil {
		return curves.Point{}, fmt.Errorf("elgamal: nil ciphertext: %w", ecc.ErrDecrypt)
	}
	if !c.curve.IsOnCurve(ct.C1) || !c.curve.IsOnCurve(ct.C2) {
		return curves.Point{}, fmt.Errorf("elgamal: ciphertext (%v, %v): %w", ct.C1, ct.C2, ecc.ErrPointNotOnCurve)
	}

	nc1, err := c.curve.ScalarMultiply(ct.C1, n)
	if err != nil {
		return curves.Point{}, err
	}
	return c.curve.Add(ct.C2, c.curve.Negate(nc1))
}
