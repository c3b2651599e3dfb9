// Package ecies implements an elliptic curve integrated encryption scheme.
//
// Encrypt and Decrypt mask an integer payload with the x-coordinate of the
// shared point kQ and send the ephemeral point kP in compressed form. Seal
// and Open derive an AEAD key from the same shared x-coordinate and encrypt
// arbitrary bytes.
//
// Decrypt and Open decompress the ephemeral point, which searches the whole
// field; they are only practical on small curves.
package ecies

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/modular"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Ciphertext is (Y1, Y2): the compressed ephemeral point and the masked
// payload.
type Ciphertext struct {
	Y1 curves.Point
	Y2 *big.Int
}

// Scheme holds the curve, the base point and the base point's order, which
// is computed once in New.
type Scheme struct {
	curve *curves.Curve
	base  curves.Point
	order *big.Int
}

// New returns a Scheme over curve with generator base. It computes the order
// of base, an O(p log p) search.
func New(curve *curves.Curve, base curves.Point) (*Scheme, error) {
	if curve == nil {
		return nil, errors.New("ecies: curve cannot be nil")
	}
	if !curve.IsOnCurve(base) {
		return nil, fmt.Errorf("ecies: base %v: %w", base, ecc.ErrPointNotOnCurve)
	}

	order, err := curve.Order(base)
	if err != nil {
		return nil, fmt.Errorf("ecies: order of base: %w", err)
	}
	log.Debugf("ecies base %v has order %s", base, order)

	return &Scheme{curve: curve, base: curve.Reduce(base), order: order}, nil
}

// Order returns a copy of the base point's order.
func (s *Scheme) Order() *big.Int {
	return new(big.Int).Set(s.order)
}

// GeneratePublic returns m * base.
func (s *Scheme) GeneratePublic(m *big.Int) (curves.Point, error) {
	return s.curve.ScalarMultiply(s.base, m)
}

// Encrypt returns (compress(kP), x * (kQ).x mod p).
func (s *Scheme) Encrypt(pub curves.Point, x, k *big.Int) (*Ciphertext, error) {
	if x == nil {
		return nil, errors.New("ecies: payload cannot be nil")
	}

	y1, shared, err := s.encapsulate(pub, k)
	if err != nil {
		return nil, err
	}

	y2 := new(big.Int).Mul(x, shared)
	y2.Mod(y2, s.curve.P())

	return &Ciphertext{Y1: y1, Y2: y2}, nil
}

// Decrypt returns Y2 * x0^-1 mod p where x0 = (m * decompress(Y1)).x.
// It fails with ecc.ErrNoInverse if x0 is not invertible.
func (s *Scheme) Decrypt(ct *Ciphertext, m *big.Int) (*big.Int, error) {
	if ct == nil || ct.Y2 == nil {
		return nil, fmt.Errorf("ecies: incomplete ciphertext: %w", ecc.ErrDecrypt)
	}

	x0, err := s.decapsulate(ct.Y1, m)
	if err != nil {
		return nil, err
	}

	p := s.curve.P()
	inv, err := modular.Inverse(x0, p)
	if err != nil {
		return nil, fmt.Errorf("ecies: shared x-coordinate: %w", err)
	}

	x := new(big.Int).Mul(ct.Y2, inv)
	return x.Mod(x, p), nil
}

// encapsulate returns the compressed ephemeral point compress(kP) and the
// x-coordinate of the shared point kQ.
func (s *Scheme) encapsulate(pub curves.Point, k *big.Int) (curves.Point, *big.Int, error) {
	if !s.curve.IsOnCurve(pub) {
		return curves.Point{}, nil, fmt.Errorf("ecies: public key %v: %w", pub, ecc.ErrPointNotOnCurve)
	}

	// 1. Y1 = compress(k * P)
	kp, err := s.curve.ScalarMultiply(s.base, k)
	if err != nil {
		return curves.Point{}, nil, err
	}
	if kp.IsIdentity() {
		return curves.Point{}, nil, fmt.Errorf("ecies: ephemeral scalar %s is a multiple of the order: %w", k, ecc.ErrInvalidScalar)
	}

	// 2. Shared point k * Q
	kq, err := s.curve.ScalarMultiply(pub, k)
	if err != nil {
		return curves.Point{}, nil, err
	}
	if kq.IsIdentity() {
		return curves.Point{}, nil, fmt.Errorf("ecies: shared point is the identity: %w", ecc.ErrInvalidScalar)
	}

	return s.curve.Compress(kp), kq.X(), nil
}

// decapsulate recovers the shared x-coordinate from compress(kP) and the
// private scalar m.
func (s *Scheme) decapsulate(y1 curves.Point, m *big.Int) (*big.Int, error) {
	t, err := s.curve.Decompress(y1)
	if err != nil {
		return nil, fmt.Errorf("ecies: ephemeral point: %w", err)
	}

	mt, err := s.curve.ScalarMultiply(t, m)
	if err != nil {
		return nil, err
	}
	if mt.IsIdentity() {
		return nil, fmt.Errorf("ecies: shared point is the identity: %w", ecc.ErrDecrypt)
	}

	return mt.X(), nil
}
