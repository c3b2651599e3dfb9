// Package ecdh implements elliptic-curve Diffie-Hellman key agreement over
// any curve from the curves package.
package ecdh

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// KeyExchange holds the public session configuration: a curve and a base
// point. It is read-only after New and safe for concurrent use.
type KeyExchange struct {
	curve *curves.Curve
	base  curves.Point
}

// New returns a KeyExchange over curve with generator base.
func New(curve *curves.Curve, base curves.Point) (*KeyExchange, error) {
	if curve == nil {
		return nil, errors.New("ecdh: curve cannot be nil")
	}
	if !curve.IsOnCurve(base) {
		return nil, fmt.Errorf("ecdh: base %v: %w", base, ecc.ErrPointNotOnCurve)
	}
	return &KeyExchange{curve: curve, base: curve.Reduce(base)}, nil
}

// GeneratePublic returns priv * base.
func (k *KeyExchange) GeneratePublic(priv *big.Int) (curves.Point, error) {
	return k.curve.ScalarMultiply(k.base, priv)
}

// ComputeShared returns priv * peer. Both sides arrive at the same point:
// n1 * (n2 * P) = n2 * (n1 * P).
func (k *KeyExchange) ComputeShared(priv *big.Int, peer curves.Point) (curves.Point, error) {
	if !k.curve.IsOnCurve(peer) {
		return curves.Point{}, fmt.Errorf("ecdh: peer key %v: %w", peer, ecc.ErrPointNotOnCurve)
	}
	return k.curve.ScalarMultiply(peer, priv)
}
