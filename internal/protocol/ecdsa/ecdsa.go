// Package ecdsa implements an ECDSA-style signature scheme over any curve from
// the curves package.
//
// The scheme signs integers that the caller has already hashed and reduced
// modulo the group order q. The bundled SumHasher has no cryptographic
// strength; supply SHA256Hasher or another collision-resistant ecc.Hasher in
// any real use.
package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/modular"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Signature is the pair (r, s).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Scheme signs with keys derived from the long-term key point A. The order q
// of A is fixed at construction.
type Scheme struct {
	curve  *curves.Curve
	base   curves.Point
	q      *big.Int
	hasher ecc.Hasher
}

// New returns a Scheme over curve with key point base, computing the order of
// base by exhaustive search. A nil hasher selects SumHasher.
func New(curve *curves.Curve, base curves.Point, hasher ecc.Hasher) (*Scheme, error) {
	if curve == nil {
		return nil, errors.New("ecdsa: curve cannot be nil")
	}
	if !curve.IsOnCurve(base) {
		return nil, fmt.Errorf("ecdsa: base %v: %w", base, ecc.ErrPointNotOnCurve)
	}

	q, err := curve.Order(base)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: order of base: %w", err)
	}
	log.Debugf("ecdsa base %v has order %s", base, q)

	return newScheme(curve, base, q, hasher), nil
}

// NewWithOrder is New for a base point whose order q is already known, such
// as the generator of a standard curve where the search is infeasible. q is
// checked only by confirming q * base = O.
func NewWithOrder(curve *curves.Curve, base curves.Point, q *big.Int, hasher ecc.Hasher) (*Scheme, error) {
	if curve == nil {
		return nil, errors.New("ecdsa: curve cannot be nil")
	}
	if !curve.IsOnCurve(base) {
		return nil, fmt.Errorf("ecdsa: base %v: %w", base, ecc.ErrPointNotOnCurve)
	}
	if q == nil || q.Sign() <= 0 {
		return nil, fmt.Errorf("ecdsa: order must be positive: %w", ecc.ErrInvalidScalar)
	}

	qa, err := curve.ScalarMultiply(base, q)
	if err != nil {
		return nil, err
	}
	if !qa.IsIdentity() {
		return nil, fmt.Errorf("ecdsa: %s * %v is not the identity: %w", q, base, ecc.ErrOrderNotFound)
	}

	return newScheme(curve, base, new(big.Int).Set(q), hasher), nil
}

func newScheme(curve *curves.Curve, base curves.Point, q *big.Int, hasher ecc.Hasher) *Scheme {
	if hasher == nil {
		hasher = SumHasher
	}
	return &Scheme{curve: curve, base: curve.Reduce(base), q: q, hasher: hasher}
}

// Order returns a copy of the group order q.
func (s *Scheme) Order() *big.Int {
	return new(big.Int).Set(s.q)
}

// Hash hashes data with the scheme's hasher, reduced modulo q.
func (s *Scheme) Hash(data []byte) *big.Int {
	return s.hasher.Hash(data, s.q)
}

// GeneratePublic returns m * A.
func (s *Scheme) GeneratePublic(m *big.Int) (curves.Point, error) {
	return s.curve.ScalarMultiply(s.base, m)
}

// Sign returns (r, s) = ((kA).x mod q, k^-1 * (hash + (kA).x * m) mod q) for
// the private scalar m and nonce k. k must be invertible mod q.
func (s *Scheme) Sign(hash, m, k *big.Int) (*Signature, error) {
	if hash == nil || m == nil {
		return nil, errors.New("ecdsa: hash and private key cannot be nil")
	}

	// 1. kA = k * A
	ka, err := s.curve.ScalarMultiply(s.base, k)
	if err != nil {
		return nil, err
	}
	if ka.IsIdentity() {
		return nil, fmt.Errorf("ecdsa: nonce %s is a multiple of the order: %w", k, ecc.ErrInvalidScalar)
	}
	kx := ka.X()

	// 2. r = kA.x mod q
	r := new(big.Int).Mod(kx, s.q)

	// 3. s = k^-1 * (hash + kA.x * m) mod q
	kInv, err := modular.Inverse(k, s.q)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: nonce: %w", err)
	}
	sig := new(big.Int).Mul(kx, m)
	sig.Add(sig, hash)
	sig.Mul(sig, kInv)
	sig.Mod(sig, s.q)

	// s = 0 has no inverse and could never be validated.
	if sig.Sign() == 0 {
		return nil, fmt.Errorf("ecdsa: s is zero for nonce %s: %w", k, ecc.ErrInvalidSignature)
	}

	return &Signature{R: r, S: sig}, nil
}

// Validate reports whether sig is a valid signature of hash under pub:
// with w = s^-1, i = hash*w and j = r*w mod q, it accepts iff
// (iA + jB).x mod q = r.
//
// Any s invertible mod q is accepted, so s and s + q validate alike. A
// well-formed signature that does not match returns false with a nil error.
// A signature that cannot be checked, such as s = 0 mod q or a public key off
// the curve, returns an error.
func (s *Scheme) Validate(hash *big.Int, sig *Signature, pub curves.Point) (bool, error) {
	if hash == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false, fmt.Errorf("ecdsa: incomplete input: %w", ecc.ErrInvalidSignature)
	}
	if new(big.Int).Mod(sig.S, s.q).Sign() == 0 {
		return false, fmt.Errorf("ecdsa: s=%s is zero mod %s: %w", sig.S, s.q, ecc.ErrInvalidSignature)
	}
	if !s.curve.IsOnCurve(pub) {
		return false, fmt.Errorf("ecdsa: public key %v: %w", pub, ecc.ErrPointNotOnCurve)
	}

	w, err := modular.Inverse(sig.S, s.q)
	if err != nil {
		return false, fmt.Errorf("ecdsa: s: %w", err)
	}

	i := new(big.Int).Mul(hash, w)
	i.Mod(i, s.q)
	j := new(big.Int).Mul(sig.R, w)
	j.Mod(j, s.q)

	ia, err := s.curve.ScalarMultiply(s.base, i)
	if err != nil {
		return false, err
	}
	jb, err := s.curve.ScalarMultiply(pub, j)
	if err != nil {
		return false, err
	}
	ka, err := s.curve.Add(ia, jb)
	if err != nil {
		return false, err
	}
	if ka.IsIdentity() {
		return false, nil
	}

	return new(big.Int).Mod(ka.X(), s.q).Cmp(sig.R) == 0, nil
}
