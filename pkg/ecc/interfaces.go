package ecc

import "math/big"

// Hasher maps a message to an integer reduced modulo the group order q.
// The signature scheme depends on it but does not harden it: callers in any
// real deployment must supply a collision-resistant implementation.
type Hasher interface {
	// Hash returns H(data) mod q.
	Hash(data []byte, q *big.Int) *big.Int
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(data []byte, q *big.Int) *big.Int

// Hash calls f(data, q).
func (f HasherFunc) Hash(data []byte, q *big.Int) *big.Int {
	return f(data, q)
}
