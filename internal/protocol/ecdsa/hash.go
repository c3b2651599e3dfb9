package ecdsa

import (
	"crypto/sha256"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// SumHasher adds the byte values of data and reduces modulo q. It is a
// placeholder with no collision resistance and must not be used to sign
// anything that matters.
var SumHasher ecc.Hasher = ecc.HasherFunc(func(data []byte, q *big.Int) *big.Int {
	var h uint64
	for _, b := range data {
		h += uint64(b)
	}
	sum := new(big.Int).SetUint64(h)
	return sum.Mod(sum, q)
})

// SHA256Hasher interprets SHA-256(data) as a big-endian integer and reduces it
// modulo q.
var SHA256Hasher ecc.Hasher = ecc.HasherFunc(func(data []byte, q *big.Int) *big.Int {
	digest := sha256.Sum256(data)
	h := new(big.Int).SetBytes(digest[:])
	return h.Mod(h, q)
})
