// Package schnorr proves knowledge of the private scalar behind a public
// point, for any curve and base point whose order is known.
//
// It lets a party show that a key-exchange or signature public key was
// generated from a scalar it holds, without revealing the scalar.
package schnorr
