package benchmark

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/modular"
	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecc/internal/protocol/ecdsa"
	"github.com/smallyu/go-ecc/internal/protocol/ecies"
)

// scalar is a fixed 256-bit scalar below the secp256k1 group order.
var scalar, _ = new(big.Int).SetString("c0ffee254729296a45a3885639ac7e10f9d54979d5c1d6f1e0b0d5e2a3b4c5d6", 16)

func BenchmarkScalarMultiply(b *testing.B) {
	toy, toyG := curves.Toy()
	secp, secpG := curves.Secp256k1()

	cases := []struct {
		name  string
		curve *curves.Curve
		base  curves.Point
		n     *big.Int
	}{
		{"Toy", toy, toyG, big.NewInt(18)},
		{"Secp256k1", secp, secpG, scalar},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tc.curve.ScalarMultiply(tc.base, tc.n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkOrder(b *testing.B) {
	toy, g := curves.Toy()
	composite, err := curves.New(big.NewInt(1), big.NewInt(1), big.NewInt(23))
	if err != nil {
		b.Fatal(err)
	}

	cases := []struct {
		name  string
		curve *curves.Curve
		base  curves.Point
	}{
		{"Toy", toy, g},
		{"P23", composite, curves.NewPointInt64(0, 1)},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tc.curve.Order(tc.base); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSquareRoot(b *testing.B) {
	for _, p := range []int64{17, 1009, 65537} {
		b.Run(fmt.Sprintf("p=%d", p), func(b *testing.B) {
			pp := big.NewInt(p)
			// p-1 is a square for p = 1 mod 4.
			n := new(big.Int).Sub(pp, big.NewInt(1))
			for i := 0; i < b.N; i++ {
				if _, _, err := modular.SquareRoot(n, pp); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSignValidate(b *testing.B) {
	curve, g := curves.Secp256k1()
	s, err := ecdsa.NewWithOrder(curve, g, curves.Secp256k1Order(), ecdsa.SHA256Hasher)
	if err != nil {
		b.Fatal(err)
	}
	pub, err := s.GeneratePublic(scalar)
	if err != nil {
		b.Fatal(err)
	}
	hash := s.Hash([]byte("benchmark"))
	nonce := big.NewInt(0x5eed)

	b.Run("Sign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := s.Sign(hash, scalar, nonce); err != nil {
				b.Fatal(err)
			}
		}
	})

	sig, err := s.Sign(hash, scalar, nonce)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("Validate", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if ok, err := s.Validate(hash, sig, pub); err != nil || !ok {
				b.Fatalf("validate: ok=%v err=%v", ok, err)
			}
		}
	})
}

func BenchmarkSealOpen(b *testing.B) {
	s, err := ecies.New(curves.Toy())
	if err != nil {
		b.Fatal(err)
	}
	priv := big.NewInt(7)
	pub, err := s.GeneratePublic(priv)
	if err != nil {
		b.Fatal(err)
	}
	payload := make([]byte, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sealed, err := s.Seal(pub, payload, big.NewInt(4))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := s.Open(sealed, priv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSchnorrProof(b *testing.B) {
	curve, g := curves.Secp256k1()
	group := &schnorr.Group{Curve: curve, Base: g, Order: curves.Secp256k1Order()}
	pub, err := curve.ScalarMultiply(g, scalar)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		proof, err := schnorr.Prove(group, scalar, pub)
		if err != nil {
			b.Fatal(err)
		}
		if !proof.Verify(group, pub) {
			b.Fatal("proof did not verify")
		}
	}
}
