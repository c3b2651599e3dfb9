package ecies

import (
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

const sealInfo = "go-ecc ecies seal v1"

// Sealed is a byte payload encrypted with Seal.
type Sealed struct {
	Y1  curves.Point // compressed ephemeral point
	Box []byte       // ChaCha20-Poly1305 ciphertext and tag
}

// Seal encrypts plaintext for pub. The AEAD key and nonce are derived with
// HKDF-SHA256 from the shared x-coordinate, and the compressed ephemeral
// point is authenticated as additional data.
//
// The key and nonce depend only on k and pub, so k must never be reused for
// the same recipient.
func (s *Scheme) Seal(pub curves.Point, plaintext []byte, k *big.Int) (*Sealed, error) {
	y1, shared, err := s.encapsulate(pub, k)
	if err != nil {
		return nil, err
	}

	aead, nonce, err := s.deriveAEAD(shared)
	if err != nil {
		return nil, err
	}

	return &Sealed{
		Y1:  y1,
		Box: aead.Seal(nil, nonce, plaintext, s.curve.MarshalCompressed(y1)),
	}, nil
}

// Open decrypts a Sealed payload with the private scalar m. Any tampering
// with Y1 or Box fails with ecc.ErrDecrypt.
func (s *Scheme) Open(sealed *Sealed, m *big.Int) ([]byte, error) {
	if sealed == nil {
		return nil, fmt.Errorf("ecies: nil sealed payload: %w", ecc.ErrDecrypt)
	}

	shared, err := s.decapsulate(sealed.Y1, m)
	if err != nil {
		return nil, err
	}

	aead, nonce, err := s.deriveAEAD(shared)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, sealed.Box, s.curve.MarshalCompressed(sealed.Y1))
	if err != nil {
		return nil, fmt.Errorf("ecies: %v: %w", err, ecc.ErrDecrypt)
	}
	return plaintext, nil
}

func (s *Scheme) deriveAEAD(shared *big.Int) (cipher.AEAD, []byte, error) {
	kdf := hkdf.New(sha256.New, s.curve.FieldBytes(shared), nil, []byte(sealInfo))

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(kdf, nonce); err != nil {
		return nil, nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, err
	}
	return aead, nonce, nil
}
