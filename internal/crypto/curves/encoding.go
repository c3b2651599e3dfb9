package curves

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// multibasePrefix marks base58btc text, as in did:key and multibase.
const multibasePrefix = "z"

// FieldSize returns the number of bytes needed to hold an element of Z/pZ.
func (c *Curve) FieldSize() int {
	return (c.p.BitLen() + 7) / 8
}

// FieldBytes returns v mod p as a big-endian integer padded to FieldSize.
func (c *Curve) FieldBytes(v *big.Int) []byte {
	return new(big.Int).Mod(v, c.p).FillBytes(make([]byte, c.FieldSize()))
}

// MarshalCompressed encodes pt as 0x02 | (y mod 2) followed by x padded to
// FieldSize, the SEC 1 compressed form. Both full points and the (x, bit)
// form returned by Compress encode the same way. The identity encodes as a
// single zero byte.
func (c *Curve) MarshalCompressed(pt Point) []byte {
	if pt.IsIdentity() {
		return []byte{0}
	}
	pt = c.Reduce(pt)
	return append([]byte{0x02 | byte(pt.y.Bit(0))}, c.FieldBytes(pt.x)...)
}

// UnmarshalCompressed decodes the output of MarshalCompressed and
// decompresses it to a full point on the curve. Like Decompress it searches
// the whole field for a square root.
func (c *Curve) UnmarshalCompressed(data []byte) (Point, error) {
	if len(data) == 1 && data[0] == 0 {
		return Identity(), nil
	}
	if len(data) != 1+c.FieldSize() {
		return Point{}, fmt.Errorf("curves: %d bytes, want %d: %w", len(data), 1+c.FieldSize(), ecc.ErrInvalidEncoding)
	}
	if data[0] != 0x02 && data[0] != 0x03 {
		return Point{}, fmt.Errorf("curves: prefix 0x%02x: %w", data[0], ecc.ErrInvalidEncoding)
	}

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(c.p) >= 0 {
		return Point{}, fmt.Errorf("curves: x=%s not below p: %w", x, ecc.ErrInvalidEncoding)
	}
	return c.Decompress(Point{x: x, y: big.NewInt(int64(data[0] & 1)), finite: true})
}

// EncodeBase58 returns the multibase base58btc text of the compressed point,
// the form public keys take in did:key documents.
func (c *Curve) EncodeBase58(pt Point) string {
	return multibasePrefix + base58.Encode(c.MarshalCompressed(pt))
}

// DecodeBase58 parses text produced by EncodeBase58.
func (c *Curve) DecodeBase58(s string) (Point, error) {
	if !strings.HasPrefix(s, multibasePrefix) {
		return Point{}, fmt.Errorf("curves: missing multibase prefix %q: %w", multibasePrefix, ecc.ErrInvalidEncoding)
	}
	data, err := base58.Decode(s[len(multibasePrefix):])
	if err != nil {
		return Point{}, fmt.Errorf("curves: %v: %w", err, ecc.ErrInvalidEncoding)
	}
	return c.UnmarshalCompressed(data)
}
