package curves

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

func TestMarshalCompressed(t *testing.T) {
	c, g := Toy()
	assert.Equal(t, 1, c.FieldSize())

	tests := []struct {
		pt   Point
		want []byte
	}{
		{g, []byte{0x03, 0x05}},
		{NewPointInt64(6, 3), []byte{0x03, 0x06}},
		{NewPointInt64(6, 14), []byte{0x02, 0x06}},
		{c.Compress(NewPointInt64(6, 14)), []byte{0x02, 0x06}},
		{Identity(), []byte{0x00}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.MarshalCompressed(tt.pt), "point %v", tt.pt)
	}
}

func TestUnmarshalCompressedRoundTrip(t *testing.T) {
	c, _ := Toy()
	for _, pt := range toyGroup(c) {
		got, err := c.UnmarshalCompressed(c.MarshalCompressed(pt))
		require.NoError(t, err, "point %v", pt)
		assert.True(t, got.Equal(pt), "got %v, want %v", got, pt)
	}
}

func TestUnmarshalCompressedInvalid(t *testing.T) {
	c, _ := Toy()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ecc.ErrInvalidEncoding},
		{"too long", []byte{0x02, 0x05, 0x00}, ecc.ErrInvalidEncoding},
		{"uncompressed prefix", []byte{0x04, 0x05}, ecc.ErrInvalidEncoding},
		{"x not reduced", []byte{0x02, 0x11}, ecc.ErrInvalidEncoding},
		{"x off the curve", []byte{0x02, 0x01}, ecc.ErrNoSquareRoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.UnmarshalCompressed(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBase58(t *testing.T) {
	c, g := Toy()
	assert.Equal(t, "zEL", c.EncodeBase58(g))
	assert.Equal(t, "z9w", c.EncodeBase58(NewPointInt64(6, 14)))
	assert.Equal(t, "z1", c.EncodeBase58(Identity()))

	got, err := c.DecodeBase58("zEL")
	require.NoError(t, err)
	assert.True(t, got.Equal(g))

	_, err = c.DecodeBase58("EL")
	assert.ErrorIs(t, err, ecc.ErrInvalidEncoding)
	_, err = c.DecodeBase58("z0OIl")
	assert.ErrorIs(t, err, ecc.ErrInvalidEncoding)
}

func TestMarshalCompressedSecp256k1(t *testing.T) {
	c, g := Secp256k1()
	assert.Equal(t, 32, c.FieldSize())

	for _, k := range []byte{1, 2, 3, 255} {
		pt, err := c.ScalarMultiply(g, big.NewInt(int64(k)))
		require.NoError(t, err)

		want := secp256k1.PrivKeyFromBytes([]byte{k}).PubKey().SerializeCompressed()
		assert.Equal(t, want, c.MarshalCompressed(pt), "k=%d", k)
	}
}
