package curves

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToyPreset(t *testing.T) {
	c, g := Toy()
	assert.True(t, c.IsOnCurve(g))
	assert.True(t, g.Equal(NewPointInt64(5, 1)))
}

func TestSecp256k1Preset(t *testing.T) {
	c, g := Secp256k1()
	ref := secp256k1.S256()

	assert.True(t, c.IsOnCurve(g))
	assert.Equal(t, 0, c.Params().A.Sign())
	assert.Equal(t, 0, c.Params().B.Cmp(big.NewInt(7)))
	assert.Equal(t, 0, c.P().Cmp(ref.Params().P))
	assert.True(t, ref.IsOnCurve(g.X(), g.Y()))
}

func TestSecp256k1MatchesReference(t *testing.T) {
	c, g := Secp256k1()
	ref := secp256k1.S256()

	for i := 0; i < 8; i++ {
		k, err := rand.Int(rand.Reader, Secp256k1Order())
		require.NoError(t, err)

		got, err := c.ScalarMultiply(g, k)
		require.NoError(t, err)
		wantX, wantY := ref.ScalarBaseMult(k.Bytes())

		assert.Equal(t, 0, got.X().Cmp(wantX), "x of k*G for k=%x", k)
		assert.Equal(t, 0, got.Y().Cmp(wantY), "y of k*G for k=%x", k)
		assert.True(t, c.IsOnCurve(got))

		// Chord addition against the reference.
		sum, err := c.Add(got, g)
		require.NoError(t, err)
		sumX, sumY := ref.Add(wantX, wantY, g.X(), g.Y())
		assert.Equal(t, 0, sum.X().Cmp(sumX))
		assert.Equal(t, 0, sum.Y().Cmp(sumY))
	}

	doubled, err := c.Double(g)
	require.NoError(t, err)
	dx, dy := ref.Double(g.X(), g.Y())
	assert.Equal(t, 0, doubled.X().Cmp(dx))
	assert.Equal(t, 0, doubled.Y().Cmp(dy))
}

func TestSecp256k1GroupOrder(t *testing.T) {
	c, g := Secp256k1()
	n := Secp256k1Order()

	ng, err := c.ScalarMultiply(g, n)
	require.NoError(t, err)
	assert.True(t, ng.IsIdentity())

	n1 := new(big.Int).Sub(n, big.NewInt(1))
	last, err := c.ScalarMultiply(g, n1)
	require.NoError(t, err)
	assert.True(t, last.Equal(c.Negate(g)))
}
