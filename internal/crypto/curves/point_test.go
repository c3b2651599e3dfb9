package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointIdentity(t *testing.T) {
	var zero Point
	assert.True(t, zero.IsIdentity())
	assert.True(t, zero.Equal(Identity()))
	assert.Nil(t, zero.X())
	assert.Nil(t, zero.Y())
	assert.Equal(t, "O", zero.String())

	_, _, ok := zero.Coords()
	assert.False(t, ok)
}

func TestPointEqual(t *testing.T) {
	p := NewPointInt64(5, 1)
	assert.True(t, p.Equal(NewPoint(big.NewInt(5), big.NewInt(1))))
	assert.False(t, p.Equal(NewPointInt64(5, 16)))
	assert.False(t, p.Equal(Identity()))
	assert.False(t, Identity().Equal(p))

	// (0, 0) is a finite point, not the identity.
	assert.False(t, NewPointInt64(0, 0).Equal(Identity()))
	assert.Equal(t, "(5, 1)", p.String())
}

func TestPointIsImmutable(t *testing.T) {
	x, y := big.NewInt(5), big.NewInt(1)
	p := NewPoint(x, y)
	x.SetInt64(6)

	px, py, ok := p.Coords()
	assert.True(t, ok)
	assert.Equal(t, int64(5), px.Int64())

	px.SetInt64(7)
	py.SetInt64(7)
	assert.Equal(t, int64(5), p.X().Int64())
	assert.Equal(t, int64(1), p.Y().Int64())
}
