package fixture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapExchangesValues(t *testing.T) {
	a, b := uint8(1), uint8(2)
	Swap(&a, &b)
	assert.Equal(t, uint8(2), a)
	assert.Equal(t, uint8(1), b)
}

func TestSwapIsInvolution(t *testing.T) {
	p := Pair[float64]{A: 1.5, B: -2.5}

	p.Swap()
	assert.Equal(t, Pair[float64]{A: -2.5, B: 1.5}, p)

	p.Swap()
	assert.Equal(t, Pair[float64]{A: 1.5, B: -2.5}, p)
}

func TestSwapSameField(t *testing.T) {
	// Aliasing both pointers to the same value must leave it unchanged.
	v := int32(42)
	Swap(&v, &v)
	assert.Equal(t, int32(42), v)
}

func TestSubUnsignedWraparound(t *testing.T) {
	assert.Equal(t, uint8(254), Sub[uint8](3, 5))
	assert.Equal(t, uint16(65526), Sub[uint16](10, 20))
	assert.Equal(t, uint32(math.MaxUint32), Sub[uint32](0, 1))
	assert.Equal(t, uint64(math.MaxUint64), Sub[uint64](0, 1))
}

func TestSubSignedWraparound(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), Sub[int8](math.MinInt8, 1))
	assert.Equal(t, int16(math.MaxInt16), Sub[int16](math.MinInt16, 1))
	assert.Equal(t, int32(math.MaxInt32), Sub[int32](math.MinInt32, 1))
	assert.Equal(t, int64(math.MaxInt64), Sub[int64](math.MinInt64, 1))
	assert.Equal(t, int8(-3), Sub[int8](2, 5))
}

func TestSubFloat(t *testing.T) {
	assert.Equal(t, float32(2.0), Sub[float32](3.0, 1.0))
	assert.Equal(t, float64(4.0), Sub[float64](1.5, -2.5))

	inf32 := float32(math.Inf(1))
	assert.True(t, math.IsNaN(float64(Sub(inf32, inf32))))
	assert.True(t, math.IsNaN(Sub(1.0, math.NaN())))
	assert.Equal(t, math.Inf(-1), Sub(1.0, math.Inf(1)))
}

func TestSubNotCommutativeUnderWraparound(t *testing.T) {
	// 5-3 and 3-5 are not negations of each other in uint8 value space.
	assert.Equal(t, uint8(2), Sub[uint8](5, 3))
	assert.Equal(t, uint8(254), Sub[uint8](3, 5))
}
