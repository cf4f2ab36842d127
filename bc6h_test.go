package bcn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfToFloatKnownValues(t *testing.T) {
	require.InDelta(t, 1.0, halfToFloat(0x3C00), 1e-6)
	require.InDelta(t, -2.0, halfToFloat(0xC000), 1e-6)
	require.InDelta(t, 0.0, halfToFloat(0x0000), 1e-6)
	require.InDelta(t, 0.5, halfToFloat(0x3800), 1e-6)
	require.True(t, math.IsInf(float64(halfToFloat(0x7C00)), 1))
	require.True(t, math.IsInf(float64(halfToFloat(0xFC00)), -1))
}

func TestBc6SignExtend(t *testing.T) {
	v := uint16(0b11111) // 5-bit -1
	bc6SignExtend(&v, 5)
	require.EqualValues(t, uint16(0xFFFF), v)

	v2 := uint16(0b01111) // 5-bit +15, top bit clear
	bc6SignExtend(&v2, 5)
	require.EqualValues(t, uint16(15), v2)
}

func TestBc6UnquantizeUnsignedBounds(t *testing.T) {
	require.EqualValues(t, 0, bc6Unquantize(0, 10, false))
	require.EqualValues(t, 0xffff, bc6Unquantize((1<<10)-1, 10, false))
}

func TestBc6UnquantizeUnsignedMonotonic(t *testing.T) {
	prev := int32(-1)
	for v := uint16(0); v < (1 << 10); v++ {
		cur := bc6Unquantize(v, 10, false)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestBc6UnquantizeFullPrecisionIsIdentity(t *testing.T) {
	require.EqualValues(t, 1234, bc6Unquantize(1234, 16, false))
	require.EqualValues(t, -1234, bc6Unquantize(uint16(int16(-1234)), 16, true))
}

func TestBc7SubsetTwoWay(t *testing.T) {
	for partition := 0; partition < 64; partition++ {
		seenZero, seenOne := false, false
		for n := 0; n < 16; n++ {
			switch bc7Subset(2, partition, n) {
			case 0:
				seenZero = true
			case 1:
				seenOne = true
			}
		}
		require.True(t, seenZero)
		require.True(t, seenOne)
	}
}

func TestBc7AnchorsTwoAndThreeSubset(t *testing.T) {
	require.Len(t, bc7Anchors(2, 0), 1)
	require.Len(t, bc7Anchors(3, 0), 2)
	require.Nil(t, bc7Anchors(1, 0))
}

func TestBc6ParseModeTwoBitSelectors(t *testing.T) {
	// raw & 3 == 0 -> mode 0, 75 endpoint bits, ib == 3.
	mode, bit, epbits, ib, ok := bc6ParseMode([]byte{0b00000, 0, 0, 0})
	require.True(t, ok)
	require.Equal(t, 0, mode)
	require.Equal(t, 2, bit)
	require.Equal(t, 75, epbits)
	require.EqualValues(t, 3, ib)
}

func TestBc6ParseModeInvalidIsRejected(t *testing.T) {
	// raw = 0b11110 -> raw&3==2 branch, mode = 2+(raw>>2) = 2+7 = 9... use a
	// value that actually lands past 13 in the 4-bit-index branch.
	_, _, _, _, ok := bc6ParseMode([]byte{0b11111, 0, 0, 0})
	require.False(t, ok)
}

func TestDecodeBC6HBlockInvalidModeLeavesBlockUntouched(t *testing.T) {
	src := make([]byte, 16)
	src[0] = 0b11111 // reserved mode selector
	var col [16]rgbFloat32
	decodeBC6HBlock(&col, src, false)
	require.Equal(t, [16]rgbFloat32{}, col)
}
