package bcn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBC1BlockSolidColor(t *testing.T) {
	// c0 == c1 == red, all indices 0: every pixel is opaque red.
	src := []byte{0x00, 0xF8, 0x00, 0xF8, 0x00, 0x00, 0x00, 0x00}
	var col [16]rgba8
	decodeBC1Block(&col, src)
	for _, p := range col {
		require.Equal(t, rgba8{R: 0xFF, A: 0xFF}, p)
	}
}

func TestDecodeBC1BlockIndexSelection(t *testing.T) {
	// c0 (red) > c1 (blue): four-color ramp. Index LUT selects a
	// different palette entry per pixel via 2 bits each.
	src := make([]byte, 8)
	src[0], src[1] = 0x00, 0xF8 // c0 = red
	src[2], src[3] = 0x1F, 0x00 // c1 = blue
	lut := uint32(0) | 1<<2 | 2<<4 | 3<<6 // pixels 0..3 use palette entries 0,1,2,3
	src[4] = byte(lut)
	src[5] = byte(lut >> 8)
	src[6] = byte(lut >> 16)
	src[7] = byte(lut >> 24)

	var col [16]rgba8
	decodeBC1Block(&col, src)
	pal := bc1Palette(load16(src, 0), load16(src, 2))
	require.Equal(t, pal[0], col[0])
	require.Equal(t, pal[1], col[1])
	require.Equal(t, pal[2], col[2])
	require.Equal(t, pal[3], col[3])
}

func TestDecodeBC2BlockAlphaNibbles(t *testing.T) {
	src := make([]byte, 16)
	// pixel 0 alpha nibble = 0xF (-> 0xFF), pixel 1 = 0x0 (-> 0x00).
	src[0] = 0x0F
	src[8], src[9] = 0x00, 0xF8 // BC1 color half: c0 = red
	src[10], src[11] = 0x00, 0xF8
	var col [16]rgba8
	decodeBC2Block(&col, src)
	require.EqualValues(t, 0xFF, col[0].A)
	require.EqualValues(t, 0x00, col[1].A)
}

func TestDecodeBC3BlockAlphaInterpolated(t *testing.T) {
	src := make([]byte, 16)
	src[0], src[1] = 255, 0 // alpha endpoints
	src[8], src[9] = 0x00, 0xF8
	src[10], src[11] = 0x00, 0xF8
	var col [16]rgba8
	decodeBC3Block(&col, src)
	alpha := decodeAlphaBlock(src[:8])
	for i := range col {
		require.Equal(t, alpha[i], col[i].A)
	}
}
