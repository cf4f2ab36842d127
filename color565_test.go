package bcn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode565Primaries(t *testing.T) {
	require.Equal(t, rgba8{R: 0xFF, G: 0, B: 0, A: 0xFF}, decode565(0xF800))
	require.Equal(t, rgba8{R: 0, G: 0xFF, B: 0, A: 0xFF}, decode565(0x07E0))
	require.Equal(t, rgba8{R: 0, G: 0, B: 0xFF, A: 0xFF}, decode565(0x001F))
	require.Equal(t, rgba8{R: 0, G: 0, B: 0, A: 0xFF}, decode565(0))
	require.Equal(t, rgba8{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, decode565(0xFFFF))
}

func TestBC1PaletteOpaqueInterpolation(t *testing.T) {
	// c0 > c1 selects the 2:1/1:2 four-color ramp; both explicit
	// endpoints are opaque.
	pal := bc1Palette(0xF800, 0x001F) // red, blue; 0xF800 > 0x001F
	require.Equal(t, rgba8{R: 0xFF, A: 0xFF}, pal[0])
	require.Equal(t, rgba8{B: 0xFF, A: 0xFF}, pal[1])
	require.EqualValues(t, 0xFF, pal[2].A)
	require.EqualValues(t, 0xFF, pal[3].A)
	// 2/3 red + 1/3 blue, truncating.
	require.EqualValues(t, (2*0xFF+0)/3, pal[2].R)
	require.EqualValues(t, (0+2*0xFF)/3, pal[3].B)
}

func TestBC1PalettePunchThroughAlpha(t *testing.T) {
	// c0 <= c1 selects the average-color/transparent-black pair.
	pal := bc1Palette(0x001F, 0xF800) // blue, red; 0x001F <= 0xF800
	require.EqualValues(t, (0+0xFF)/2, pal[2].B)
	require.Equal(t, rgba8{}, pal[3])
}

func TestBC3AlphaPaletteSixStep(t *testing.T) {
	a := bc3AlphaPalette(255, 0)
	require.EqualValues(t, 255, a[0])
	require.EqualValues(t, 0, a[1])
	// a[1] is the far endpoint, so the ramp a[2..7] descends from a[0].
	prev := a[0]
	for i := 2; i < 8; i++ {
		require.Less(t, int(a[i]), int(prev))
		prev = a[i]
	}
}

func TestBC3AlphaPaletteFourStepPlusBounds(t *testing.T) {
	a := bc3AlphaPalette(0, 255)
	require.EqualValues(t, 0, a[0])
	require.EqualValues(t, 255, a[1])
	require.EqualValues(t, 0, a[6])
	require.EqualValues(t, 255, a[7])
}

func TestDecodeAlphaBlockAllZero(t *testing.T) {
	out := decodeAlphaBlock(make([]byte, 8))
	for _, v := range out {
		require.EqualValues(t, 0, v)
	}
}
