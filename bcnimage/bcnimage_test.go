package bcnimage

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockimg/bcn"
)

func TestRGBAAt(t *testing.T) {
	img := NewRGBA([]byte{10, 20, 30, 40, 50, 60, 70, 80}, 2, 1)
	require.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 40}, img.At(0, 0))
	require.Equal(t, color.RGBA{R: 50, G: 60, B: 70, A: 80}, img.At(1, 0))
	require.Equal(t, color.RGBA{}, img.At(2, 0))
}

func TestGrayAt(t *testing.T) {
	img := NewGray([]byte{1, 2, 3, 4}, 2, 2)
	require.Equal(t, color.Gray{Y: 3}, img.At(0, 1))
}

func TestDecodeImageBC1YieldsRGBA(t *testing.T) {
	src := []byte{0x00, 0xF8, 0x00, 0xF8, 0x00, 0x00, 0x00, 0x00}
	img, err := DecodeImage(src, 4, 4, bcn.BC1)
	require.NoError(t, err)
	rgba, ok := img.(*RGBA)
	require.True(t, ok)
	require.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, rgba.At(0, 0))
}

func TestDecodeImageBC4YieldsGray(t *testing.T) {
	src := make([]byte, 8)
	src[0], src[1] = 255, 255
	img, err := DecodeImage(src, 4, 4, bcn.BC4)
	require.NoError(t, err)
	_, ok := img.(*Gray)
	require.True(t, ok)
}

func TestSynthesizeNormalZComputeNormal(t *testing.T) {
	img := NewRGBA([]byte{127, 127, 0, 0}, 1, 1)
	SynthesizeNormalZ(img, BlueComputeNormal)
	// r=g=127 maps close to (0,0) tangent space, so z should end up
	// near full scale (~255).
	require.Greater(t, int(img.Pix[2]), 200)
}

func TestSynthesizeNormalZZero(t *testing.T) {
	img := NewRGBA([]byte{200, 200, 99, 0}, 1, 1)
	SynthesizeNormalZ(img, BlueZero)
	require.EqualValues(t, 0, img.Pix[2])
}
