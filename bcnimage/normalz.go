package bcnimage

import "math"

// BlueMode selects how SynthesizeNormalZ fills a normal map's missing
// Z (blue) channel, generalizing the blue-channel handling bc5.BlueMode
// offered for BC5-encoded normal maps to any RGBA image decoded from a
// two-channel (BC5) source.
type BlueMode int

const (
	// BlueZero always sets blue to 0.
	BlueZero BlueMode = iota
	// BlueOne always sets blue to 0xFF.
	BlueOne
	// BlueComputeNormal reconstructs Z assuming R/G are a unit tangent-
	// space normal's X/Y, each mapped from [0,255] to [-1,1].
	BlueComputeNormal
	// BlueGreyscale copies the red channel into blue.
	BlueGreyscale
)

// SynthesizeNormalZ rewrites img's blue channel in place per mode. It
// is meant to follow a bcn.Decode(..., bcn.BC5, ...) call, since BC5
// only carries red and green and leaves blue/alpha at zero.
func SynthesizeNormalZ(img *RGBA, mode BlueMode) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			o := 4 * (y*img.Width + x)
			r, g := img.Pix[o], img.Pix[o+1]
			img.Pix[o+2] = synthesizeBlue(mode, r, g)
		}
	}
}

func synthesizeBlue(mode BlueMode, r, g byte) byte {
	switch mode {
	case BlueOne:
		return 0xFF
	case BlueComputeNormal:
		nx := 2*(float64(r)/255) - 1
		ny := 2*(float64(g)/255) - 1
		nzSq := 1 - (nx*nx + ny*ny)
		if nzSq < 0 {
			nzSq = 0
		}
		nz := math.Sqrt(nzSq)
		return byte((nz/2 + 0.5) * 255)
	case BlueGreyscale:
		return r
	default:
		return 0
	}
}
