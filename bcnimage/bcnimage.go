// Package bcnimage adapts bcn.Decode's raw pixel buffers to the
// standard image.Image interface, the natural interop surface for a
// texture decoder once its consumers want to scale, flip, or re-encode
// the result with image/draw or golang.org/x/image/draw.
package bcnimage

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"

	"github.com/blockimg/bcn"
)

// RGBA wraps a bcn.Decode 4-byte-per-pixel buffer as an image.Image
// without copying it. At reads each pixel's bytes as R, G, B, A in that
// order; a BGRA, ARGB or ABGR buffer is not reordered, so its channels
// come back permuted.
type RGBA struct {
	Pix           []byte
	Width, Height int
}

// NewRGBA wraps data (as produced by bcn.Decode with an RGBA-family
// PixelFormat) into an RGBA image. data must hold 4*width*height
// bytes.
func NewRGBA(data []byte, width, height int) *RGBA {
	return &RGBA{Pix: data, Width: width, Height: height}
}

func (r *RGBA) ColorModel() color.Model { return color.RGBAModel }

func (r *RGBA) Bounds() image.Rectangle { return image.Rect(0, 0, r.Width, r.Height) }

func (r *RGBA) At(x, y int) color.Color {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return color.RGBA{}
	}
	o := 4 * (y*r.Width + x)
	return color.RGBA{R: r.Pix[o], G: r.Pix[o+1], B: r.Pix[o+2], A: r.Pix[o+3]}
}

// Gray wraps a bcn.Decode LUM (BC4) byte buffer as an image.Image.
type Gray struct {
	Pix           []byte
	Width, Height int
}

// NewGray wraps data (as produced by bcn.Decode(..., bcn.BC4, bcn.LUM))
// into a Gray image. data must hold width*height bytes.
func NewGray(data []byte, width, height int) *Gray {
	return &Gray{Pix: data, Width: width, Height: height}
}

func (g *Gray) ColorModel() color.Model { return color.GrayModel }

func (g *Gray) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

func (g *Gray) At(x, y int) color.Color {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return color.Gray{}
	}
	return color.Gray{Y: g.Pix[y*g.Width+x]}
}

// RGBFloat wraps a bcn.Decode BC6H byte buffer (16 bytes/pixel: three
// little-endian float32 channels plus 4 unused bytes) as an
// image.Image. At tone-maps each HDR pixel into 16-bit color.RGBA64 by
// clamping to [0, 1]; callers that need the unclamped float values
// should read Pix directly.
type RGBFloat struct {
	Pix           []byte
	Width, Height int
}

// NewRGBFloat wraps data (as produced by bcn.Decode(..., bcn.BC6H, ...)
// or bcn.DecodeBC6HSigned) into an RGBFloat image.
func NewRGBFloat(data []byte, width, height int) *RGBFloat {
	return &RGBFloat{Pix: data, Width: width, Height: height}
}

func (f *RGBFloat) ColorModel() color.Model { return color.RGBA64Model }

func (f *RGBFloat) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *RGBFloat) At(x, y int) color.Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return color.RGBA64{}
	}
	r, g, b := f.channelsAt(x, y)
	return color.RGBA64{
		R: clampToUint16(r),
		G: clampToUint16(g),
		B: clampToUint16(b),
		A: 0xFFFF,
	}
}

// Float32At returns the unclamped HDR channel values for pixel (x, y).
func (f *RGBFloat) Float32At(x, y int) (r, g, b float32) {
	return f.channelsAt(x, y)
}

func (f *RGBFloat) channelsAt(x, y int) (r, g, b float32) {
	o := 16 * (y*f.Width + x)
	return readFloat32(f.Pix[o:]), readFloat32(f.Pix[o+4:]), readFloat32(f.Pix[o+8:])
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func clampToUint16(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFFFF
	}
	return uint16(v * 0xFFFF)
}

// DecodeImage decodes source with bcn.Decode and wraps the result in
// the image.Image implementation best suited to its encoding: RGBA for
// BC1/BC2/BC3/BC5, Gray for BC4 (decoded to LUM), and RGBFloat for
// BC6H (decoded unsigned; use bcn.DecodeBC6HSigned directly for the
// signed variant).
func DecodeImage(source []byte, width, height int, encoding bcn.Encoding) (image.Image, error) {
	switch encoding {
	case bcn.BC4:
		data, err := bcn.Decode(source, width, height, encoding, bcn.LUM)
		if err != nil {
			return nil, err
		}
		return NewGray(data, width, height), nil
	case bcn.BC6H:
		data, err := bcn.Decode(source, width, height, encoding, bcn.RGBA)
		if err != nil {
			return nil, err
		}
		return NewRGBFloat(data, width, height), nil
	default:
		data, err := bcn.Decode(source, width, height, encoding, bcn.RGBA)
		if err != nil {
			return nil, err
		}
		return NewRGBA(data, width, height), nil
	}
}
