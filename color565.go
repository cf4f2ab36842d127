package bcn

// rgba8 is a 4-byte-per-pixel element used by BC1/BC2/BC3/BC5.
type rgba8 struct {
	R, G, B, A byte
}

// decode565 expands a 16-bit RGB-565 value to 8-bit-per-channel RGBA,
// opaque.
func decode565(x uint16) rgba8 {
	r := (int(x>>8) & 0xF8) | (int(x>>13) & 0x7)
	g := (int(x>>3) & 0xFC) | (int(x>>9) & 0x3)
	b := (int(x<<3) & 0xF8) | (int(x>>2) & 0x7)
	return rgba8{R: byte(r), G: byte(g), B: byte(b), A: 0xFF}
}

// bc1Palette builds the 4-entry BC1 color palette from two packed 565
// endpoints. When c0 <= c1 the third and fourth palette entries are the
// BC1 punch-through-alpha pair (average color, transparent black).
func bc1Palette(c0, c1 uint16) [4]rgba8 {
	p0 := decode565(c0)
	p1 := decode565(c1)

	var p2, p3 rgba8
	if c0 > c1 {
		p2 = rgba8{
			R: byte((2*int(p0.R) + int(p1.R)) / 3),
			G: byte((2*int(p0.G) + int(p1.G)) / 3),
			B: byte((2*int(p0.B) + int(p1.B)) / 3),
			A: 0xFF,
		}
		p3 = rgba8{
			R: byte((int(p0.R) + 2*int(p1.R)) / 3),
			G: byte((int(p0.G) + 2*int(p1.G)) / 3),
			B: byte((int(p0.B) + 2*int(p1.B)) / 3),
			A: 0xFF,
		}
	} else {
		p2 = rgba8{
			R: byte((int(p0.R) + int(p1.R)) / 2),
			G: byte((int(p0.G) + int(p1.G)) / 2),
			B: byte((int(p0.B) + int(p1.B)) / 2),
			A: 0xFF,
		}
		// p3 is transparent black, the zero value.
	}
	return [4]rgba8{p0, p1, p2, p3}
}

// bc3AlphaPalette builds the 8-entry BC3-style alpha palette from two
// 8-bit endpoints.
func bc3AlphaPalette(a0, a1 byte) [8]byte {
	var a [8]byte
	a[0], a[1] = a0, a1
	x0, x1 := int(a0), int(a1)
	if a0 > a1 {
		a[2] = byte((6*x0 + 1*x1) / 7)
		a[3] = byte((5*x0 + 2*x1) / 7)
		a[4] = byte((4*x0 + 3*x1) / 7)
		a[5] = byte((3*x0 + 4*x1) / 7)
		a[6] = byte((2*x0 + 5*x1) / 7)
		a[7] = byte((1*x0 + 6*x1) / 7)
	} else {
		a[2] = byte((4*x0 + 1*x1) / 5)
		a[3] = byte((3*x0 + 2*x1) / 5)
		a[4] = byte((2*x0 + 3*x1) / 5)
		a[5] = byte((1*x0 + 4*x1) / 5)
		a[6] = 0
		a[7] = 255
	}
	return a
}

// decodeAlphaBlock decodes an 8-byte BC3/BC4-style alpha block into 16
// alpha values in raster order.
func decodeAlphaBlock(src []byte) [16]byte {
	pal := bc3AlphaPalette(src[0], src[1])
	lut0 := uint32(src[2]) | uint32(src[3])<<8 | uint32(src[4])<<16
	lut1 := uint32(src[5]) | uint32(src[6])<<8 | uint32(src[7])<<16

	var out [16]byte
	for n := 0; n < 8; n++ {
		out[n] = pal[(lut0>>uint(3*n))&7]
	}
	for n := 0; n < 8; n++ {
		out[8+n] = pal[(lut1>>uint(3*n))&7]
	}
	return out
}
