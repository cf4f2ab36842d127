package bcn

// decodeBC1Color decodes an 8-byte BC1 color block (two 565 endpoints and
// a 32-bit 2-bit-per-pixel LUT) into 16 RGBA8 pixels in raster order.
// BC2 and BC3 reuse this for their color half.
func decodeBC1Color(col *[16]rgba8, src []byte) {
	c0 := load16(src, 0)
	c1 := load16(src, 2)
	lut := load32(src, 4)
	pal := bc1Palette(c0, c1)

	for n := 0; n < 16; n++ {
		idx := (lut >> uint(2*n)) & 3
		col[n] = pal[idx]
	}
}

// decodeBC1Block decodes one 8-byte BC1 block.
func decodeBC1Block(col *[16]rgba8, src []byte) {
	decodeBC1Color(col, src)
}
