package bcn

// decodeBC2Block decodes one 16-byte BC2 block: bytes 0..7 are per-pixel
// 4-bit alpha (low nibble first, raster order), bytes 8..15 are a BC1
// color block.
func decodeBC2Block(col *[16]rgba8, src []byte) {
	decodeBC1Color(col, src[8:])

	for n := 0; n < 16; n++ {
		bitI := n * 4
		byI := bitI >> 3
		av := (src[byI] >> uint(bitI&7)) & 0xF
		av = (av << 4) | av
		col[n].A = av
	}
}
