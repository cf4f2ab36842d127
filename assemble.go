package bcn

// decoderState tracks the in-flight decode cursor and output buffer.
type decoderState struct {
	buffer        []byte
	width, height int
	x, y          int
	yStep         int
	swizzle       byte
	partial       bool
}

func newDecoderState(width, height int, swizzle byte, partial bool) *decoderState {
	s := &decoderState{
		width:   width,
		height:  height,
		swizzle: swizzle,
		partial: partial,
	}
	if partial {
		s.yStep = -1
	} else {
		s.yStep = 1
	}
	return s
}

// putBlock writes one decoded 4x4 pixel block (col holding 16
// contiguous elements of elementSize bytes each, raster order) into the
// destination buffer at the current block cursor, then advances the
// cursor. Bounds are checked against the pre-flip row/column before the
// y-flip is applied, so vertically flipped partial-height images clip
// the correct row.
func (s *decoderState) putBlock(col []byte, elementSize int) {
	for j := 0; j < 4; j++ {
		srcY := s.y + j
		if s.partial && srcY >= s.height {
			continue
		}
		y := srcY
		if s.yStep < 0 {
			y = s.height - srcY - 1
		}
		dstRow := elementSize * s.width * y

		for i := 0; i < 4; i++ {
			srcX := s.x + i
			if s.partial && srcX >= s.width {
				continue
			}
			dstPtr := dstRow + elementSize*srcX
			srcPtr := elementSize * (j*4 + i)
			swizzleCopy(s.swizzle, s.buffer[dstPtr:dstPtr+elementSize], col[srcPtr:srcPtr+elementSize], elementSize)
		}
	}

	s.x += 4
	if s.x >= s.width {
		s.x = 0
		s.y += 4
	}
}

// swizzleCopy copies one element (elementSize bytes, a multiple of 4 or
// exactly 1) from src to dst, permuting its four equal-size components
// (elementSize/4 bytes each) per swizzle. 0x00 and 0xE4 are both
// identity swizzles and take a direct-copy fast path; this is the only
// path exercised for single-byte (LUM) elements, since the driver
// accepts BC4 only with LUM output.
func swizzleCopy(swizzle byte, dst, src []byte, elementSize int) {
	if swizzle == 0x00 || swizzle == 0xE4 {
		copy(dst[:elementSize], src[:elementSize])
		return
	}

	component := elementSize / 4
	place := func(destChannel int, srcOffset int) {
		start := component * destChannel
		copy(dst[start:start+component], src[srcOffset:srcOffset+component])
	}
	place(int(swizzle&3), 0*component)
	place(int((swizzle>>2)&3), 1*component)
	place(int((swizzle>>4)&3), 2*component)
	place(int((swizzle>>6)&3), 3*component)
}
