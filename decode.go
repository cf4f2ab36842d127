package bcn

import "fmt"

// blockBytesFor returns the compressed block size in bytes for an
// encoding: 8 for BC1/BC4 (one 64-bit color or alpha block), 16 for
// BC2/BC3/BC5/BC6H (two halves, or one double-wide BC6H block).
func blockBytesFor(e Encoding) int {
	switch e {
	case BC1, BC4:
		return 8
	default:
		return 16
	}
}

// destSizeFor returns the output buffer size in bytes for width x
// height pixels decoded from e: 4 bytes/pixel normally, 1 for BC4's LUM
// output, 16 for BC6H's float triples.
func destSizeFor(width, height int, e Encoding) int {
	size := 4 * width * height
	switch e {
	case BC4:
		size >>= 2
	case BC6H:
		size <<= 2
	}
	return size
}

// swizzleFor resolves the byte-permutation code applied by the
// assembler for the requested output format.
func swizzleFor(format PixelFormat, encoding Encoding) (byte, error) {
	if encoding == BC4 && format != LUM {
		return 0, &Error{Kind: ErrInvalidPixelFormat, Msg: "BC4 encoding requires LUM output"}
	}
	switch format {
	case RGBA:
		return 0xE4, nil
	case BGRA:
		return 0xC6, nil
	case ARGB:
		return 0x93, nil
	case ABGR:
		return 0x1B, nil
	case LUM:
		if encoding != BC4 {
			return 0, &Error{Kind: ErrInvalidPixelFormat, Msg: "LUM output requires BC4 encoding"}
		}
		return 0x00, nil
	}
	return 0, &Error{Kind: ErrInvalidPixelFormat, Msg: fmt.Sprintf("unrecognized pixel format %d", int(format))}
}

// Decode decompresses source (BCn block data for a width x height
// image) into a row-major pixel buffer in the channel order named by
// format. BC6H is decoded as unsigned (UF16) half-float; use
// DecodeBC6HSigned for the signed variant.
//
// The returned buffer is sized per destSizeFor: 4*width*height bytes
// normally, width*height for BC4 decoded to LUM, and 16*width*height
// for BC6H. Truncated source data stops the decode early without error
// once the last full block along the tail row has been written;
// pixels beyond that remain zero.
func Decode(source []byte, width, height int, encoding Encoding, format PixelFormat) ([]byte, error) {
	return decode(source, width, height, encoding, format, false)
}

// DecodeBC6HSigned decodes BC6H data using signed (SF16) half-float
// endpoints instead of Decode's unsigned default.
func DecodeBC6HSigned(source []byte, width, height int, format PixelFormat) ([]byte, error) {
	return decode(source, width, height, BC6H, format, true)
}

func decode(source []byte, width, height int, encoding Encoding, format PixelFormat, sign bool) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, &Error{Kind: ErrInvalidImageSize, Msg: "width and height must be positive"}
	}

	switch encoding {
	case BC1, BC2, BC3, BC4, BC5, BC6H:
	default:
		return nil, &Error{Kind: ErrFeatureNotImplemented, Msg: fmt.Sprintf("encoding %d is not implemented", int(encoding))}
	}

	swizzle, err := swizzleFor(format, encoding)
	if err != nil {
		return nil, err
	}

	partial := (width&3)|(height&3) != 0
	state := newDecoderState(width, height, swizzle, partial)
	state.buffer = make([]byte, destSizeFor(width, height, encoding))

	runDecodeLoop(state, source, encoding, sign)

	return state.buffer, nil
}

// runDecodeLoop consumes source one compressed block at a time,
// dispatching to the per-variant decoder and handing the result to the
// assembler, until either source is exhausted or the cursor has
// advanced past the image's last row.
func runDecodeLoop(state *decoderState, source []byte, encoding Encoding, sign bool) {
	blockSize := blockBytesFor(encoding)
	pos := 0
	remaining := len(source)

	for remaining >= blockSize {
		if state.y >= state.height {
			break
		}

		switch encoding {
		case BC1:
			var block [16]rgba8
			decodeBC1Block(&block, source[pos:])
			state.putBlock(rgba8ToBytes(&block), 4)
		case BC2:
			var block [16]rgba8
			decodeBC2Block(&block, source[pos:])
			state.putBlock(rgba8ToBytes(&block), 4)
		case BC3:
			var block [16]rgba8
			decodeBC3Block(&block, source[pos:])
			state.putBlock(rgba8ToBytes(&block), 4)
		case BC4:
			var block [16]lum8
			decodeBC4Block(&block, source[pos:])
			state.putBlock(lum8ToBytes(&block), 1)
		case BC5:
			var block [16]rgba8
			decodeBC5Block(&block, source[pos:])
			state.putBlock(rgba8ToBytes(&block), 4)
		case BC6H:
			var block [16]rgbFloat32
			decodeBC6HBlock(&block, source[pos:], sign)
			state.putBlock(rgbFloat32ToBytes(&block), 16)
		}

		pos += blockSize
		remaining -= blockSize
	}
}
