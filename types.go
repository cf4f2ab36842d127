package bcn

// Encoding identifies the BCn/DXTn block compression format of the
// source data passed to Decode.
type Encoding int

const (
	BC1 Encoding = iota + 1
	BC2
	BC3
	BC4
	BC5
	BC6H
)

func (e Encoding) String() string {
	switch e {
	case BC1:
		return "BC1"
	case BC2:
		return "BC2"
	case BC3:
		return "BC3"
	case BC4:
		return "BC4"
	case BC5:
		return "BC5"
	case BC6H:
		return "BC6H"
	default:
		return "unknown"
	}
}

// PixelFormat selects the channel order of Decode's output buffer. LUM
// is only valid alongside BC4, where it yields one byte per pixel
// instead of four.
type PixelFormat int

const (
	RGBA PixelFormat = iota + 1
	BGRA
	ARGB
	ABGR
	LUM
)

func (f PixelFormat) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	case ARGB:
		return "ARGB"
	case ABGR:
		return "ABGR"
	case LUM:
		return "LUM"
	default:
		return "unknown"
	}
}
