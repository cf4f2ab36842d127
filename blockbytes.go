package bcn

import (
	"encoding/binary"
	"math"
)

// rgba8ToBytes flattens a 16-pixel RGBA8 block into its raw byte
// staging form for putBlock (4 bytes/pixel, R,G,B,A order).
func rgba8ToBytes(block *[16]rgba8) []byte {
	var buf [16 * 4]byte
	for i, p := range block {
		buf[i*4] = p.R
		buf[i*4+1] = p.G
		buf[i*4+2] = p.B
		buf[i*4+3] = p.A
	}
	return buf[:]
}

// lum8ToBytes flattens a 16-pixel luminance block (1 byte/pixel).
func lum8ToBytes(block *[16]lum8) []byte {
	var buf [16]byte
	for i, p := range block {
		buf[i] = byte(p)
	}
	return buf[:]
}

// rgbFloat32ToBytes flattens a 16-pixel BC6H block into its raw byte
// staging form (16 bytes/pixel: three little-endian float32 channels
// plus 4 unused bytes).
func rgbFloat32ToBytes(block *[16]rgbFloat32) []byte {
	var buf [16 * 16]byte
	for i, p := range block {
		o := i * 16
		binary.LittleEndian.PutUint32(buf[o:], math.Float32bits(p.R))
		binary.LittleEndian.PutUint32(buf[o+4:], math.Float32bits(p.G))
		binary.LittleEndian.PutUint32(buf[o+8:], math.Float32bits(p.B))
		binary.LittleEndian.PutUint32(buf[o+12:], math.Float32bits(p.A))
	}
	return buf[:]
}
