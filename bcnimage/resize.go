package bcnimage

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales src to width x height using a high-quality
// Catmull-Rom filter, returning a new *image.RGBA. It is meant for
// downsampling mip-adjacent previews of a decoded texture; for
// pixel-exact inspection, read src directly instead.
func Resize(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
