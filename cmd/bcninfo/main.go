// Command bcninfo decodes a raw BCn-compressed blob and writes it out
// as a PNG, the thin inspection tool a texture decoder library offers
// alongside its programmatic API.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blockimg/bcn"
	"github.com/blockimg/bcn/bcnimage"
)

type options struct {
	Input  string  `short:"i" long:"input" description:"path to raw BCn-compressed block data" required:"true"`
	Output string  `short:"o" long:"output" description:"path to write decoded PNG" required:"true"`
	Width  int     `short:"w" long:"width" description:"image width in pixels" required:"true"`
	Height int     `short:"h" long:"height" description:"image height in pixels" required:"true"`
	Format string  `short:"f" long:"format" description:"BC1, BC2, BC3, BC4, BC5, or BC6H" required:"true"`
	Signed bool    `long:"signed" description:"decode BC6H as signed (SF16) half-float"`
	Scale  float64 `long:"scale" description:"scale the decoded image by this factor before writing (Catmull-Rom)"`
}

func parseEncoding(name string) (bcn.Encoding, error) {
	switch name {
	case "BC1":
		return bcn.BC1, nil
	case "BC2":
		return bcn.BC2, nil
	case "BC3":
		return bcn.BC3, nil
	case "BC4":
		return bcn.BC4, nil
	case "BC5":
		return bcn.BC5, nil
	case "BC6H":
		return bcn.BC6H, nil
	default:
		return 0, fmt.Errorf("unrecognized format %q", name)
	}
}

func run(opts options) error {
	encoding, err := parseEncoding(opts.Format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	var img image.Image
	if encoding == bcn.BC6H && opts.Signed {
		raw, err := bcn.DecodeBC6HSigned(data, opts.Width, opts.Height, bcn.RGBA)
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}
		img = bcnimage.NewRGBFloat(raw, opts.Width, opts.Height)
	} else {
		img, err = bcnimage.DecodeImage(data, opts.Width, opts.Height, encoding)
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.Output, err)
	}
	defer out.Close()

	// PNG has no native HDR float format; tone-map BC6H through the
	// RGBFloat image.Image implementation's clamped At().
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

	if opts.Scale > 0 && opts.Scale != 1 {
		scaled := bcnimage.Resize(rgba, int(float64(opts.Width)*opts.Scale), int(float64(opts.Height)*opts.Scale))
		return png.Encode(out, scaled)
	}

	return png.Encode(out, rgba)
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "bcninfo:", err)
		os.Exit(1)
	}
}
