// Package preview renders raw RGB24 buffers into PNG files.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const (
	ScaleNearestNeighbour = iota // nearest neighbour interpolation
	ScaleBilinear                // bilinear interpolation
)

// ScaleKind maps a config name to an interpolation type.
func ScaleKind(name string) int {
	if name == "bilinear" {
		return ScaleBilinear
	}
	return ScaleNearestNeighbour
}

// Image wraps an interleaved RGB24 buffer into an opaque RGBA image.
func Image(rgb []byte, w, h int) (*image.RGBA, error) {
	if w < 1 || h < 1 || len(rgb) != w*h*3 {
		return nil, fmt.Errorf("rgb buffer size mismatch [%v!=%vx%vx3]", len(rgb), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// Resize scales src into out with the given interpolation.
func Resize(scaleType int, src *image.RGBA, out *image.RGBA) {
	switch scaleType {
	case ScaleBilinear:
		draw.ApproxBiLinear.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	case ScaleNearestNeighbour:
		fallthrough
	default:
		draw.NearestNeighbor.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
}

// WritePNG encodes an RGB24 buffer into a PNG file.
func WritePNG(path string, rgb []byte, w, h int) error {
	return WriteScaledPNG(path, rgb, w, h, 0, 0, ScaleNearestNeighbour)
}

// WriteScaledPNG encodes an RGB24 buffer into a PNG file, downscaled
// to tw x th when both are positive.
func WriteScaledPNG(path string, rgb []byte, w, h, tw, th, scaleType int) error {
	img, err := Image(rgb, w, h)
	if err != nil {
		return err
	}
	if tw > 0 && th > 0 && (tw != w || th != h) {
		out := image.NewRGBA(image.Rect(0, 0, tw, th))
		Resize(scaleType, img, out)
		img = out
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, img)
}
