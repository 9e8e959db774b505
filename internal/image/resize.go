package image

import (
	"image"

	"golang.org/x/image/draw"
)

// DefaultMaxDimension bounds the longest side of images fed into colour
// extraction. Clustering cost grows with pixel count while palette
// quality plateaus well below this size.
const DefaultMaxDimension = 300

// Downscale resizes an image so its longest side is at most maxDim
// pixels, preserving aspect ratio. Images already within the bound are
// returned unchanged.
func Downscale(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var newW, newH int
	if w >= h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
