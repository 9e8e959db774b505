package colour

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// MedianCutExtractor implements colour extraction by recursively
// splitting the pixel set along its widest colour channel. Faster than
// k-means and fully deterministic, at the cost of slightly less
// representative centroids on smooth gradients.
type MedianCutExtractor struct{}

// NewMedianCutExtractor creates a new MedianCutExtractor.
func NewMedianCutExtractor() *MedianCutExtractor {
	return &MedianCutExtractor{}
}

// colourBox is a set of pixels bounded in RGB space.
type colourBox struct {
	pixels []point3D
}

// widestChannel returns 0, 1 or 2 for the channel (R, G, B) with the
// largest value range inside the box.
func (b *colourBox) widestChannel() int {
	minC := point3D{R: 255, G: 255, B: 255}
	maxC := point3D{}
	for _, p := range b.pixels {
		if p.R < minC.R {
			minC.R = p.R
		}
		if p.R > maxC.R {
			maxC.R = p.R
		}
		if p.G < minC.G {
			minC.G = p.G
		}
		if p.G > maxC.G {
			maxC.G = p.G
		}
		if p.B < minC.B {
			minC.B = p.B
		}
		if p.B > maxC.B {
			maxC.B = p.B
		}
	}

	rangeR := maxC.R - minC.R
	rangeG := maxC.G - minC.G
	rangeB := maxC.B - minC.B

	if rangeR >= rangeG && rangeR >= rangeB {
		return 0
	}
	if rangeG >= rangeB {
		return 1
	}
	return 2
}

// split divides the box at the median of its widest channel.
func (b *colourBox) split() (*colourBox, *colourBox) {
	channel := b.widestChannel()
	sort.Slice(b.pixels, func(i, j int) bool {
		switch channel {
		case 0:
			return b.pixels[i].R < b.pixels[j].R
		case 1:
			return b.pixels[i].G < b.pixels[j].G
		default:
			return b.pixels[i].B < b.pixels[j].B
		}
	})

	mid := len(b.pixels) / 2
	return &colourBox{pixels: b.pixels[:mid]}, &colourBox{pixels: b.pixels[mid:]}
}

// average returns the mean colour of the box.
func (b *colourBox) average() point3D {
	var sum point3D
	for _, p := range b.pixels {
		sum.R += p.R
		sum.G += p.G
		sum.B += p.B
	}
	n := float64(len(b.pixels))
	return point3D{R: sum.R / n, G: sum.G / n, B: sum.B / n}
}

// Extract extracts colours from an image using median-cut quantisation.
func (e *MedianCutExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrExtraction)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: colour count must be at least 1, got %d", ErrExtraction, count)
	}
	if count > 256 {
		return nil, fmt.Errorf("%w: colour count too large: %d (maximum: 256)", ErrExtraction, count)
	}

	pixels := collectPixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: no pixels found in image", ErrExtraction)
	}

	unique, uniqueCounts := uniquePixels(pixels)
	if count >= len(unique) {
		colors := make([]color.Color, len(unique))
		for i, rgb := range unique {
			colors[i] = RGBToColor(rgb)
		}
		return NewPaletteWithCounts(colors, uniqueCounts, len(pixels)), nil
	}

	clusterInput := filterExtremes(pixels)

	boxes := []*colourBox{{pixels: append([]point3D(nil), clusterInput...)}}
	for len(boxes) < count {
		// Split the box with the most pixels; boxes too small to split
		// are skipped.
		widest := -1
		for i, box := range boxes {
			if len(box.pixels) < 2 {
				continue
			}
			if widest == -1 || len(box.pixels) > len(boxes[widest].pixels) {
				widest = i
			}
		}
		if widest == -1 {
			break
		}
		left, right := boxes[widest].split()
		boxes[widest] = left
		boxes = append(boxes, right)
	}

	centroids := make([]point3D, len(boxes))
	for i, box := range boxes {
		centroids[i] = box.average()
	}

	counts := make([]int, len(centroids))
	for _, p := range pixels {
		counts[nearestCentroid(p, centroids)]++
	}

	colors := make([]color.Color, len(centroids))
	for i, c := range centroids {
		colors[i] = color.RGBA{
			R: uint8(clamp(c.R, 0, 255)),
			G: uint8(clamp(c.G, 0, 255)),
			B: uint8(clamp(c.B, 0, 255)),
			A: 255,
		}
	}

	return NewPaletteWithCounts(colors, counts, len(pixels)), nil
}
