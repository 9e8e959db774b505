package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Extraction is deterministic for a given image: the k-means RNG is
// seeded with a fixed value so repeated requests report the same
// palette.
const kmeansSeed = 42

// Channel bounds for the extreme-pixel filter: pixels with every
// channel strictly inside (extremeLow, extremeHigh) survive. Filtering
// removes pure black/white artefacts (borders, flash highlights) that
// otherwise dominate clusters.
const (
	extremeLow  = 10
	extremeHigh = 245

	// minFilteredPixels guards against an all-extreme image producing
	// an empty cluster input; below this the filter is skipped.
	minFilteredPixels = 100
)

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Extract extracts colours from an image using k-means clustering.
// Cluster centroids are returned with pixel counts over the full image
// so reported percentages reflect actual occupancy.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
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

	// Cluster on filtered pixels, count occupancy over all pixels.
	clusterInput := filterExtremes(pixels)

	// If we want more colours than unique colours exist, return the
	// unique colours with their exact counts.
	unique, uniqueCounts := uniquePixels(pixels)
	if count >= len(unique) {
		colors := make([]color.Color, len(unique))
		for i, rgb := range unique {
			colors[i] = RGBToColor(rgb)
		}
		return NewPaletteWithCounts(colors, uniqueCounts, len(pixels)), nil
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	centroids := e.kmeans(clusterInput, count, rng)

	// Assign every pixel (including filtered extremes) to its nearest
	// centroid for occupancy counting.
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

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// collectPixels reads every pixel of the image as a 3D point. Callers
// are expected to downscale large images first (see the image package),
// so a full scan stays cheap.
func collectPixels(img image.Image) []point3D {
	bounds := img.Bounds()
	pixels := make([]point3D, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgb := ToRGB(img.At(x, y))
			pixels = append(pixels, point3D{
				R: float64(rgb.R),
				G: float64(rgb.G),
				B: float64(rgb.B),
			})
		}
	}
	return pixels
}

// filterExtremes drops near-black and near-white pixels when enough
// pixels survive to cluster on; otherwise all pixels are kept.
func filterExtremes(pixels []point3D) []point3D {
	filtered := make([]point3D, 0, len(pixels))
	for _, p := range pixels {
		if p.R > extremeLow && p.R < extremeHigh &&
			p.G > extremeLow && p.G < extremeHigh &&
			p.B > extremeLow && p.B < extremeHigh {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > minFilteredPixels {
		return filtered
	}
	return pixels
}

// uniquePixels returns the distinct colours of the pixel set with their
// counts, in first-seen order.
func uniquePixels(pixels []point3D) ([]RGB, []int) {
	var unique []RGB
	var counts []int
	index := make(map[RGB]int)
	for _, p := range pixels {
		rgb := RGB{R: uint8(p.R), G: uint8(p.G), B: uint8(p.B)}
		if i, ok := index[rgb]; ok {
			counts[i]++
			continue
		}
		index[rgb] = len(unique)
		unique = append(unique, rgb)
		counts = append(counts, 1)
	}
	return unique, counts
}

// kmeans performs k-means clustering on the pixel data and returns the
// final centroids.
func (e *KMeansExtractor) kmeans(points []point3D, k int, rng *rand.Rand) []point3D {
	centroids := initializeCentroidsKMeansPlusPlus(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		// Assign each point to its nearest centroid.
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k, rng)

		// Check for convergence based on centroid movement.
		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		avgMovement := totalMovement / float64(k)

		centroids = newCentroids

		if avgMovement < e.convergence {
			break
		}
	}

	return centroids
}

// initializeCentroidsKMeansPlusPlus picks initial centroids with
// probability proportional to squared distance from existing centroids.
// Better initial spread than uniform random selection.
func initializeCentroidsKMeansPlusPlus(points []point3D, k int, rng *rand.Rand) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if dist := point.distance(centroid); dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// All remaining points coincide with existing centroids;
			// perturb the last centroid slightly instead.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions based on
// assigned points. Empty clusters are reseeded from the point set.
func recalculateCentroids(points []point3D, assignments []int, k int, rng *rand.Rand) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}
