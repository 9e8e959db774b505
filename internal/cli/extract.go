package cli

import (
	"context"
	"fmt"
	goimage "image"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/huecraft/huecraft/internal/colour"
	"github.com/huecraft/huecraft/internal/image"
	"github.com/huecraft/huecraft/internal/security"
	"github.com/huecraft/huecraft/internal/util/imagecache"
)

var (
	// Extract command flags
	extractColours     int
	extractAlgorithm   string
	extractFormat      string
	extractOutput      string
	extractShowPreview bool
	extractNoCache     bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract colour palette from an image",
	Long: `Extract a colour palette from an image file or URL.

The extract command analyses an image and reports its dominant colours
with their share of the image. You can control the number of colours,
the extraction algorithm, and the output format. Remote images are
downloaded once and cached locally.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 5 colours (default) from an image
  huecraft extract wallpaper.jpg

  # Extract 8 colours with terminal previews
  huecraft extract --preview --colours 8 wallpaper.png

  # Extract colours using median-cut and output as JSON
  huecraft extract -a mediancut -f json wallpaper.jpg

  # Extract from a URL and save to a file
  huecraft extract -o palette.txt https://example.com/photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	// Define flags for the extract command
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 5, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans, mediancut)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "fetch remote images without writing to the local cache")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	verbose, _ := cmd.Flags().GetBool("verbose")
	remote := strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://")

	if remote {
		if err := security.ValidateImageURL(imagePath); err != nil {
			return fmt.Errorf("unsafe image URL: %w", err)
		}
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		ColorCount: extractColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var img goimage.Image
	switch {
	case remote && extractNoCache:
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching image: %s\n", imagePath)
		}
		loaded, err := image.NewSmartLoader().Load(imagePath)
		if err != nil {
			return fmt.Errorf("failed to fetch image: %w", err)
		}
		img = loaded
	default:
		// Remote images are cached locally before loading.
		if remote {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if verbose {
				fmt.Fprintf(os.Stderr, "Downloading image: %s\n", imagePath)
			}
			cached, err := imagecache.DownloadAndCache(ctx, imagePath, imagecache.CacheOptions{})
			if err != nil {
				return fmt.Errorf("failed to download image: %w", err)
			}
			imagePath = cached
		}

		if err := image.ValidateImagePath(imagePath); err != nil {
			return fmt.Errorf("invalid image path: %w", err)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
		}

		loaded, err := image.NewFileLoader().Load(imagePath)
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}
		img = loaded
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
		fmt.Fprintf(os.Stderr, "Extracting %d colours using %s algorithm...\n", extractColours, extractAlgorithm)
	}

	img = image.Downscale(img, image.DefaultMaxDimension)

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Successfully extracted %d colours\n", palette.Len())
	}

	output, err := formatPalette(palette, extractFormat, extractShowPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Successfully wrote palette to %s\n", extractOutput)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex values with occupancy shares.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var sb strings.Builder
	for _, entry := range palette.Entries() {
		switch {
		case showPreview && entry.Percentage > 0:
			label := fmt.Sprintf("%s  %5.1f%%", entry.Hex, entry.Percentage)
			sb.WriteString(colour.FormatColourWithLabel(entry.RGB, label, 8) + "\n")
		case showPreview:
			sb.WriteString(colour.FormatColourWithPreview(entry.RGB, 8) + "\n")
		default:
			sb.WriteString(entry.Hex + "\n")
		}
	}
	return sb.String()
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var sb strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			sb.WriteString(colour.FormatColourWithPreview(rgb, 8) + "  " + rgb.String() + "\n")
		} else {
			sb.WriteString(rgb.String() + "\n")
		}
	}
	return sb.String()
}
