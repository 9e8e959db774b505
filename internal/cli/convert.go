package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huecraft/huecraft/internal/colour"
	"github.com/huecraft/huecraft/internal/util"
)

var (
	// Convert command flags
	convertJSON        bool
	convertShowPreview bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Convert a colour between formats",
	Long: `Convert a hex colour to RGB, HSL, HSV and CMYK, and report its
nearest well-known name, temperature and accessibility details.

Examples:
  # Convert a colour
  huecraft convert "#FF6B35"

  # The leading hash is optional
  huecraft convert ff6b35

  # Convert with a terminal preview
  huecraft convert --preview 008080

  # Output as JSON
  huecraft convert --json 008080`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output as JSON")
	convertCmd.Flags().BoolVar(&convertShowPreview, "preview", false, "show a colour preview in terminal")
}

type convertReport struct {
	Hex           string                   `json:"hex"`
	Name          string                   `json:"name"`
	RGB           colour.RGB               `json:"rgb"`
	HSL           colour.HSL               `json:"hsl"`
	HSV           colour.HSV               `json:"hsv"`
	CMYK          colour.CMYK              `json:"cmyk"`
	Temperature   colour.Temperature       `json:"temperature"`
	Accessibility colour.AccessibilityInfo `json:"accessibility"`
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	hex := util.EnsureHash(util.StripHash(args[0]))

	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("invalid colour %q: %w", args[0], err)
	}

	name, _, _ := colour.NearestName(rgb)
	report := convertReport{
		Hex:           rgb.HexUpper(),
		Name:          name,
		RGB:           rgb,
		HSL:           rgb.ToHSL().Rounded(),
		HSV:           rgb.ToHSV().Rounded(),
		CMYK:          rgb.ToCMYK().Rounded(),
		Temperature:   colour.ColorTemperature(rgb),
		Accessibility: colour.Accessibility(rgb),
	}

	if convertJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if convertShowPreview {
		fmt.Println(colour.FormatColourWithLabel(rgb, report.Hex+"  "+report.Name, 8))
	} else {
		fmt.Printf("%s  %s\n", report.Hex, report.Name)
	}
	fmt.Printf("rgb:  %s\n", report.RGB)
	fmt.Printf("hsl:  hsl(%v, %v%%, %v%%)\n", report.HSL.H, report.HSL.S, report.HSL.L)
	fmt.Printf("hsv:  hsv(%v, %v%%, %v%%)\n", report.HSV.H, report.HSV.S, report.HSV.V)
	fmt.Printf("cmyk: cmyk(%v%%, %v%%, %v%%, %v%%)\n", report.CMYK.C, report.CMYK.M, report.CMYK.Y, report.CMYK.K)
	fmt.Printf("temperature: %s\n", report.Temperature.Temperature)
	fmt.Printf("suggested text colour: %s\n", colour.SuggestTextColor(rgb).TextColor)

	return nil
}
