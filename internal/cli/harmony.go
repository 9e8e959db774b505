package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huecraft/huecraft/internal/colour"
)

var (
	// Harmony command flags
	harmonyScheme      string
	harmonyCount       int
	harmonyShowPreview bool
)

// harmonyCmd represents the harmony command
var harmonyCmd = &cobra.Command{
	Use:   "harmony <hex>",
	Short: "Build a harmony scheme around a colour",
	Long: `Build a colour-wheel harmony scheme around a base colour.

Examples:
  # Complementary colour of red
  huecraft harmony -s complementary ff0000

  # Five monochromatic variations with previews
  huecraft harmony -s monochromatic -n 5 --preview 336699`,
	Args: cobra.ExactArgs(1),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().StringVarP(&harmonyScheme, "scheme", "s", "complementary",
		"harmony scheme (complementary, analogous, triadic, tetradic, split-complementary, monochromatic, shades, tints)")
	harmonyCmd.Flags().IntVarP(&harmonyCount, "count", "n", 5, "number of colours for counted schemes")
	harmonyCmd.Flags().BoolVar(&harmonyShowPreview, "preview", false, "show colour previews in terminal")
}

// runHarmony executes the harmony command.
func runHarmony(cmd *cobra.Command, args []string) error {
	rgb, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour %q: %w", args[0], err)
	}

	colors, err := colour.SchemeColors(rgb, colour.Scheme(harmonyScheme), harmonyCount)
	if err != nil {
		return err
	}

	for _, c := range colors {
		name, _, _ := colour.NearestName(c)
		if harmonyShowPreview {
			fmt.Println(colour.FormatColourWithLabel(c, c.HexUpper()+"  "+name, 8))
		} else {
			fmt.Printf("%s  %s\n", c.HexUpper(), name)
		}
	}
	return nil
}
