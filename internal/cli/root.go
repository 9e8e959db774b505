// Package cli provides the command-line interface for huecraft.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/huecraft/huecraft/internal/colour"
	"github.com/huecraft/huecraft/internal/version"
)

var (
	noColor bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huecraft",
		Short: "A colour toolbox and palette service",
		Long: `Huecraft is a colour toolbox: it converts between colour formats,
builds harmony schemes and gradients, simulates colour-vision
deficiencies, mixes paints, extracts palettes from images, and serves
the whole toolbox over an HTTP API.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				colour.DisableColourOutput = true
			}
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured terminal output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(serveCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
