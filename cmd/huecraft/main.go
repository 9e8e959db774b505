// Huecraft - a colour toolbox and palette service
//
// Huecraft converts between colour formats, builds harmony schemes and
// gradients, extracts palettes from images, and serves the whole
// toolbox over an HTTP API.
package main

import (
	"github.com/huecraft/huecraft/internal/cli"
)

func main() {
	cli.Execute()
}
