// Command mosaic validates and inspects layout manifest files.
package main

import (
	"os"

	"github.com/go-drift/mosaic/cmd/mosaic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
