package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "shapeview",
	Short:        "Inspect and preview geom3d shape catalogs",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `shapeview loads a YAML shape catalog and reports the dimensionality
category of every shape in it, or draws the bounded shapes as a spinning
wireframe.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
