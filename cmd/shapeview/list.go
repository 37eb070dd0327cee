package main

import (
	"fmt"

	"github.com/spatialbits/geom3d"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <catalog.yaml>",
	Short: "List catalog shapes with their dimensionality",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := geom3d.LoadCatalogFile(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-20s %-10s %s\n", "NAME", "KIND", "DIMENSIONS")
	reg.Each(func(name string, s geom3d.Dimensional) {
		fmt.Fprintf(w, "%-20s %-10s %s\n", name, geom3d.KindOf(s), s.Dimensions())
	})

	fmt.Fprintln(w)
	for _, t := range []geom3d.Type{geom3d.D1, geom3d.D2, geom3d.D3} {
		fmt.Fprintf(w, "%s shapes: %d\n", t, len(reg.ByDimensions(t)))
	}
	return nil
}
