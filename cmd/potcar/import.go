package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vasp-registry/services"
)

var importCmd = &cobra.Command{
	Use:   "import POTCAR...",
	Short: "Parse POTCAR files and store their potentials",
	Long: `Parse one or more POTCAR files and store every potential they contain.

The release is read from a VERSION file one directory above each POTCAR
and defaults to "unknown". Each file is stored atomically: if one block
fails, nothing from that file is kept.

Examples:
  potcar import potpaw_PBE/Li_sv/POTCAR
  potcar import potpaw_PBE/*/POTCAR`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewPotentialService(app.db, app.elements, app.logger)
		out := cmd.OutOrStdout()

		total := 0
		for _, path := range args {
			res, err := svc.ImportPath(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, pot := range res.Potentials {
				fmt.Fprintf(out, "%s\t%s\n", pot.ElementSymbol, pot)
			}
			total += res.Created
		}
		fmt.Fprintf(out, "%d new potential(s)\n", total)
		return nil
	},
}
