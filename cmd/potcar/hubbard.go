package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vasp-registry/models"
	"vasp-registry/services"
)

var (
	hubLigand     string
	hubConvention string
	hubOxidation  float64
	hubU          float64
	hubL          int
)

var hubbardCmd = &cobra.Command{
	Use:   "hubbard ELEMENT",
	Short: "Get or create a Hubbard-U parameterization",
	Long: `Look up the Hubbard-U parameterization for the given parameters,
creating it if it does not exist yet, and print its label, key and
whether a correction is actually applied.

Examples:
  potcar hubbard Fe --ligand O --ox 3 --u 5.3 --l 2 --convention wang
  potcar hubbard Cu`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []services.HubbardOption{services.WithConvention(hubConvention), services.WithU(hubU), services.WithL(hubL)}
		if cmd.Flags().Changed("ligand") {
			opts = append(opts, services.WithLigand(hubLigand))
		}
		if cmd.Flags().Changed("ox") {
			opts = append(opts, services.WithOxidationState(hubOxidation))
		}

		registry := services.NewHubbardRegistry(app.db, app.elements, app.logger)
		hub, err := registry.Get(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\tkey=%s\tactive=%t\n", hub, hub.Key(), models.IsActive(hub))
		return nil
	},
}

func init() {
	hubbardCmd.Flags().StringVar(&hubLigand, "ligand", "", "ligand element symbol")
	hubbardCmd.Flags().StringVar(&hubConvention, "convention", "", "parameterization convention, e.g. wang")
	hubbardCmd.Flags().Float64Var(&hubOxidation, "ox", 0, "oxidation state")
	hubbardCmd.Flags().Float64Var(&hubU, "u", 0, "Hubbard U in eV")
	hubbardCmd.Flags().IntVar(&hubL, "l", models.NoHubbardL, "orbital quantum number (-1 disables)")
}
