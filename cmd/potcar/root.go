package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vasp-registry/config"
	"vasp-registry/services"
	"vasp-registry/storage"
)

// app hält die in PersistentPreRunE aufgebauten Abhängigkeiten der Unterkommandos.
var app struct {
	cfg      *config.Config
	db       *gorm.DB
	logger   *zap.Logger
	elements *services.ElementDirectory
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "potcar",
	Short: "Import VASP pseudopotentials and manage Hubbard-U parameters",
	Long: `potcar reads VASP POTCAR files into the registry database and resolves
Hubbard-U parameterizations. Database settings come from the same
environment variables (or .env file) as the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			app.logger, err = zap.NewDevelopment()
		} else {
			app.logger = zap.NewNop()
		}
		if err != nil {
			return err
		}

		app.cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		app.db, err = storage.OpenDatabase(app.cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		if err := storage.Migrate(app.db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		if err := services.SeedElements(app.db, app.logger); err != nil {
			return fmt.Errorf("seeding elements: %w", err)
		}
		app.elements = services.NewElementDirectory(app.db, app.logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app.logger != nil {
			_ = app.logger.Sync()
		}
		if app.db != nil {
			if sqlDB, err := app.db.DB(); err == nil {
				sqlDB.Close()
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	rootCmd.AddCommand(importCmd, hubbardCmd)
}
