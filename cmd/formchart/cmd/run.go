package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"formchart/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the records window",
	Long: `Run opens the database, loads every stored record into the table and
charts, and shows the form window. It is also what formchart does when no
subcommand is given.

Example:
  formchart run --db ~/records.db`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.NewApplication(ctx, cfg, log, Version)
	if err != nil {
		log.Error("CLI", err, map[string]interface{}{"database": cfg.Database.Path})
		return fmt.Errorf("application initialization failed: %w", err)
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}
	log.Info("CLI", "application terminated", nil)
	return nil
}
