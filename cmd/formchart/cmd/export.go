package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"formchart/internal/chart"
	"formchart/internal/models"
	"formchart/internal/store"
)

var outDir string

var exportCmd = &cobra.Command{
	Use:   "export-charts",
	Short: "Render the age and height charts to PNG files",
	Long: `Export-charts draws the same two bar charts the window shows, without
opening a window, and writes them as age_chart.png and height_chart.png.

Example:
  formchart export-charts --db records.db --out ./charts`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the PNG files to")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ScanAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height, log)
	if err := models.NewChartModel(renderer).Rebuild(records); err != nil {
		return err
	}

	paths, err := renderer.WritePNG(outDir)
	if err != nil {
		return fmt.Errorf("failed to export charts: %w", err)
	}

	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	log.Info("CLI", "charts exported", map[string]interface{}{
		"records": len(records),
		"dir":     outDir,
	})
	return nil
}
