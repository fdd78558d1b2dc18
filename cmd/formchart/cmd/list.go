package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"formchart/internal/models"
	"formchart/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored record",
	Long: `List prints all records in insertion order as an aligned text table
with the same columns the window shows.

Example:
  formchart list --db records.db`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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
	log.Debug("CLI", "records loaded", map[string]interface{}{"count": len(records)})

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No records in %s\n", cfg.Database.Path)
		return nil
	}

	writeRecordTable(out, records)
	fmt.Fprintf(out, "\nTotal: %d record(s)\n", len(records))
	return nil
}

// writeRecordTable renders records through a TableModel so the text matches
// the window cell for cell. Widths are measured in terminal cells.
func writeRecordTable(w io.Writer, records []models.Record) {
	table := models.NewTableModel()
	table.Rebuild(records)

	widths := make([]int, len(models.Columns))
	for col, heading := range models.Columns {
		widths[col] = runewidth.StringWidth(heading)
	}
	for row := 0; row < table.Len(); row++ {
		for col := range models.Columns {
			if n := runewidth.StringWidth(table.Cell(row, col)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	writeRow(w, models.Columns, widths)
	rule := make([]string, len(widths))
	for col, width := range widths {
		rule[col] = strings.Repeat("-", width)
	}
	writeRow(w, rule, widths)

	for row := 0; row < table.Len(); row++ {
		cells := make([]string, len(models.Columns))
		for col := range models.Columns {
			cells[col] = table.Cell(row, col)
		}
		writeRow(w, cells, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
}
