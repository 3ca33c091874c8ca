package athlete

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvpathlete/athlete/internal/service"
)

var (
	exportOut    string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all ledgers as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withTracker(cmd, func(s *session) error {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			data := s.tracker.Export()
			if err := service.WriteExport(f, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d weight, %d food and %d roll record(s) to %s\n",
				len(data.WeightLogs), len(data.FoodLogs), len(data.RollJournal), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import ledgers from a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--file is required")
		}
		mode, err := service.ParseImportMode(importMode)
		if err != nil {
			return err
		}
		f, err := os.Open(importIn)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		data, err := service.ReadExport(f)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(s *session) error {
			report, err := s.tracker.Import(data, service.ImportOptions{Mode: mode, DryRun: importDryRun})
			if err := reportUnsaved(cmd, err); err != nil {
				return err
			}
			prefix := "Imported"
			if importDryRun {
				prefix = "Dry run:"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s inserted=%d skipped=%d\n", prefix, report.Inserted, report.Skipped)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "file", "", "Input JSON file path")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Import mode: merge|replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without writing")
}
