package athlete

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and list body weight",
}

var (
	weightValue string
	weightNotes string
	weightLimit int
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log body weight in lbs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			rec, err := s.tracker.AddWeight(weightValue, weightNotes)
			if err := reportUnsaved(cmd, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f lbs on %s\n", rec.WeightLbs, rec.Date)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight logs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tWEIGHT\tNOTES")
			for _, r := range limitItems(s.tracker.Weights.Items(), weightLimit) {
				fmt.Fprintf(out, "%s\t%.1f\t%s\n", r.Date, r.WeightLbs, r.Notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().StringVar(&weightValue, "weight", "", "Body weight in lbs")
	weightAddCmd.Flags().StringVar(&weightNotes, "notes", "", "Optional notes")
	weightListCmd.Flags().IntVar(&weightLimit, "limit", 0, "Show at most N records (0 = all)")
}
