package athlete

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Keep the sparring roll journal",
}

var (
	rollPartner  string
	rollDuration string
	rollFocus    string
	rollNotes    string
	rollLimit    int
)

var rollAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a roll with a training partner",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			rec, err := s.tracker.AddRoll(rollPartner, rollDuration, rollFocus, rollNotes)
			if err := reportUnsaved(cmd, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged roll with %s on %s\n", rec.Partner, rec.Date)
			return nil
		})
	},
}

var rollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rolls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tPARTNER\tMINUTES\tFOCUS\tNOTES")
			for _, r := range limitItems(s.tracker.Rolls.Items(), rollLimit) {
				minutes := "-"
				if r.DurationMinutes != nil {
					minutes = strconv.Itoa(*r.DurationMinutes)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", r.Date, r.Partner, minutes, r.Focus, r.Notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rollCmd.AddCommand(rollAddCmd, rollListCmd)

	rollAddCmd.Flags().StringVar(&rollPartner, "partner", "", "Training partner (required)")
	rollAddCmd.Flags().StringVar(&rollDuration, "duration", "", "Duration in whole minutes")
	rollAddCmd.Flags().StringVar(&rollFocus, "focus", "", "What you worked on")
	rollAddCmd.Flags().StringVar(&rollNotes, "notes", "", "Optional notes")
	rollListCmd.Flags().IntVar(&rollLimit, "limit", 0, "Show at most N records (0 = all)")
}
