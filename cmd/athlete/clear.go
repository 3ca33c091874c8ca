package athlete

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all weight and food logs (the roll journal is kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			fmt.Fprint(cmd.OutOrStdout(), "Clear all weight and food logs? [y/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "y", "yes":
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}
		return withTracker(cmd, func(s *session) error {
			if err := reportUnsaved(cmd, s.tracker.ClearLogs()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared weight and food logs")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Skip the confirmation prompt")
}
