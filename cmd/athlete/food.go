package athlete

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvpathlete/athlete/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log food and look up nutrition",
}

var (
	foodName     string
	foodQuantity string
	foodNotes    string
	foodLimit    int
	suggestLimit int
	todayJSON    bool
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food by grams or milliliters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			state := s.waitCatalog(cmd.Context())
			rec, err := s.tracker.AddFood(foodName, foodQuantity, foodNotes)
			if errors.Is(err, service.ErrNotFound) {
				return fmt.Errorf("%w (catalog %s)", err, state)
			}
			if err := reportUnsaved(cmd, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %g%s: %.1f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				rec.Name, rec.Quantity, rec.Unit, rec.Calories, rec.Protein, rec.Carbs, rec.Fat)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food logs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tFOOD\tQTY\tKCAL\tP\tC\tF\tNOTES")
			for _, r := range limitItems(s.tracker.Foods.Items(), foodLimit) {
				fmt.Fprintf(out, "%s\t%s\t%g%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
					r.Date, r.Name, r.Quantity, r.Unit, r.Calories, r.Protein, r.Carbs, r.Fat, r.Notes)
			}
			return nil
		})
	},
}

var foodSuggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest catalog food names containing query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			limit, err := s.suggestLimit(suggestLimit)
			if err != nil {
				return err
			}
			s.waitCatalog(cmd.Context())
			for _, name := range s.tracker.Suggest(args[0], limit) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

var foodLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Show per-100 nutrition for a catalog food",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			s.waitCatalog(cmd.Context())
			name := strings.Join(args, " ")
			fact, err := s.tracker.Lookup(name)
			if err != nil {
				return fmt.Errorf("%q: %w", name, err)
			}
			unit := fact.Unit
			if unit == "" {
				unit = "g"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s per 100%s: %.1f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				strings.ToLower(strings.TrimSpace(name)), unit, fact.CaloriesPer100, fact.ProteinPer100, fact.CarbsPer100, fact.FatPer100)
			return nil
		})
	},
}

var foodTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's food entries and macro totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(s *session) error {
			status := s.tracker.TodayStatus()
			if todayJSON {
				b, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal today json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Calories: %.1f kcal\n", status.Totals.Calories)
			fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg\n", status.Totals.Protein, status.Totals.Carbs, status.Totals.Fat)
			if len(status.Entries) == 0 {
				fmt.Fprintln(out, "No food logged today")
				return nil
			}
			for _, r := range status.Entries {
				fmt.Fprintf(out, "- %s %g%s: %.1f kcal\n", r.Name, r.Quantity, r.Unit, r.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodSuggestCmd, foodLookupCmd, foodTodayCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name as listed in the nutrition table")
	foodAddCmd.Flags().StringVar(&foodQuantity, "quantity", "", "Quantity in grams or milliliters")
	foodAddCmd.Flags().StringVar(&foodNotes, "notes", "", "Optional notes")
	foodListCmd.Flags().IntVar(&foodLimit, "limit", 0, "Show at most N records (0 = all)")
	foodSuggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum suggestions (default from config, then 8)")
	foodTodayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print JSON")
}
