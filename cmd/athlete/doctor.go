package athlete

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvpathlete/athlete/internal/service"
	"github.com/mvpathlete/athlete/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored ledgers for corrupt data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			kv := store.NewSQLite(sqldb)
			report, err := service.RunDoctor(kv, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "LEDGER\tRECORDS\tCORRUPT\tMISSING_IDS\tDUPLICATE_IDS")
			for _, h := range report.Ledgers {
				fmt.Fprintf(out, "%s\t%d\t%t\t%d\t%d\n", h.Key, h.Records, h.Corrupt, h.MissingIDs, h.DuplicateIDs)
			}
			if doctorFix {
				fmt.Fprintf(out, "Reset ledgers: %d\n", report.FixedLedgers)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(kv, false)
				if err != nil {
					return err
				}
			}
			if report.CorruptLedgers > 0 {
				return fmt.Errorf("doctor found %d corrupt ledger(s)", report.CorruptLedgers)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Reset corrupt ledgers to empty")
}
