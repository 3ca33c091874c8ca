package athlete

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath        string
	catalogSource string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "athlete",
	Short: "athlete tracks body weight, food and training rolls from your terminal",
	Long:  "athlete is a local-first tracker for body weight, food intake with macro totals from a nutrition table, and a sparring roll journal.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog", "", "Nutrition table file path or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
