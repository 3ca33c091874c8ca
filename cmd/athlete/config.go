package athlete

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvpathlete/athlete/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage athlete local configuration",
}

var (
	cfgCatalogSource string
	cfgSuggestLimit  int
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("catalog-source") {
				if err := service.SetConfig(sqldb, service.ConfigCatalogSource, cfgCatalogSource); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("suggest-limit") {
				if err := service.SetConfig(sqldb, service.ConfigSuggestLimit, strconv.Itoa(cfgSuggestLimit)); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().StringVar(&cfgCatalogSource, "catalog-source", "", "Nutrition table file path or http(s) URL")
	configSetCmd.Flags().IntVar(&cfgSuggestLimit, "suggest-limit", 0, "Default number of food suggestions")
}
