package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kcmvp/commerce/store"
	"github.com/spf13/cobra"
)

var migrateDS string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the commerce schema on a configured datasource",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, ok := store.GetDS(migrateDS)
		if !ok {
			return fmt.Errorf("datasource %q is not configured", migrateDS)
		}
		driver, _ := store.DriverOf(migrateDS)
		if err := store.Migrate(cmd.Context(), db, driver); err != nil {
			return err
		}
		color.Green("schema is up to date (%s)", driver)
		return store.CloseAllDataSources()
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDS, "datasource", "", `datasource name from application.yml (empty means "default")`)
}
