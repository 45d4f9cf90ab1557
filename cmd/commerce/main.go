// Command commerce runs the commerce backend: an HTTP API over the catalog,
// order, fulfillment and payment services.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Database drivers selectable via datasource.<name>.driver.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var rootCmd = &cobra.Command{
	Use:   "commerce",
	Short: "commerce is a layered CRUD backend for a commerce domain.",
	Long: `commerce serves products, categories, suppliers, orders, deliveries,
inventory and payments over a REST API, backed by a relational datasource
configured in application.yml.`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
