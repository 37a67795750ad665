package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/rollinitiative/rollinit/pkg/ridb"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := ridb.MustConnectToDB()
		if err := ridb.RunMigrations(db); err != nil {
			return err
		}

		log.Infof("Migrated %d tables", len(ridb.Models()))
		return nil
	},
}
