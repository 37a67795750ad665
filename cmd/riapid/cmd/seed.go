package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rollinitiative/rollinit/pkg/ridb"
	"github.com/rollinitiative/rollinit/pkg/ridb/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference catalogs",
	Long: `seed loads races, classes, equipment, feats and monster types. Rows are matched by
name, so seeding again updates them in place. Without --file the built in catalog is
loaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := ridb.MustConnectToDB()
		if err := ridb.RunMigrations(db); err != nil {
			return err
		}

		if seedFile == "" {
			_, err := seed.LoadDefault(db)
			return err
		}

		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = seed.Load(db, f)
		return err
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "catalog yaml file to load")
}
