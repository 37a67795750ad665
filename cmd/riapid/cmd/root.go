package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollinitiative/rollinit/pkg/config"
	"github.com/rollinitiative/rollinit/pkg/riapid"
	"github.com/rollinitiative/rollinit/pkg/ridb"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
)

var cfgFile string

// flagConfig holds the flags bound to their configuration keys. A flag given on the
// command line wins over the environment, the environment over the config file.
var flagConfig = viper.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "riapid",
	Short: "Run the rollinit campaign API server",
	Long: `riapid serves the campaign API: characters, monsters, campaigns, the reference
catalogs and dice rolls. Settings are read from the dotenv file ($RI_DOTENV_PATH or
~/.rollinit/.env), the environment, an optional --config file and flags.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		db := ridb.MustConnectToDB()

		if config.GetBoolKey("RI_MIGRATE") {
			if err := ridb.RunMigrations(db); err != nil {
				log.Fatalf("Unable to migrate database: %s", err)
			}
		}

		e := riapid.NewServer(riapid.RouteOpts{
			Stors:       stor.NewGormStors(db),
			MaxPageSize: config.GetIntKey("RI_PAGE_SIZE_MAX"),
			LogRequests: config.GetBoolKey("RI_LOG_REQUESTS"),
		})

		port := config.GetKeyWithDefault("RIAPID_PORT", "1360")
		log.Infof("riapid listening on :%s", port)
		if err := e.Start(":" + port); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("db-driver", "", "database driver: mysql, postgres or sqlite")

	rootCmd.Flags().StringP("port", "p", "1360", "port to listen on")
	rootCmd.Flags().Bool("migrate", false, "run the schema migrations before serving")
	rootCmd.Flags().Bool("log-requests", false, "log every request")
	rootCmd.Flags().Int("page-size-max", 0, "largest page_size a list call may ask for")

	bindFlag(rootCmd.PersistentFlags().Lookup("log-level"), "RI_LOG_LEVEL")
	bindFlag(rootCmd.PersistentFlags().Lookup("db-driver"), "RI_DB_DRIVER")
	bindFlag(rootCmd.Flags().Lookup("port"), "RIAPID_PORT")
	bindFlag(rootCmd.Flags().Lookup("migrate"), "RI_MIGRATE")
	bindFlag(rootCmd.Flags().Lookup("log-requests"), "RI_LOG_REQUESTS")
	bindFlag(rootCmd.Flags().Lookup("page-size-max"), "RI_PAGE_SIZE_MAX")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
