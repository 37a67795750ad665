package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rollinitiative/rollinit/pkg/config"
	"github.com/rollinitiative/rollinit/pkg/riclient"
)

var flagConfig = viper.New()

var rootCmd = &cobra.Command{
	Use:   "rictl",
	Short: "Command line client for the rollinit campaign API",
	Long: `rictl talks to a running riapid. The server is taken from --api-url, or
RI_API_URL in the environment or dotenv file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.MustLoadFromDotenv()
		config.SetConfig(config.NewViperConfig(flagConfig))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("api-url", riclient.DefaultBaseURL, "riapid base url")
	if err := flagConfig.BindPFlag("RI_API_URL", rootCmd.PersistentFlags().Lookup("api-url")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(rollCmd)
}

func newClient() *riclient.Client {
	return riclient.NewClient(config.GetKey("RI_API_URL"))
}
