package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/pflag"

	"github.com/rollinitiative/rollinit/pkg/clog"
	"github.com/rollinitiative/rollinit/pkg/config"
)

func bindFlag(flag *pflag.Flag, key string) {
	if err := flagConfig.BindPFlag(key, flag); err != nil {
		log.Fatalf("Unable to bind flag %s: %s", flag.Name, err)
	}
}

// setupConfig loads the dotenv file into the environment and then installs flagConfig as
// the process configuration, reading --config when it was given.
func setupConfig() error {
	config.MustLoadFromDotenv()

	c := config.NewViperConfig(flagConfig)
	if cfgFile != "" {
		if err := c.LoadFromPath(cfgFile); err != nil {
			return err
		}
	}
	config.SetConfig(c)

	return clog.Setup(config.GetKey("RI_LOG_LEVEL"), os.Stderr)
}
