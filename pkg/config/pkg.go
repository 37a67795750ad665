package config

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
)

var configer Configer = NewDotenvConfig("")

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

// DotenvPath returns $RI_DOTENV_PATH, or ~/.rollinit/.env when it isn't set.
func DotenvPath() string {
	if p := os.Getenv("RI_DOTENV_PATH"); p != "" {
		return p
	}

	home, err := homedir.Dir()
	if err != nil {
		return ".env"
	}

	return filepath.Join(home, ".rollinit", ".env")
}

// MustLoadFromDotenv loads the dotenv file into the environment. A missing file is fine,
// every key can also come from the environment. A file that exists but can't be parsed
// is fatal.
func MustLoadFromDotenv() {
	path := DotenvPath()
	if _, err := os.Stat(path); err != nil {
		log.Debugf("No dotenv file at %s, using environment only", path)
		return
	}

	if err := LoadFromPath(path); err != nil {
		log.Fatalf("Failed loading configuration file %s: %s", path, err)
	}
}

func LoadFromPath(path string) error {
	return configer.LoadFromPath(path)
}

func Load() error {
	return configer.Load()
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}

func GetIntKey(key string) int {
	return configer.GetIntKey(key)
}

func MustGetIntKey(key string) int {
	return configer.MustGetIntKey(key)
}

func GetIntKeyWithDefault(key string, defaultValue int) int {
	return configer.GetIntKeyWithDefault(key, defaultValue)
}

func GetBoolKey(key string) bool {
	return configer.GetBoolKey(key)
}
