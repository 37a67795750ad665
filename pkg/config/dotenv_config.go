package config

import (
	"os"

	"github.com/subosito/gotenv"
)

// DotenvConfig loads a .env file into the process environment and reads keys from it.
// Variables already set in the environment win over the file.
type DotenvConfig struct {
	getters
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{getters: getters{lookup: os.Getenv}, DotenvPath: path}
}

func (c *DotenvConfig) LoadFromPath(path string) error {
	c.DotenvPath = path
	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) Load() error {
	return gotenv.Load(c.DotenvPath)
}
