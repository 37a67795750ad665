// Package config reads the database settings. Values are read once from the process
// configuration and cached.
package config

import (
	"strings"
	"sync"

	riconfig "github.com/rollinitiative/rollinit/pkg/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type DBSettings struct {
	Driver       string
	MaxOpenConns int
	MaxIdleConns int
	LogSQL       bool
	SqlitePath   string
}

var (
	once     sync.Once
	settings DBSettings
)

// Get returns the cached settings, loading them on first use.
func Get() DBSettings {
	once.Do(func() {
		settings = Load(riconfig.GetConfig())
	})

	return settings
}

// Load reads the settings from c without touching the cache.
func Load(c riconfig.Getter) DBSettings {
	s := DBSettings{
		Driver:       strings.ToLower(c.GetKeyWithDefault("RI_DB_DRIVER", DriverMySQL)),
		MaxOpenConns: c.GetIntKeyWithDefault("RI_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: c.GetIntKeyWithDefault("RI_DB_MAX_IDLE_CONNS", 5),
		LogSQL:       c.GetBoolKey("RI_DB_LOG"),
		SqlitePath:   c.GetKeyWithDefault("RI_SQLITE_PATH", "rollinit.db"),
	}

	if s.MaxOpenConns < 1 {
		s.MaxOpenConns = 1
	}

	if s.MaxIdleConns > s.MaxOpenConns {
		s.MaxIdleConns = s.MaxOpenConns
	}

	return s
}
