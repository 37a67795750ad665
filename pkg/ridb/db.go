package ridb

import (
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/hashicorp/go-uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rollinitiative/rollinit/pkg/config"
	dbconfig "github.com/rollinitiative/rollinit/pkg/ridb/config"
)

// SqliteInMemoryDSN is a shared in-memory database with foreign keys enforced.
const SqliteInMemoryDSN = "file::memory:?cache=shared&_foreign_keys=1"

// NewSqliteInMemoryDSN returns a DSN for a private named in-memory database, so that
// tests running in the same process don't see each other's rows.
func NewSqliteInMemoryDSN() string {
	name, err := uuid.GenerateUUID()
	if err != nil {
		name = fmt.Sprintf("ri-%d", time.Now().UnixNano())
	}

	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
}

func MakeDSNFromEnv() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.GetKey("DB_USERNAME"),
		config.GetKey("DB_PASSWORD"),
		config.GetKey("DB_HOST"),
		config.GetKeyWithDefault("DB_PORT", "3306"),
		config.GetKey("DB_DATABASE"))
}

func MakePostgresDSNFromEnv() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.GetKey("DB_HOST"),
		config.GetKeyWithDefault("DB_PORT", "5432"),
		config.GetKey("DB_USERNAME"),
		config.GetKey("DB_PASSWORD"),
		config.GetKey("DB_DATABASE"))
}

func sqliteFileDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}

	return path + "?_foreign_keys=1"
}

// Dialector picks the gorm driver named in the settings.
func Dialector(s dbconfig.DBSettings) (gorm.Dialector, error) {
	switch s.Driver {
	case dbconfig.DriverMySQL:
		return mysql.Open(MakeDSNFromEnv()), nil
	case dbconfig.DriverPostgres:
		return postgres.Open(MakePostgresDSNFromEnv()), nil
	case dbconfig.DriverSqlite:
		return sqlite.Open(sqliteFileDSN(s.SqlitePath)), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", s.Driver)
	}
}

func gormConfig(logSQL bool) *gorm.Config {
	level := logger.Silent
	if logSQL {
		level = logger.Info
	}

	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
}

// Open opens the database and applies the pool settings.
func Open(dialector gorm.Dialector, s dbconfig.DBSettings) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormConfig(s.LogSQL))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	maxOpen := s.MaxOpenConns
	if dialector.Name() == "sqlite" {
		// sqlite allows a single writer, more connections only produce "database is locked".
		maxOpen = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(min(s.MaxIdleConns, maxOpen))

	return db, nil
}

// OpenSqlite opens a sqlite database with a single connection. Used by tests and by the
// sqlite driver setting.
func OpenSqlite(dsn string) (*gorm.DB, error) {
	return Open(sqlite.Open(dsn), dbconfig.DBSettings{Driver: dbconfig.DriverSqlite, MaxOpenConns: 1, MaxIdleConns: 1})
}

const maxDBRetries = 5

// MustConnectToDB will attempt to connect to the database maxDBRetries times. If it isn't successful
// after that number of retries then it will call log.Fatalf(), which will cause the server to exit.
// Between retry attempts it will sleep for 3 seconds.
func MustConnectToDB() *gorm.DB {
	s := dbconfig.Get()
	dialector, err := Dialector(s)
	if err != nil {
		log.Fatalf("Unable to configure database: %s", err)
	}

	retryCount := 1
	for {
		db, err := Open(dialector, s)
		switch {
		case err == nil:
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open %s database: %s", s.Driver, err)
		default:
			log.Warnf("Failed to open %s database (attempt %d of %d): %s", s.Driver, retryCount, maxDBRetries, err)
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}
