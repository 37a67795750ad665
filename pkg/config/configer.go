package config

// Loader reads configuration from its source.
type Loader interface {
	LoadFromPath(path string) error
	Load() error
}

// Getter is the typed, read-only view of a configuration.
type Getter interface {
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKey(key string) int
	MustGetIntKey(key string) int
	GetIntKeyWithDefault(key string, defaultValue int) int
	GetBoolKey(key string) bool
}

type Configer interface {
	Loader
	Getter
}

var (
	_ Configer = (*DotenvConfig)(nil)
	_ Configer = (*MapConfig)(nil)
	_ Configer = (*ViperConfig)(nil)
)
