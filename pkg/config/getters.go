package config

import (
	"strconv"

	"github.com/apex/log"
)

// getters implements the typed accessors of Configer on top of a single string lookup.
// Each Configer embeds it with its own lookup function.
type getters struct {
	lookup func(key string) string
}

func (g getters) GetKey(key string) string {
	return g.lookup(key)
}

func (g getters) MustGetKey(key string) string {
	val := g.lookup(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (g getters) GetKeyWithDefault(key, defaultValue string) string {
	val := g.lookup(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func (g getters) GetIntKey(key string) int {
	return g.GetIntKeyWithDefault(key, 0)
}

func (g getters) MustGetIntKey(key string) int {
	intVal, err := strconv.Atoi(g.lookup(key))
	if err != nil {
		log.Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func (g getters) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(g.lookup(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}

// GetBoolKey accepts anything strconv.ParseBool does. Missing or malformed values are false.
func (g getters) GetBoolKey(key string) bool {
	b, err := strconv.ParseBool(g.lookup(key))
	return err == nil && b
}
