package clog

import (
	"io"

	"github.com/apex/log"
)

// Setup installs a Handler writing to w as the apex/log default and sets its level.
// An empty level means "info".
func Setup(level string, w io.Writer) error {
	if level == "" {
		level = "info"
	}

	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	log.SetHandler(NewHandler(w))
	log.SetLevel(l)

	return nil
}
