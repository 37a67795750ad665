// Package clog is the text handler used by the daemons. Entries are written one per line
// as "LEVEL time message key=value..." with the fields sorted by name and any error field
// last.
package clog

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

type Handler struct {
	mu     sync.Mutex
	writer io.Writer
	now    func() time.Time
}

var levelNames = map[log.Level]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{writer: w, now: time.Now}
}

func (h *Handler) SetOutput(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writer = w
}

func (h *Handler) HandleLog(e *log.Entry) error {
	names := e.Fields.Names()
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == "error":
			return 1
		case b == "error":
			return -1
		}
		return strings.Compare(a, b)
	})

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%5s %s %-25s", levelNames[e.Level], h.now().Format(time.DateTime), e.Message)
	for _, name := range names {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(formatValue(e.Fields.Get(name)))
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())

	return err
}

// formatValue quotes values holding whitespace or quotes so a line splits back into fields.
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}

	return s
}
