// Package debug holds the environment driven debug switches and the shared
// logger.
package debug

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

type debug struct {
	Parse  bool
	Encode bool
	IO     bool
}

var (
	d *debug

	mu     sync.Mutex
	logger *log.Logger
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("MAWU_DEBUG_PARSE")
	d.Encode = boolEnv("MAWU_DEBUG_ENCODE")
	d.IO = boolEnv("MAWU_DEBUG_IO")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func IO() bool {
	return d.IO
}

// Logger returns the process wide logger. It writes to stderr at the level
// named by MAWU_LOG_LEVEL, or at debug level when any MAWU_DEBUG_* switch is
// on, or at warn level otherwise.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger(os.Stderr, envLevel())
	}
	return logger
}

// SetOutput redirects the shared logger, for tests and for commands that
// capture diagnostics.
func SetOutput(w io.Writer) {
	Logger().SetOutput(w)
}

func SetLevel(l log.Level) {
	Logger().SetLevel(l)
}

// EnableAll turns on every switch and logs at debug level.
func EnableAll() {
	d.Parse, d.Encode, d.IO = true, true, true
	SetLevel(log.DebugLevel)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "mawu",
	})
}

func envLevel() log.Level {
	if s := os.Getenv("MAWU_LOG_LEVEL"); s != "" {
		if l, err := log.ParseLevel(s); err == nil {
			return l
		}
	}
	if d.Parse || d.Encode || d.IO {
		return log.DebugLevel
	}
	return log.WarnLevel
}
