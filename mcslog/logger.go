package mcslog

import (
	"os"
	"time"

	"github.com/op/go-logging"
)

// NewLogger builds a go-logging Logger named module, levelled by parsing
// level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL). An unparsable
// level falls back to INFO rather than failing the caller.
func NewLogger(level, module string) *logging.Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{level:.4s} %{module}%{color:reset} %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetLevel(lvl, module)

	logger := logging.MustGetLogger(module)
	logger.SetBackend(leveled)

	return logger
}

// ParseTime splits elapsed into hours, minutes and whole seconds, the way
// the driver reports search wall-clock in its summary line.
func ParseTime(elapsed time.Duration) (hours, minutes, seconds uint32) {
	total := uint32(elapsed.Seconds())
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60

	return hours, minutes, seconds
}
