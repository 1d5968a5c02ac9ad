// Package logger configures the process wide logging backend.
package logger

import (
	"io"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	logFormat      = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"
	logColorFormat = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"
)

// InitConsoleLog sends log records at or above levelString to w. Colors are
// only used when color is set.
func InitConsoleLog(w io.Writer, levelString string, color bool) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "parsing log level %q", levelString)
	}

	format := logFormat
	if color {
		format = logColorFormat
	}

	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	backend.SetLevel(level, "")

	logging.SetBackend(backend)

	return nil
}
