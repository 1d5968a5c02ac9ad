package logger_test

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"

	"github.com/crystalix007/centered-intervals/internal/logger"
)

func TestInitConsoleLog(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, logger.InitConsoleLog(&buf, "warning", false))

	log := logging.MustGetLogger("logger_test")
	log.Info("hidden")
	log.Warning("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN]")
	require.Contains(t, buf.String(), "shown")
}

func TestInitConsoleLog_badLevel(t *testing.T) {
	err := logger.InitConsoleLog(&bytes.Buffer{}, "loud", false)

	require.ErrorContains(t, err, `"loud"`)
}
