package mcslog_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/mcsx/mcslog"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerParsesKnownLevel(t *testing.T) {
	logger := mcslog.NewLogger("DEBUG", "testModule")
	require.NotNil(t, logger)
	require.True(t, logger.IsEnabledFor(logging.DEBUG))
}

func TestNewLoggerFallsBackToInfoOnInvalidLevel(t *testing.T) {
	logger := mcslog.NewLogger("NOT-A-LEVEL", "testModule")
	require.NotNil(t, logger)
	require.True(t, logger.IsEnabledFor(logging.INFO))
	require.False(t, logger.IsEnabledFor(logging.DEBUG))
}

func TestParseTimeSplitsHoursMinutesSeconds(t *testing.T) {
	h, m, s := mcslog.ParseTime(3661 * time.Second)
	require.Equal(t, uint32(1), h)
	require.Equal(t, uint32(1), m)
	require.Equal(t, uint32(1), s)
}

func TestParseTimeZero(t *testing.T) {
	h, m, s := mcslog.ParseTime(0)
	require.Equal(t, uint32(0), h)
	require.Equal(t, uint32(0), m)
	require.Equal(t, uint32(0), s)
}
