package testutils

import (
	"testing"

	"github.com/benoitkugler/webstyle/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// CapturedLogs stores the messages emitted during a test.
type CapturedLogs struct {
	observed *observer.ObservedLogs
}

// CaptureLogs redirects the package loggers to an in-memory
// sink, until the end of the test.
func CaptureLogs(t *testing.T) *CapturedLogs {
	t.Helper()
	core, observed := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(logger.NewConsole(zapcore.InfoLevel)) })
	return &CapturedLogs{observed: observed}
}

// Logs returns the messages logged so far.
func (c *CapturedLogs) Logs() []string {
	var out []string
	for _, entry := range c.observed.All() {
		out = append(out, entry.Message)
	}
	return out
}

// Warnings returns the messages logged at warning level or above.
func (c *CapturedLogs) Warnings() []string {
	var out []string
	for _, entry := range c.observed.FilterLevelExact(zapcore.WarnLevel).All() {
		out = append(out, entry.Message)
	}
	return out
}

// AssertNoLogs fails if at least one warning has been emitted.
func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	require.Empty(t, c.Warnings())
}

// CheckEqual fails if the warnings are not exactly [expected].
func (c *CapturedLogs) CheckEqual(t *testing.T, expected []string) {
	t.Helper()
	require.Equal(t, expected, c.Warnings())
}
