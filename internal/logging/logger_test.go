// SPDX-License-Identifier: MIT

package logging_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvdiff/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		l, err := logging.NewLogger(logging.Config{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	l, err := logging.NewLogger(logging.Config{Level: "loud"})
	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"Error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLogger_FieldsReachCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.NewLoggerFromCore(core).Named("adjust").With(logging.Int("phase", 1))

	l.Info("multiplier",
		logging.Float64("value", 1.5),
		logging.Floats("nodes", []float64{0.1, 0.2}),
		logging.String("branch", "point"),
		logging.Bool("consumed", false),
		logging.Err(errors.New("boom")),
		logging.Any("rate", 2),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "adjust", entry.LoggerName)
	ctx := entry.ContextMap()
	assert.Equal(t, int64(1), ctx["phase"])
	assert.Equal(t, 1.5, ctx["value"])
	assert.Equal(t, "point", ctx["branch"])
	assert.Equal(t, "boom", ctx["error"])
	require.NoError(t, l.Sync())
}

func TestNopLogger_AndDefault(t *testing.T) {
	n := logging.NewNopLogger()
	n.Debug("x")
	n.Warn("x")
	n.Error("x")
	assert.Equal(t, n, n.With(logging.Int("a", 1)).Named("b"))
	assert.NoError(t, n.Sync())

	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	core, logs := observer.New(zapcore.InfoLevel)
	logging.SetDefault(logging.NewLoggerFromCore(core))
	logging.SetDefault(nil)
	logging.Default().Info("hello")
	assert.Equal(t, 1, logs.FilterMessage("hello").Len())
}
