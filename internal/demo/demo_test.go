package demo

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"physvec/internal/config"
	"physvec/internal/observability/log"
)

func stepValues(r Report) map[string]string {
	m := make(map[string]string, len(r.Steps))
	for _, s := range r.Steps {
		m[s.Name] = s.Value
	}
	return m
}

func TestRunScenario(t *testing.T) {
	var out bytes.Buffer
	report, err := New(&out, log.NewNop()).Run(config.DemoConfig{})
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)

	got := stepValues(report)
	assert.Equal(t, "5", got["v2 magnitude"])
	assert.Equal(t, "(3, 4, 0)", got["v1 + v2"])
	assert.Equal(t, "(3.2, 2, 3)", got["v1 + v3"])
	assert.Equal(t, "(0, 0, 0)", got["v1"])
	assert.Equal(t, "(6.2, 6, 3)", got["v1 + v2 + v3"])
	assert.Equal(t, "(3, 3, 3)", got["v5 += u5"])
	assert.Equal(t, "(1, 1, 2)", got["v5 -= u5"])
	assert.Equal(t, "(2, 4, 6)", got["v6 *= 2"])
	assert.Equal(t, "(-1, -0, -0)", got["-v7"])
	assert.Equal(t, "(1, 0, 0)", got["v7"])
	assert.Equal(t, "(0, 0, 1)", got["x cross y"])
	assert.Equal(t, "32", got["(1,2,3) dot (4,5,6)"])

	m, err := strconv.ParseFloat(got["v4 magnitude"], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m, 1e-12)
	assert.True(t, strings.HasPrefix(got["v4 reversed"], "(-0.717"), got["v4 reversed"])

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(report.Steps))
	assert.Equal(t, "v2 magnitude: 5", lines[0])
}

func TestRunExtraVectors(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DemoConfig{Extra: []config.Triple{{1, 2, 2}, {0, 0, 0}}}
	report, err := New(&out, log.NewNop()).Run(cfg)
	require.NoError(t, err)

	got := stepValues(report)
	assert.Equal(t, "3", got["extra[0] magnitude"])
	assert.Equal(t, "0", got["extra[1] magnitude"])
	assert.Equal(t, "(0, 0, 0)", got["extra[1] normalized"])
	assert.Contains(t, out.String(), "extra[0] normalized: (0.333")
}

func TestRunLogsSteps(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	report, err := New(&bytes.Buffer{}, log.NewFromCore(core, log.LevelDebug)).Run(config.DemoConfig{})
	require.NoError(t, err)

	steps := logs.FilterMessage("demo step").All()
	require.Len(t, steps, len(report.Steps))
	ctx := steps[0].ContextMap()
	assert.Equal(t, report.RunID, ctx["run_id"])
	assert.Equal(t, "v2 magnitude", ctx["step"])
	assert.Equal(t, 5.0, ctx["value"])

	done := logs.FilterMessage("demo finished").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(len(report.Steps)), done[0].ContextMap()["steps"])
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestRunStopsOnWriteError(t *testing.T) {
	report, err := New(&failingWriter{n: 2}, log.NewNop()).Run(config.DemoConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, report.Steps, 3)
}
