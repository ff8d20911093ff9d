package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxi_stats/pkg/logger/console"
)

type recorder struct {
	lines []string
}

func (r *recorder) Debug(m string, _ ...any) { r.lines = append(r.lines, "DEBUG "+m) }
func (r *recorder) Info(m string, _ ...any)  { r.lines = append(r.lines, "INFO "+m) }
func (r *recorder) Warn(m string, _ ...any)  { r.lines = append(r.lines, "WARN "+m) }
func (r *recorder) Error(m string, _ ...any) { r.lines = append(r.lines, "ERROR "+m) }
func (r *recorder) Fatal(m string, _ ...any) { r.lines = append(r.lines, "FATAL "+m) }

func TestDispatchesToAllBackends(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Init(a, b)
	defer Init()

	Info("loaded", "records", 3)
	Warn("skipped")

	assert.Equal(t, []string{"INFO loaded", "WARN skipped"}, a.lines)
	assert.Equal(t, a.lines, b.lines)
}

func TestNoBackendsIsSilent(t *testing.T) {
	Init()
	assert.NotPanics(t, func() {
		Debug("nothing")
		Error("nothing")
	})
}

func TestConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(console.New(console.Params{Output: &buf}))
	defer Init()

	Debug("hidden")
	Info("shown", "zone", "JFK Airport")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "JFK Airport")
}
