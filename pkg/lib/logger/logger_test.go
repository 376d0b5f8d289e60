package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"bannerweb/pkg/lib/sl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSONLevels(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(EnvProd, &buf)

	log.Debug("hidden")
	log.Info("shown", slog.String("op", "test"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "test", rec["op"])

	buf.Reset()
	Setup(EnvDev, &buf).Debug("dbg")
	assert.Contains(t, buf.String(), `"msg":"dbg"`)
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(EnvLocal, &buf).With(slog.String("op", "pretty"))

	log.Error("failed", sl.Err(assert.AnError))

	out := buf.String()
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, `"op": "pretty"`)
	assert.Contains(t, out, assert.AnError.Error())
}
