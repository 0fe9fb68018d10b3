package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "marketplace-admin-api", Output: &buf})

	l.Debug().Msg("descartado")
	l.Component("http").Info().Str("path", "/api/orders").Msg("ok")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), "una sola línea JSON")
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "marketplace-admin-api", line["service"])
	assert.Equal(t, "http", line["component"])
	assert.Equal(t, "/api/orders", line["path"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel(" DEBUG ").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("verbose").String())
}
