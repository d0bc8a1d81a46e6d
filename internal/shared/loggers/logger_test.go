package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldInputPath, "access.log").Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug line should be filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "access.log", entry[FieldInputPath])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestCtx_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldAnalysisID, "01ARZ3NDEKTSV4RRFFQ69G5FAV").Logger().WithContext(context.Background())
	Ctx(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), `"analysis_id":"01ARZ3NDEKTSV4RRFFQ69G5FAV"`)
}
