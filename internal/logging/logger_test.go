package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "navigator")
	ctx = WithPath(ctx, "//Home")
	ctx = WithPopup(ctx, "")
	FromContext(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "navigator", line["component"])
	assert.Equal(t, "//Home", line["nav_path"])
	assert.Equal(t, "hello", line["message"])
	assert.NotContains(t, line, FieldPopup, "empty values add no field")
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWithFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "navkit.log")
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{Enabled: true, Path: path})
	require.NoError(t, err)

	logger.Info().Str("page", "Home").Msg("shown")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"page":"Home"`)
}

func TestRotatingFile_RotatesAndPrunes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navkit.log")
	file, err := OpenRotatingFile(path, 1, 1)
	require.NoError(t, err)
	defer file.Close()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for i := 0; i < 4; i++ {
		_, err := file.Write(chunk)
		require.NoError(t, err)
	}

	backups, err := file.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}
