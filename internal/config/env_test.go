package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{"YTM_YTDLP_PATH", "YTM_DOWNLOAD_DIR", "YTM_FETCH_TIMEOUT", "YTM_LOG_LEVEL", "YTM_LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, env.ToolPath)
	assert.Empty(t, env.DownloadDir)
	assert.Zero(t, env.FetchTimeout)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, LogFormatConsole, env.LogFormat)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("YTM_YTDLP_PATH", "/opt/bin/yt-dlp")
	t.Setenv("YTM_DOWNLOAD_DIR", "/data/videos")
	t.Setenv("YTM_FETCH_TIMEOUT", "90s")
	t.Setenv("YTM_LOG_LEVEL", "debug")
	t.Setenv("YTM_LOG_FORMAT", "json")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, Env{
		ToolPath:     "/opt/bin/yt-dlp",
		DownloadDir:  "/data/videos",
		FetchTimeout: 90 * time.Second,
		LogLevel:     "debug",
		LogFormat:    "json",
	}, env)
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown level", key: "YTM_LOG_LEVEL", value: "verbose"},
		{name: "unknown format", key: "YTM_LOG_FORMAT", value: "xml"},
		{name: "unparsable timeout", key: "YTM_FETCH_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "YTM_FETCH_TIMEOUT", value: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadEnv()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{level: "debug", format: LogFormatConsole},
		{level: "info", format: LogFormatJSON},
		{level: "", format: ""},
		{level: "loud", format: LogFormatJSON, wantErr: true},
	}

	for _, tt := range tests {
		logger, err := NewLogger(tt.level, tt.format)
		if tt.wantErr {
			assert.Error(t, err, "level %q", tt.level)
			continue
		}
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestNewLogger_Level(t *testing.T) {
	logger, err := NewLogger("warn", LogFormatJSON)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "debug must be disabled at warn")
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel), "warn must be enabled")
}
