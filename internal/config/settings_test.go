package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestToolPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is written back on first read
	path := settings.GetToolPath()
	if path == "" {
		t.Fatal("Tool path should not be empty")
	}
	if stored := app.Preferences().String(KeyToolPath); stored != path {
		t.Errorf("Expected default %s to be stored, got %s", path, stored)
	}

	settings.SetToolPath("/custom/yt-dlp")
	if got := settings.GetToolPath(); got != "/custom/yt-dlp" {
		t.Errorf("Expected tool path /custom/yt-dlp, got %s", got)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestFetchTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetFetchTimeoutSeconds(); got != DefaultFetchTimeoutSeconds {
		t.Errorf("Expected default fetch timeout %d, got %d", DefaultFetchTimeoutSeconds, got)
	}
	if got := settings.GetFetchTimeout(); got != time.Minute {
		t.Errorf("Expected 1m, got %s", got)
	}

	tests := []struct {
		set      int
		expected int
	}{
		{30, 30},
		{1, MinFetchTimeoutSeconds},
		{0, MinFetchTimeoutSeconds},
		{10000, MaxFetchTimeoutSeconds},
	}

	for _, tt := range tests {
		settings.SetFetchTimeoutSeconds(tt.set)
		if got := settings.GetFetchTimeoutSeconds(); got != tt.expected {
			t.Errorf("SetFetchTimeoutSeconds(%d): got %d, expected %d", tt.set, got, tt.expected)
		}
	}
}

func TestAutoDownload(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoDownload() {
		t.Error("Auto download should default to true")
	}

	settings.SetAutoDownload(false)
	if settings.GetAutoDownload() {
		t.Error("Auto download should be false after SetAutoDownload(false)")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language ru, got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default auto reveal %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should be true after SetAutoRevealOnComplete(true)")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, exists := options[key]; !exists {
			t.Errorf("Expected language option %s to exist", key)
		}
	}
}

func TestResolve(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetToolPath("/stored/yt-dlp")
	settings.SetDownloadDirectory("/stored/downloads")
	settings.SetFetchTimeoutSeconds(30)

	tests := []struct {
		name     string
		env      Env
		expected Effective
	}{
		{
			name:     "preferences only",
			env:      Env{},
			expected: Effective{ToolPath: "/stored/yt-dlp", DownloadDir: "/stored/downloads", FetchTimeout: 30 * time.Second},
		},
		{
			name:     "env overrides",
			env:      Env{ToolPath: "/env/yt-dlp", DownloadDir: "/env/dl", FetchTimeout: 5 * time.Second},
			expected: Effective{ToolPath: "/env/yt-dlp", DownloadDir: "/env/dl", FetchTimeout: 5 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := settings.Resolve(tt.env); got != tt.expected {
				t.Errorf("Resolve() = %+v, expected %+v", got, tt.expected)
			}
		})
	}

	// Env values are not persisted
	if got := settings.GetToolPath(); got != "/stored/yt-dlp" {
		t.Errorf("env override leaked into preferences: %s", got)
	}
}
