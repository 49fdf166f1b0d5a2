package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-menubar/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyToolPath           = "ytdlp_path"
	KeyDownloadDir        = "download_directory"
	KeyFetchTimeout       = "fetch_timeout_seconds"
	KeyAutoDownload       = "auto_download"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultFetchTimeoutSeconds = 60
	MinFetchTimeoutSeconds     = 5
	MaxFetchTimeoutSeconds     = 600
	DefaultAutoDownload        = true
	DefaultLanguage            = "system"
	DefaultAutoRevealComplete  = false
	FallbackDownloadDir        = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetToolPath returns the configured yt-dlp executable path
func (s *Settings) GetToolPath() string {
	path := s.app.Preferences().String(KeyToolPath)
	if path == "" {
		path = platform.DefaultToolPath()
		s.SetToolPath(path)
	}
	return path
}

// SetToolPath sets the yt-dlp executable path
func (s *Settings) SetToolPath(path string) {
	s.app.Preferences().SetString(KeyToolPath, path)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFetchTimeoutSeconds returns the metadata fetch timeout in seconds
func (s *Settings) GetFetchTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyFetchTimeout)
	if value <= 0 {
		s.SetFetchTimeoutSeconds(DefaultFetchTimeoutSeconds)
		return DefaultFetchTimeoutSeconds
	}
	return value
}

// SetFetchTimeoutSeconds sets the metadata fetch timeout, clamped to 5..600
func (s *Settings) SetFetchTimeoutSeconds(seconds int) {
	if seconds < MinFetchTimeoutSeconds {
		seconds = MinFetchTimeoutSeconds
	}
	if seconds > MaxFetchTimeoutSeconds {
		seconds = MaxFetchTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyFetchTimeout, seconds)
}

// GetFetchTimeout returns the fetch timeout as a duration
func (s *Settings) GetFetchTimeout() time.Duration {
	return time.Duration(s.GetFetchTimeoutSeconds()) * time.Second
}

// GetAutoDownload returns whether a submitted URL downloads right after its metadata loads
func (s *Settings) GetAutoDownload() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoDownload, DefaultAutoDownload)
}

// SetAutoDownload sets whether a submitted URL downloads right after its metadata loads
func (s *Settings) SetAutoDownload(auto bool) {
	s.app.Preferences().SetBool(KeyAutoDownload, auto)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to open the download folder when a download completes
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the download folder when a download completes
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Effective is the configuration the orchestrator runs with after
// environment overrides are applied.
type Effective struct {
	ToolPath     string
	DownloadDir  string
	FetchTimeout time.Duration
}

// Resolve merges stored preferences with env. Env values win for this
// session and are not written back.
func (s *Settings) Resolve(env Env) Effective {
	eff := Effective{
		ToolPath:     env.ToolPath,
		DownloadDir:  env.DownloadDir,
		FetchTimeout: env.FetchTimeout,
	}
	if eff.ToolPath == "" {
		eff.ToolPath = s.GetToolPath()
	}
	if eff.DownloadDir == "" {
		eff.DownloadDir = s.GetDownloadDirectory()
	}
	if eff.FetchTimeout <= 0 {
		eff.FetchTimeout = s.GetFetchTimeout()
	}
	return eff
}
