// Package config holds user settings stored in Fyne preferences, YTM_*
// environment overrides, and logger construction.
package config
