package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "yt-menubar.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// TrayIcon returns the menu-bar icon, falling back to the theme download icon
// when the logo file is not shipped next to the binary.
func TrayIcon() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.DownloadIcon()
}
