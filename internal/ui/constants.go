package ui

import "fyne.io/fyne/v2"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconDone     = "✅"
)

// Text fragments
const (
	DashPlaceholder    = "—"
	SizeFormat         = "%d MB"
	ProgressSizeFormat = "%d/%d MB"
	DetailFormat       = "%s: %s"
)

// Popover window sizing
var (
	WindowSize         = fyne.NewSize(300, 200)
	FinishedWindowSize = fyne.NewSize(350, 250)
	SettingsDialogSize = fyne.NewSize(420, 380)
)
