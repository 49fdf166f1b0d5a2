package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PopoverTheme tightens the default theme for the small menu-bar window.
// Success and error colors match the finish and error views.
type PopoverTheme struct {
	base fyne.Theme
}

// NewPopoverTheme creates the popover theme on top of the default theme
func NewPopoverTheme() fyne.Theme {
	return &PopoverTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *PopoverTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0, G: 122, B: 255, A: 255}
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *PopoverTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *PopoverTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes; everything not listed keeps the default
func (t *PopoverTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 12
	case theme.SizeNameHeadingText:
		return 15
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	}
	return t.base.Size(name)
}
