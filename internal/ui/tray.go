package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/yt-menubar/internal/model"
)

// setupTray installs the menu-bar icon and menu on desktop drivers. With a
// tray present, closing the window only hides it.
func (ui *RootUI) setupTray() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		return
	}

	ui.rebuildTrayMenu()
	desk.SetSystemTrayIcon(TrayIcon())
	ui.window.SetCloseIntercept(ui.window.Hide)
}

func (ui *RootUI) rebuildTrayMenu() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		return
	}
	l := ui.localization

	ui.trayCancel = fyne.NewMenuItem(l.GetText(KeyCancel), ui.onCancel)
	ui.trayCancel.Disabled = !ui.last.IsFetchingOrDownloading

	quit := fyne.NewMenuItem(l.GetText(KeyQuit), ui.app.Quit)
	quit.IsQuit = true

	ui.trayMenu = fyne.NewMenu(l.GetText(KeyAppTitle),
		fyne.NewMenuItem(l.GetText(KeyOpen), ui.showWindow),
		fyne.NewMenuItem(l.GetText(KeyFetchInfo), ui.onTrayFetchInfo),
		ui.trayCancel,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), func() {
			ui.showWindow()
			ui.onShowSettings()
		}),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	desk.SetSystemTrayMenu(ui.trayMenu)
}

// updateTray enables Cancel only while a subprocess runs
func (ui *RootUI) updateTray(s model.Snapshot) {
	if ui.trayCancel == nil {
		return
	}
	disabled := !s.IsFetchingOrDownloading
	if ui.trayCancel.Disabled == disabled {
		return
	}
	ui.trayCancel.Disabled = disabled
	ui.trayMenu.Refresh()
}

func (ui *RootUI) showWindow() {
	ui.window.Show()
	ui.window.RequestFocus()
}

// onTrayFetchInfo opens the window on the input view and fetches the URL
// already typed there, if any.
func (ui *RootUI) onTrayFetchInfo() {
	ui.showWindow()
	if ui.current != ViewDefault {
		return
	}
	if ui.defaultView.urlEntry.Text == "" {
		ui.window.Canvas().Focus(ui.defaultView.urlEntry)
		return
	}
	ui.onFetchInfoClick()
}
