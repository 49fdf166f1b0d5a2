package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-menubar/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	toolPathEntry     *widget.Entry
	downloadDirEntry  *widget.Entry
	fetchTimeoutEntry *widget.Entry
	autoDownloadCheck *widget.Check
	autoRevealCheck   *widget.Check
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values are stored.
func NewSettingsDialog(settings *config.Settings, l *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: l,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.toolPathEntry = widget.NewEntry()
	sd.toolPathEntry.SetPlaceHolder("/opt/homebrew/bin/yt-dlp")
	browseToolBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseTool)
	toolPathRow := container.NewBorder(nil, nil, nil, browseToolBtn, sd.toolPathEntry)

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.fetchTimeoutEntry = widget.NewEntry()
	sd.fetchTimeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinFetchTimeoutSeconds) + "-" + strconv.Itoa(config.MaxFetchTimeoutSeconds))

	sd.autoDownloadCheck = widget.NewCheck(l.GetText(KeyAutoDownload), nil)
	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyToolPath)+":"),
		toolPathRow,

		widget.NewLabel(l.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(l.GetText(KeyFetchTimeout)+":"),
		sd.fetchTimeoutEntry,

		sd.autoDownloadCheck,
		sd.autoRevealCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(SettingsDialogSize)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.toolPathEntry.SetText(sd.settings.GetToolPath())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.fetchTimeoutEntry.SetText(strconv.Itoa(sd.settings.GetFetchTimeoutSeconds()))
	sd.autoDownloadCheck.SetChecked(sd.settings.GetAutoDownload())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseTool() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.toolPathEntry.SetText(reader.URI().Path())
	}, sd.window)
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave stores the values. Unparsable timeouts are ignored.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.toolPathEntry.Text != "" {
		sd.settings.SetToolPath(sd.toolPathEntry.Text)
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	if seconds, err := strconv.Atoi(sd.fetchTimeoutEntry.Text); err == nil {
		sd.settings.SetFetchTimeoutSeconds(seconds)
	}

	sd.settings.SetAutoDownload(sd.autoDownloadCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	l := sd.localization
	dialog.ShowInformation(l.GetText(KeySettings), l.GetText(KeySettingsSaved)+"\n"+l.GetText(KeyRestartRequired), sd.window)
}
