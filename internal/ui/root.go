package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"github.com/ytget/yt-menubar/internal/config"
	"github.com/ytget/yt-menubar/internal/download"
	"github.com/ytget/yt-menubar/internal/model"
	"github.com/ytget/yt-menubar/internal/platform"
	"github.com/ytget/yt-menubar/internal/validation"
)

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	ctrl         download.Controller
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	downloadDir  string

	defaultView  *defaultView
	progressView *progressView
	finishView   *finishView
	errorView    *errorView

	current     ViewKind
	last        model.Snapshot
	unsubscribe func()

	trayMenu   *fyne.Menu
	trayCancel *fyne.MenuItem
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, ctrl download.Controller, settings *config.Settings, downloadDir string, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		ctrl:         ctrl,
		settings:     settings,
		localization: localization,
		logger:       logger,
		downloadDir:  downloadDir,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.setupTray()

	ui.unsubscribe = ctrl.Subscribe(func(s model.Snapshot) {
		fyne.Do(func() { ui.render(s) })
	})

	logger.Info("UI setup completed", zap.String("download_dir", downloadDir))
	return ui
}

// setupUI creates the four views and shows the input view
func (ui *RootUI) setupUI() {
	l := ui.localization
	ui.defaultView = newDefaultView(l, ui.onDownloadClick, ui.onFetchInfoClick, ui.onShowSettings)
	ui.defaultView.urlEntry.Validator = ui.validateURL
	ui.progressView = newProgressView(l, ui.onCancel)
	ui.finishView = newFinishView(l, ui.onShowFolder, ui.onDownloadAnother)
	ui.errorView = newErrorView(l, ui.onDownloadAnother)

	ui.current = ViewDefault
	ui.window.SetContent(ui.defaultView.content)
	ui.window.Resize(WindowSizeFor(ViewDefault))
	ui.window.SetFixedSize(true)
}

// Close detaches the UI from the controller
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
}

// render applies a snapshot to the views. Must run on the UI goroutine.
func (ui *RootUI) render(s model.Snapshot) {
	prev := ui.last
	ui.last = s

	ui.logger.Debug("snapshot received",
		zap.String("task_id", s.TaskID),
		zap.Stringer("phase", s.Phase),
		zap.Int("percent", s.ProgressPercent))

	kind := ViewFor(s)
	var content fyne.CanvasObject
	switch kind {
	case ViewFinish:
		ui.finishView.update(s, ui.downloadDir, ui.localization)
		content = ui.finishView.content
	case ViewError:
		ui.errorView.update(s)
		content = ui.errorView.content
	case ViewProgress:
		ui.progressView.update(s, ui.localization)
		content = ui.progressView.content
	default:
		ui.defaultView.update(s, ui.localization)
		content = ui.defaultView.content
	}

	if kind != ui.current {
		ui.current = kind
		ui.window.SetContent(content)
		ui.window.Resize(WindowSizeFor(kind))
	}

	ui.updateTray(s)

	if s.IsDownloadCompleted && (prev.Phase != model.PhaseCompleted || prev.TaskID != s.TaskID) {
		ui.onCompleted(s)
	}
}

// CurrentView returns the view currently shown
func (ui *RootUI) CurrentView() ViewKind {
	return ui.current
}

// validateURL validates the entered URL; empty input is allowed while typing
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return validation.ValidateVideoURL(input)
}

// enteredURL returns the normalized URL or reports why it cannot be used
func (ui *RootUI) enteredURL() (string, bool) {
	urlText := strings.TrimSpace(ui.defaultView.urlEntry.Text)
	if urlText == "" {
		ui.defaultView.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterURL))
		return "", false
	}
	normalized, err := validation.NormalizeVideoURL(urlText)
	if err != nil {
		ui.logger.Info("rejected URL", zap.String("url", urlText), zap.Error(err))
		ui.defaultView.statusLabel.SetText(ui.localization.GetText(KeyInvalidURL))
		return "", false
	}
	return normalized, true
}

// onDownloadClick handles the primary action. With metadata already loaded
// for the same URL it starts the download; otherwise it submits the URL.
func (ui *RootUI) onDownloadClick() {
	urlText, ok := ui.enteredURL()
	if !ok {
		return
	}

	if ui.last.Phase == model.PhaseMetadataReady {
		if ui.last.URL == urlText {
			ui.logger.Info("starting download of fetched video", zap.String("task_id", ui.last.TaskID))
			ui.ctrl.StartDownload()
			return
		}
		ui.ctrl.Reset()
	}

	mode := download.FetchAndDownload
	if !ui.settings.GetAutoDownload() {
		mode = download.FetchOnly
	}
	ui.submit(urlText, mode)
}

// onFetchInfoClick loads metadata only
func (ui *RootUI) onFetchInfoClick() {
	urlText, ok := ui.enteredURL()
	if !ok {
		return
	}
	if ui.last.Phase == model.PhaseMetadataReady {
		ui.ctrl.Reset()
	}
	ui.submit(urlText, download.FetchOnly)
}

// submit runs SubmitURL off the UI goroutine since it blocks for the fetch
func (ui *RootUI) submit(urlText string, mode download.Mode) {
	ui.logger.Info("submitting URL", zap.String("url", urlText), zap.Stringer("mode", mode))
	go func() {
		if !ui.ctrl.SubmitURL(context.Background(), urlText, mode) {
			ui.logger.Debug("submit not accepted", zap.String("url", urlText))
		}
	}()
}

func (ui *RootUI) onCancel() {
	if ui.ctrl.Cancel() {
		ui.logger.Info("cancel requested", zap.String("task_id", ui.last.TaskID))
	}
}

func (ui *RootUI) onDownloadAnother() {
	ui.ctrl.Reset()
	ui.defaultView.urlEntry.SetText("")
}

func (ui *RootUI) onShowFolder() {
	if err := platform.OpenFolder(ui.downloadDir); err != nil {
		ui.logger.Error("failed to open download folder", zap.String("path", ui.downloadDir), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.defaultView.refreshTexts(ui.localization)
	ui.progressView.refreshTexts(ui.localization)
	ui.finishView.refreshTexts(ui.localization)
	ui.errorView.refreshTexts(ui.localization)
	ui.rebuildTrayMenu()
	ui.render(ui.last)
}

// onCompleted sends a system notification and optionally opens the folder
func (ui *RootUI) onCompleted(s model.Snapshot) {
	ui.logger.Info("download completed", zap.String("task_id", s.TaskID), zap.String("title", s.Title))

	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(KeyDownloadCompleted),
		s.DisplayTitle(s.URL),
	))

	if ui.settings.GetAutoRevealOnComplete() {
		go func() {
			if err := platform.OpenFolder(ui.downloadDir); err != nil {
				ui.logger.Warn("auto-reveal failed", zap.String("path", ui.downloadDir), zap.Error(err))
			}
		}()
	}
}
