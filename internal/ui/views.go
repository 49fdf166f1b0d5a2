package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-menubar/internal/model"
)

// defaultView is the URL input screen. It also shows fetched metadata while
// waiting for the user to start a FetchOnly task.
type defaultView struct {
	heading     *widget.Label
	urlEntry    *widget.Entry
	fetchBtn    *widget.Button
	downloadBtn *widget.Button
	settingsBtn *widget.Button
	statusLabel *widget.Label
	infoLabel   *widget.Label
	content     fyne.CanvasObject
}

func newDefaultView(l *Localization, onDownload, onFetch, onSettings func()) *defaultView {
	v := &defaultView{
		heading:     widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		urlEntry:    widget.NewEntry(),
		fetchBtn:    widget.NewButton(l.GetText(KeyFetchInfo), onFetch),
		downloadBtn: widget.NewButtonWithIcon(l.GetText(KeyDownload), theme.DownloadIcon(), onDownload),
		settingsBtn: widget.NewButton(IconSettings, onSettings),
		statusLabel: widget.NewLabel(""),
		infoLabel:   widget.NewLabel(""),
	}
	v.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	v.urlEntry.OnSubmitted = func(string) { onDownload() }
	v.downloadBtn.Importance = widget.HighImportance
	v.settingsBtn.Importance = widget.LowImportance
	v.statusLabel.Alignment = fyne.TextAlignCenter
	v.statusLabel.Wrapping = fyne.TextWrapWord
	v.infoLabel.Truncation = fyne.TextTruncateEllipsis
	v.infoLabel.Hide()

	top := container.NewBorder(nil, nil, nil, v.settingsBtn, v.heading)
	buttons := container.NewGridWithColumns(2, v.fetchBtn, v.downloadBtn)
	v.content = container.NewPadded(container.NewVBox(top, v.urlEntry, buttons, v.infoLabel, v.statusLabel))
	return v
}

func (v *defaultView) update(s model.Snapshot, l *Localization) {
	v.statusLabel.SetText(StatusText(s, l))

	if s.Phase == model.PhaseMetadataReady {
		v.infoLabel.SetText(fmt.Sprintf("%s · %s", s.DisplayTitle(s.URL), FormatDuration(s.DurationSeconds)))
		v.infoLabel.Show()
	} else {
		v.infoLabel.Hide()
	}
}

func (v *defaultView) refreshTexts(l *Localization) {
	v.heading.SetText(l.GetText(KeyAppTitle))
	v.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	v.fetchBtn.SetText(l.GetText(KeyFetchInfo))
	v.downloadBtn.SetText(l.GetText(KeyDownload))
}

// progressView is shown while fetching metadata or downloading.
type progressView struct {
	title     *widget.Label
	bar       *widget.ProgressBar
	status    *widget.Label
	detail    *widget.Label
	cancelBtn *widget.Button
	content   fyne.CanvasObject
}

func newProgressView(l *Localization, onCancel func()) *progressView {
	v := &progressView{
		title:     widget.NewLabelWithStyle(l.GetText(KeyLoadingInfo), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		bar:       widget.NewProgressBar(),
		status:    widget.NewLabel(""),
		detail:    widget.NewLabel(""),
		cancelBtn: widget.NewButtonWithIcon(l.GetText(KeyCancel), theme.CancelIcon(), onCancel),
	}
	v.title.Truncation = fyne.TextTruncateEllipsis
	v.status.Alignment = fyne.TextAlignCenter
	v.detail.Alignment = fyne.TextAlignCenter
	v.detail.TextStyle = fyne.TextStyle{Italic: true}
	v.cancelBtn.Importance = widget.DangerImportance

	v.content = container.NewPadded(container.NewVBox(v.title, v.bar, v.status, v.detail, v.cancelBtn))
	return v
}

func (v *progressView) update(s model.Snapshot, l *Localization) {
	v.title.SetText(ProgressTitle(s, l.GetText(KeyLoadingInfo)))
	v.bar.SetValue(float64(s.ProgressPercent) / float64(model.MaxProgressPercent))
	v.status.SetText(StatusText(s, l))

	if detail := ProgressDetail(s); detail != "" {
		v.detail.SetText(detail)
		v.detail.Show()
	} else {
		v.detail.Hide()
	}
}

func (v *progressView) refreshTexts(l *Localization) {
	v.cancelBtn.SetText(l.GetText(KeyCancel))
}

// finishView summarizes a completed download.
type finishView struct {
	heading    *widget.Label
	title      *widget.Label
	duration   *widget.Label
	size       *widget.Label
	resolution *widget.Label
	location   *widget.Label
	folderBtn  *widget.Button
	againBtn   *widget.Button
	content    fyne.CanvasObject
}

func newFinishView(l *Localization, onShowFolder, onAnother func()) *finishView {
	v := &finishView{
		heading:    widget.NewLabelWithStyle(IconDone+" "+l.GetText(KeyDownloadCompleted), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		title:      widget.NewLabel(""),
		duration:   widget.NewLabel(""),
		size:       widget.NewLabel(""),
		resolution: widget.NewLabel(""),
		location:   widget.NewLabel(""),
		folderBtn:  widget.NewButtonWithIcon(l.GetText(KeyShowInFolder), theme.FolderOpenIcon(), onShowFolder),
		againBtn:   widget.NewButton(l.GetText(KeyDownloadAnother), onAnother),
	}
	v.title.Truncation = fyne.TextTruncateEllipsis
	v.location.Truncation = fyne.TextTruncateEllipsis
	v.againBtn.Importance = widget.HighImportance

	details := container.NewVBox(v.title, v.duration, v.size, v.resolution, v.location)
	buttons := container.NewGridWithColumns(2, v.folderBtn, v.againBtn)
	v.content = container.NewPadded(container.NewVBox(v.heading, widget.NewSeparator(), details, buttons))
	return v
}

func (v *finishView) update(s model.Snapshot, dir string, l *Localization) {
	v.title.SetText(fmt.Sprintf(DetailFormat, l.GetText(KeyTitle), s.DisplayTitle(s.URL)))
	v.duration.SetText(fmt.Sprintf(DetailFormat, l.GetText(KeyDuration), FormatDuration(s.DurationSeconds)))
	v.size.SetText(fmt.Sprintf(DetailFormat, l.GetText(KeySize), FormatSize(s.ApproxSizeMB)))
	v.resolution.SetText(fmt.Sprintf(DetailFormat, l.GetText(KeyResolution), s.Resolution))
	v.location.SetText(fmt.Sprintf(DetailFormat, l.GetText(KeyLocation), dir))
}

func (v *finishView) refreshTexts(l *Localization) {
	v.heading.SetText(IconDone + " " + l.GetText(KeyDownloadCompleted))
	v.folderBtn.SetText(l.GetText(KeyShowInFolder))
	v.againBtn.SetText(l.GetText(KeyDownloadAnother))
}

// errorView shows the failure reason.
type errorView struct {
	heading  *widget.Label
	message  *widget.Label
	againBtn *widget.Button
	content  fyne.CanvasObject
}

func newErrorView(l *Localization, onAnother func()) *errorView {
	v := &errorView{
		heading:  widget.NewLabelWithStyle(IconError+" "+l.GetText(KeyError), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		message:  widget.NewLabel(""),
		againBtn: widget.NewButton(l.GetText(KeyDownloadAnother), onAnother),
	}
	v.message.Wrapping = fyne.TextWrapWord
	v.message.Alignment = fyne.TextAlignCenter

	v.content = container.NewPadded(container.NewBorder(v.heading, v.againBtn, nil, nil, container.NewVScroll(v.message)))
	return v
}

func (v *errorView) update(s model.Snapshot) {
	v.message.SetText(s.ErrorMessage)
}

func (v *errorView) refreshTexts(l *Localization) {
	v.heading.SetText(IconError + " " + l.GetText(KeyError))
	v.againBtn.SetText(l.GetText(KeyDownloadAnother))
}
