package ui

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-menubar/internal/model"
	"github.com/ytget/yt-menubar/internal/platform"
)

// ViewKind is the view shown for a snapshot.
type ViewKind int

const (
	ViewDefault ViewKind = iota
	ViewProgress
	ViewFinish
	ViewError
)

func (v ViewKind) String() string {
	switch v {
	case ViewProgress:
		return "progress"
	case ViewFinish:
		return "finish"
	case ViewError:
		return "error"
	default:
		return "default"
	}
}

// ViewFor picks the view for s. Completion wins over errors, errors over
// activity; MetadataReady and Cancelled stay on the input view.
func ViewFor(s model.Snapshot) ViewKind {
	switch {
	case s.IsDownloadCompleted:
		return ViewFinish
	case s.HasError:
		return ViewError
	case s.IsFetchingOrDownloading:
		return ViewProgress
	default:
		return ViewDefault
	}
}

// WindowSizeFor returns the popover size for a view
func WindowSizeFor(v ViewKind) fyne.Size {
	if v == ViewFinish {
		return FinishedWindowSize
	}
	return WindowSize
}

// FormatSize renders a size in MB, or a dash when unknown
func FormatSize(mb int) string {
	if mb <= 0 {
		return DashPlaceholder
	}
	return fmt.Sprintf(SizeFormat, mb)
}

// FormatDuration renders a duration in seconds, or a dash when unknown
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return DashPlaceholder
	}
	return platform.FormatDuration(seconds)
}

// ProgressDetail returns the "done/total MB" line, empty when size is unknown
func ProgressDetail(s model.Snapshot) string {
	if s.ApproxSizeMB <= 0 || s.Phase != model.PhaseDownloading {
		return ""
	}
	return fmt.Sprintf(ProgressSizeFormat, s.DownloadedMB(), s.ApproxSizeMB)
}

// ProgressTitle is the heading of the progress view
func ProgressTitle(s model.Snapshot, loading string) string {
	if !s.IsVideoInfoLoaded {
		return loading
	}
	return s.DisplayTitle(s.URL)
}

// StatusText is the localized status line for s. Failed and Idle have none;
// the error view shows the failure reason instead.
func StatusText(s model.Snapshot, l *Localization) string {
	switch s.Phase {
	case model.PhaseFetchingMetadata:
		return l.GetText(KeyStatusFetching)
	case model.PhaseMetadataReady:
		return l.GetText(KeyStatusInfoLoaded)
	case model.PhaseDownloading:
		if s.ProgressPercent == 0 {
			return l.GetText(KeyStatusStarting)
		}
		return fmt.Sprintf(l.GetText(KeyStatusDownloading), s.ProgressPercent)
	case model.PhaseCompleted:
		return l.GetText(KeyStatusCompleted)
	case model.PhaseCancelled:
		return l.GetText(KeyStatusCancelled)
	default:
		return ""
	}
}
