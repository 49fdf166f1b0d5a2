package download

import (
	"context"

	"github.com/ytget/yt-menubar/internal/model"
	"github.com/ytget/yt-menubar/internal/platform"
)

// Mode selects whether a submitted URL continues into a download once its
// metadata is loaded.
type Mode int

const (
	// FetchOnly stops at MetadataReady and waits for StartDownload.
	FetchOnly Mode = iota
	// FetchAndDownload starts the download as soon as metadata is ready.
	FetchAndDownload
)

func (m Mode) String() string {
	if m == FetchAndDownload {
		return "fetch-and-download"
	}
	return "fetch-only"
}

// Runner launches yt-dlp. *platform.Runner is the production implementation.
type Runner interface {
	Run(ctx context.Context, path string, args ...string) (platform.Result, error)
	Stream(ctx context.Context, path string, args []string, onChunk func(string)) (platform.Process, error)
}

// Controller is what the presentation layer needs from the orchestrator.
type Controller interface {
	SubmitURL(ctx context.Context, url string, mode Mode) bool
	StartDownload() bool
	Cancel() bool
	Reset()
	Snapshot() model.Snapshot
	Subscribe(fn func(model.Snapshot)) (unsubscribe func())
}

var (
	_ Runner     = (*platform.Runner)(nil)
	_ Controller = (*Orchestrator)(nil)
)
