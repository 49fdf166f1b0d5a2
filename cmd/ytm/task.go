package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ytget/yt-menubar/internal/download"
	"github.com/ytget/yt-menubar/internal/model"
	"github.com/ytget/yt-menubar/internal/platform"
)

var (
	errCancelled   = errors.New(download.StatusCancelled)
	errNotAccepted = errors.New("a task is already in progress")
)

// taskError carries the failure reason of a Failed task.
type taskError struct {
	reason string
}

func (e *taskError) Error() string {
	return e.reason
}

// fetchInfo loads metadata for url and prints it.
func fetchInfo(ctx context.Context, ctrl download.Controller, url string, w io.Writer) error {
	if !ctrl.SubmitURL(ctx, url, download.FetchOnly) {
		return errNotAccepted
	}
	s := ctrl.Snapshot()
	if err := outcome(s); err != nil {
		return err
	}
	printMetadata(w, s)
	return nil
}

// followDownload fetches and downloads url, printing every state change,
// and returns once the task reaches a terminal phase. Ending ctx cancels
// the task.
func followDownload(ctx context.Context, ctrl download.Controller, url string, w io.Writer) error {
	done := make(chan model.Snapshot, 1)
	printer := &progressPrinter{w: w}
	first := true
	unsubscribe := ctrl.Subscribe(func(s model.Snapshot) {
		if first {
			// current state from before the submit
			first = false
			return
		}
		printer.print(s)
		if s.Phase.IsFinished() {
			select {
			case done <- s:
			default:
			}
		}
	})
	defer unsubscribe()

	stop := context.AfterFunc(ctx, func() { ctrl.Cancel() })
	defer stop()

	if !ctrl.SubmitURL(ctx, url, download.FetchAndDownload) {
		return errNotAccepted
	}
	return outcome(<-done)
}

// outcome maps a settled snapshot to the command result.
func outcome(s model.Snapshot) error {
	switch s.Phase {
	case model.PhaseMetadataReady, model.PhaseCompleted:
		return nil
	case model.PhaseCancelled:
		return errCancelled
	case model.PhaseFailed:
		return &taskError{reason: s.ErrorMessage}
	default:
		return fmt.Errorf("task stopped in unexpected phase %s", s.Phase)
	}
}

// exitFor converts a command result into a cli exit error.
func exitFor(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errCancelled):
		return cli.Exit(err.Error(), exitCancelled)
	default:
		return cli.Exit(err.Error(), exitFailed)
	}
}

func printMetadata(w io.Writer, s model.Snapshot) {
	fmt.Fprintf(w, "Title:      %s\n", s.DisplayTitle(s.URL))
	fmt.Fprintf(w, "Duration:   %s\n", platform.FormatDuration(s.DurationSeconds))
	fmt.Fprintf(w, "Size:       %d MB\n", s.ApproxSizeMB)
	fmt.Fprintf(w, "Resolution: %s\n", s.Resolution)
}

// progressPrinter renders snapshots as terminal lines. Download progress is
// redrawn in place with a carriage return.
type progressPrinter struct {
	w       io.Writer
	phase   model.Phase
	percent int
	inline  bool
}

func (p *progressPrinter) print(s model.Snapshot) {
	if s.Phase == model.PhaseDownloading && p.phase == model.PhaseDownloading {
		if s.ProgressPercent != p.percent {
			p.percent = s.ProgressPercent
			p.drawProgress(s)
		}
		return
	}

	if p.inline {
		fmt.Fprintln(p.w)
		p.inline = false
	}
	p.phase = s.Phase
	p.percent = s.ProgressPercent

	switch s.Phase {
	case model.PhaseIdle:
	case model.PhaseFailed:
		fmt.Fprintf(p.w, "Error: %s\n", s.ErrorMessage)
	case model.PhaseMetadataReady:
		fmt.Fprintln(p.w, s.StatusMessage)
		printMetadata(p.w, s)
	case model.PhaseDownloading:
		fmt.Fprintln(p.w, s.StatusMessage)
		p.drawProgress(s)
	default:
		fmt.Fprintln(p.w, s.StatusMessage)
	}
}

func (p *progressPrinter) drawProgress(s model.Snapshot) {
	if s.ApproxSizeMB > 0 {
		fmt.Fprintf(p.w, "\r%3d%% %d/%d MB", s.ProgressPercent, s.DownloadedMB(), s.ApproxSizeMB)
	} else {
		fmt.Fprintf(p.w, "\r%3d%%", s.ProgressPercent)
	}
	p.inline = true
}
