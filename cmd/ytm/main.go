package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ytget/yt-menubar/internal/config"
	"github.com/ytget/yt-menubar/internal/download"
	"github.com/ytget/yt-menubar/internal/validation"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	exitFailed    = 1
	exitCancelled = 130
)

func main() {
	app := cli.App{
		Name:    "ytm",
		Usage:   "fetch video information and download videos with yt-dlp",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ytdlp-path",
				Usage: "path to the yt-dlp executable (overrides YTM_YTDLP_PATH)",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "directory downloads are written to (overrides YTM_DOWNLOAD_DIR)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "metadata fetch timeout, e.g. 90s (overrides YTM_FETCH_TIMEOUT)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides YTM_LOG_LEVEL)",
			},
		},
		Commands: []*cli.Command{{
			Name:      "info",
			Usage:     "print title, duration, size and resolution of a video",
			ArgsUsage: "<url>",
			Action:    withOrchestrator(fetchInfo),
		}, {
			Name:      "get",
			Aliases:   []string{"download"},
			Usage:     "download a video, printing progress until it finishes",
			ArgsUsage: "<url>",
			Action:    withOrchestrator(followDownload),
		}},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// taskFunc runs one task against ctrl and writes its output to w.
type taskFunc func(ctx context.Context, ctrl download.Controller, url string, w io.Writer) error

// withOrchestrator validates the URL argument and builds the logger and the
// orchestrator from flags and YTM_* variables before running f. SIGINT and
// SIGTERM end the context passed to f.
func withOrchestrator(f taskFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.Exit("expected exactly one video URL", exitFailed)
		}
		url, err := validation.NormalizeVideoURL(ctx.Args().First())
		if err != nil {
			return cli.Exit(err.Error(), exitFailed)
		}

		env, err := config.LoadEnv()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		level := env.LogLevel
		if l := ctx.String("log-level"); l != "" {
			level = l
		}
		logger, err := config.NewLogger(level, env.LogFormat)
		if err != nil {
			return cli.Exit(err.Error(), exitFailed)
		}
		defer func() { _ = logger.Sync() }()

		opts := download.Options{
			ToolPath:     firstNonEmpty(ctx.String("ytdlp-path"), env.ToolPath),
			DownloadDir:  firstNonEmpty(ctx.String("output-dir"), env.DownloadDir),
			FetchTimeout: firstPositive(ctx.Duration("timeout"), env.FetchTimeout),
			Logger:       logger.Named("download"),
		}
		orch := download.New(opts)
		defer orch.Close()

		if snap := orch.Snapshot(); snap.HasError {
			return cli.Exit(snap.ErrorMessage, exitFailed)
		}

		logger.Debug("running command",
			zap.String("command", ctx.Command.Name),
			zap.String("url", url),
			zap.String("download_dir", orch.DownloadDir()))
		sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return exitFor(f(sigCtx, orch, url, ctx.App.Writer))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
