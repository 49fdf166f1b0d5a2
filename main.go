package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/yt-menubar/internal/config"
	"github.com/ytget/yt-menubar/internal/download"
	"github.com/ytget/yt-menubar/internal/platform"
	"github.com/ytget/yt-menubar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-menubar"
	AppName = "YT Menubar"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(env.LogLevel, env.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPopoverTheme())
	myApp.SetIcon(ui.TrayIcon())

	myWindow := myApp.NewWindow(AppName)

	settings := config.NewSettings(myApp)
	eff := settings.Resolve(env)
	if err := platform.CreateDirectoryIfNotExists(eff.DownloadDir); err != nil {
		logger.Warn("failed to ensure downloads dir", zap.String("path", eff.DownloadDir), zap.Error(err))
	}

	orch := download.New(download.Options{
		ToolPath:     eff.ToolPath,
		DownloadDir:  eff.DownloadDir,
		FetchTimeout: eff.FetchTimeout,
		Logger:       logger.Named("download"),
	})
	defer orch.Close()

	root := ui.NewRootUI(myWindow, myApp, orch, settings, orch.DownloadDir(), logger.Named("ui"))
	defer root.Close()

	myWindow.ShowAndRun()
	logger.Info("stopped")
}
