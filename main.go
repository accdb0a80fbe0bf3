package main

import (
	"fmt"
	"os/exec"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/download"
	"github.com/ytget/yt-audio/internal/logger"
	"github.com/ytget/yt-audio/internal/platform"
	"github.com/ytget/yt-audio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-audio"
	AppName = "YT Audio"
)

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load environment")
	}

	log := logger.New(env)
	log.WithField("version", version).Infof("%s starting", AppName)

	if _, err := exec.LookPath(env.Binary); err != nil {
		log.WithField("binary", env.Binary).Warn("yt-dlp not found in PATH; search and download will fail")
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAudioTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		log.WithError(err).Warn("failed to ensure downloads dir")
	}

	runner := platform.NewExecRunner(env.Binary)
	ui.NewRootUI(myWindow, myApp,
		platform.NewSearchService(runner, log),
		download.NewService(runner, log),
		log,
	)

	myWindow.ShowAndRun()
}
