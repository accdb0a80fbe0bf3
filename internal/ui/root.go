package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/download"
	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

// RootUI represents the main window: a search row, the current match,
// a destination row and the download controls.
type RootUI struct {
	window       fyne.Window
	searcher     platform.Searcher
	downloader   download.Downloader
	settings     *config.Settings
	localization *Localization
	log          logrus.FieldLogger

	queryEntry    *widget.Entry
	searchBtn     *widget.Button
	resultLabel   *widget.Label
	dirLabel      *widget.Label
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	openFolderBtn *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label

	// task is only touched on the UI goroutine
	task *model.DownloadTask
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, searcher platform.Searcher, downloader download.Downloader, log logrus.FieldLogger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if log == nil {
		log = logrus.StandardLogger()
	}

	ui := &RootUI{
		window:       window,
		searcher:     searcher,
		downloader:   downloader,
		settings:     settings,
		localization: localization,
		log:          log.WithField("component", "ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.queryEntry = widget.NewEntry()
	ui.queryEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	ui.queryEntry.SetText(ui.settings.GetLastQuery())
	ui.queryEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	searchRow := container.NewBorder(nil, nil, settingsBtn, ui.searchBtn, ui.queryEntry)

	ui.resultLabel = widget.NewLabel(DashPlaceholder)
	ui.resultLabel.Wrapping = fyne.TextWrapWord

	ui.dirLabel = widget.NewLabel(ui.settings.GetDownloadDirectory())
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis
	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowseDirectory)
	dirRow := container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeyDestination)), ui.browseBtn, ui.dirLabel)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.openFolderBtn = widget.NewButton(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = model.ProgressComplete
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		searchRow,
		ui.resultLabel,
		widget.NewSeparator(),
		dirRow,
		container.NewHBox(ui.downloadBtn, ui.openFolderBtn),
		ui.progressBar,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.render()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		code := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.queryEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.browseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyBrowse))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.openFolderBtn.SetText(ui.localization.GetText(KeyOpenFolder))
	ui.render()
}

// onSearchClick starts a search for the entered query in the background
func (ui *RootUI) onSearchClick() {
	query := strings.TrimSpace(ui.queryEntry.Text)
	if query == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterQuery))
		return
	}
	if ui.task != nil && ui.task.Status.IsActive() {
		return
	}

	ui.settings.SetLastQuery(query)

	task := model.NewDownloadTask(query)
	task.Status = model.TaskStatusSearching
	ui.task = task
	ui.render()

	go func() {
		video, err := ui.searcher.Search(context.Background(), query)
		fyne.Do(func() {
			ui.applySearchResult(task, video, err)
		})
	}()
}

// applySearchResult stores a finished search; stale results are dropped
func (ui *RootUI) applySearchResult(task *model.DownloadTask, video *model.VideoRecord, err error) {
	if ui.task != task {
		return
	}

	log := ui.log.WithField("query", task.Query)
	if err != nil {
		log.WithError(err).Warn("search failed")
		task.Fail(err)
	} else {
		task.SetVideo(video)
	}
	ui.render()
}

// onDownloadClick downloads the current match into the configured directory
func (ui *RootUI) onDownloadClick() {
	task := ui.task
	if task == nil || task.Video == nil || task.Status.IsActive() {
		return
	}

	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.applyDownloadResult(task, "", fmt.Errorf("failed to create %s: %w", dir, err))
		return
	}

	task.Status = model.TaskStatusStarting
	task.Percent = 0
	task.LastError = ""
	ui.render()

	videoID := task.Video.ID
	go func() {
		path, err := ui.downloader.Download(context.Background(), videoID, dir, func(percent float64, message string) {
			event := model.ProgressEvent{Percent: percent, Message: message}
			fyne.Do(func() {
				ui.applyProgress(task, event)
			})
		})
		fyne.Do(func() {
			ui.applyDownloadResult(task, path, err)
		})
	}()
}

// applyProgress folds a progress event into the current task
func (ui *RootUI) applyProgress(task *model.DownloadTask, event model.ProgressEvent) {
	if ui.task != task {
		return
	}
	task.Apply(event)
	ui.render()
}

// applyDownloadResult finishes the current task
func (ui *RootUI) applyDownloadResult(task *model.DownloadTask, path string, err error) {
	if ui.task != task {
		return
	}

	log := ui.log.WithField("task_id", task.ID)
	if err != nil {
		log.WithError(err).Warn("download failed")
		task.Fail(err)
		ui.render()
		return
	}

	task.Complete(path)
	log.WithField("path", path).Info("download saved")
	ui.render()

	if ui.settings.GetAutoRevealOnComplete() {
		ui.revealOutput(path)
	}
}

// onBrowseDirectory is the directory-selection prompt
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.setDownloadDirectory(uri.Path())
	}, ui.window)
}

// setDownloadDirectory persists and displays a chosen destination
func (ui *RootUI) setDownloadDirectory(dir string) {
	ui.settings.SetDownloadDirectory(dir)
	ui.dirLabel.SetText(dir)
}

// onOpenFolder opens the folder holding the last download, or the destination
func (ui *RootUI) onOpenFolder() {
	path := ui.settings.GetDownloadDirectory()
	if ui.task != nil && ui.task.OutputPath != "" {
		ui.revealOutput(ui.task.OutputPath)
		return
	}

	if err := platform.OpenFolder(path); err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("failed to open folder")
		ui.statusLabel.SetText(ui.localization.GetText(KeyErrorOpeningPath) + ": " + err.Error())
	}
}

// revealOutput shows a downloaded file in the OS file manager
func (ui *RootUI) revealOutput(path string) {
	if err := platform.RevealFile(path); err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("failed to reveal file")
		ui.statusLabel.SetText(ui.localization.GetText(KeyErrorOpeningPath) + ": " + err.Error())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.dirLabel.SetText(ui.settings.GetDownloadDirectory())
		ui.onLanguageChange(ui.settings.GetLanguage())
	}).Show()
}

// render syncs the widgets with the current task
func (ui *RootUI) render() {
	task := ui.task
	if task == nil {
		ui.resultLabel.SetText(DashPlaceholder)
		ui.statusLabel.SetText("")
		ui.progressBar.SetValue(0)
		ui.downloadBtn.Disable()
		ui.searchBtn.Enable()
		return
	}

	ui.resultLabel.SetText(ui.resultText(task))
	ui.progressBar.SetValue(task.Percent)
	ui.statusLabel.SetText(ui.statusText(task))

	if task.Status.IsActive() {
		ui.searchBtn.Disable()
		ui.downloadBtn.Disable()
		return
	}
	ui.searchBtn.Enable()
	if task.Video != nil {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}

func (ui *RootUI) resultText(task *model.DownloadTask) string {
	switch {
	case task.Status == model.TaskStatusSearching:
		return ui.localization.GetText(KeySearching)
	case task.Video == nil && task.Status == model.TaskStatusError:
		return DashPlaceholder
	case task.Video == nil:
		return ui.localization.GetText(KeyNoResults)
	}
	return IconMusic + " " + task.GetDisplayTitle() + MiddleDotSeparator + task.Video.URL
}

func (ui *RootUI) statusText(task *model.DownloadTask) string {
	switch task.Status {
	case model.TaskStatusError:
		key := KeyDownloadFailed
		if task.Video == nil {
			key = KeySearchFailed
		}
		return ui.localization.GetText(key) + ": " + task.LastError
	case model.TaskStatusCompleted:
		return ui.localization.GetText(KeyDownloadCompleted) + " " + task.OutputPath
	case model.TaskStatusStarting, model.TaskStatusDownloading:
		return task.GetPercentString() + MiddleDotSeparator + task.Message
	}
	return ""
}
