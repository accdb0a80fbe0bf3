package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

// yt-dlp audio extraction settings
const (
	AudioFormatSelector = "bestaudio[ext=m4a]/bestaudio[ext=webm]/bestaudio"
	AudioFormat         = "mp3"
	AudioQuality        = "0"
	OutputNameTemplate  = "%(title)s [%(id)s].%(ext)s"
)

// yt-dlp download flags
const (
	FlagFormat       = "--format"
	FlagOutput       = "--output"
	FlagExtractAudio = "--extract-audio"
	FlagAudioFormat  = "--audio-format"
	FlagAudioQuality = "--audio-quality"
	FlagNoPlaylist   = "--no-playlist"
	FlagNoWarnings   = "--no-warnings"
	FlagProgress     = "--progress"
)

const opDownload = "download"

// ErrEmptyVideoID is returned when Download is called without a video id
var ErrEmptyVideoID = errors.New("video id is empty")

// FilenameRecoveryError means yt-dlp succeeded but its output named no file
type FilenameRecoveryError struct {
	VideoID string
	Output  string
}

func (e *FilenameRecoveryError) Error() string {
	return fmt.Sprintf("failed to determine downloaded filename for %s", e.VideoID)
}

// Service handles download operations
type Service struct {
	runner platform.Runner
	log    logrus.FieldLogger
}

// NewService creates a new download service
func NewService(runner platform.Runner, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		runner: runner,
		log:    log.WithField("component", opDownload),
	}
}

// Download runs yt-dlp in extract-audio mode and returns the produced file.
// Progress is reported at 0% before the tool starts, at 90% once it exited
// successfully and at 100% once the file path is known.
func (s *Service) Download(ctx context.Context, videoID, destinationDir string, onProgress ProgressFunc) (string, error) {
	if videoID == "" {
		return "", ErrEmptyVideoID
	}
	if onProgress == nil {
		onProgress = func(float64, string) {}
	}

	dir, err := filepath.Abs(destinationDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve destination %q: %w", destinationDir, err)
	}

	log := s.log.WithFields(logrus.Fields{"video_id": videoID, "dir": dir})

	onProgress(model.ProgressStart, model.MessageStarting)
	log.Info("download started")

	result, err := s.runner.Run(ctx, s.BuildDownloadArgs(videoID, dir))
	if err != nil {
		log.WithError(err).Error("failed to run yt-dlp")
		return "", &platform.ExecutionError{Op: opDownload, Err: err}
	}
	if !result.Success() {
		log.WithField("exit_code", result.ExitCode).Warn("yt-dlp download failed")
		return "", &platform.ToolError{Op: opDownload, ExitCode: result.ExitCode, Stderr: result.Stderr}
	}

	onProgress(model.ProgressFinished, model.MessageFinished)

	path, ok := ExtractDownloadedFilename(result.Output())
	if !ok {
		log.Warn("no completion message in yt-dlp output")
		return "", &FilenameRecoveryError{VideoID: videoID, Output: result.Output()}
	}

	onProgress(model.ProgressComplete, model.MessageComplete)
	log.WithField("path", path).Info("download complete")

	return path, nil
}

// BuildDownloadArgs builds the yt-dlp arguments for an audio download into dir
func (s *Service) BuildDownloadArgs(videoID, dir string) []string {
	return []string{
		FlagFormat, AudioFormatSelector,
		FlagOutput, outputTemplate(dir),
		FlagExtractAudio,
		FlagAudioFormat, AudioFormat,
		FlagAudioQuality, AudioQuality,
		FlagNoPlaylist,
		FlagNoWarnings,
		FlagProgress,
		model.WatchURL(videoID),
	}
}

// outputTemplate joins dir with yt-dlp's own title/id/ext placeholders
func outputTemplate(dir string) string {
	return strings.TrimRight(dir, `/\`) + string(filepath.Separator) + OutputNameTemplate
}
