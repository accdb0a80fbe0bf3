package download

import (
	"context"
)

// ProgressFunc receives progress checkpoints synchronously, in increasing
// percent order, on the goroutine that called Download. It must not block.
type ProgressFunc func(percent float64, message string)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Download extracts the audio of videoID into destinationDir and returns
	// the absolute path of the produced file.
	Download(ctx context.Context, videoID, destinationDir string, onProgress ProgressFunc) (string, error)
}
