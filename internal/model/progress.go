package model

// Fixed progress checkpoints reported during a download
const (
	ProgressStart    = 0.0
	ProgressFinished = 90.0
	ProgressComplete = 100.0
)

// Progress messages paired with the checkpoints
const (
	MessageStarting = "Starting download..."
	MessageFinished = "Processing complete..."
	MessageComplete = "Download complete"
)

// ProgressEvent is a coarse download milestone
type ProgressEvent struct {
	Percent float64 // 0 to 100
	Message string
}
