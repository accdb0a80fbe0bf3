package model

// TaskStatus represents the status of a search/download cycle
type TaskStatus string

const (
	// TaskStatusIdle means nothing has been requested yet
	TaskStatusIdle TaskStatus = "Idle"

	// TaskStatusSearching means the search is running
	TaskStatusSearching TaskStatus = "Searching"

	// TaskStatusStarting means the download was requested but the tool is not running yet
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the external tool is running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the audio file was produced and located
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the cycle failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the tool is (about to be) running
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusSearching || ts == TaskStatusStarting || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
