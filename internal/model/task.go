package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes every generated task id
const TaskIDPrefix = "download-"

// DownloadTask tracks one search→download cycle on the UI side.
// It is not safe for concurrent use; the UI mutates it on its own goroutine.
type DownloadTask struct {
	ID         string
	Query      string
	Video      *VideoRecord
	Status     TaskStatus
	Percent    float64 // 0 to 100
	Message    string  // last progress message
	LastError  string  // last error message if any
	OutputPath string  // path to the produced audio file
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewDownloadTask creates a task for a search query
func NewDownloadTask(query string) *DownloadTask {
	return &DownloadTask{
		ID:        generateTaskID(),
		Query:     query,
		Status:    TaskStatusIdle,
		StartedAt: time.Now(),
	}
}

// SetVideo records the search outcome; a nil video leaves the task idle
func (dt *DownloadTask) SetVideo(video *VideoRecord) {
	dt.Video = video
	dt.Status = TaskStatusIdle
}

// Apply folds a progress event into the task
func (dt *DownloadTask) Apply(event ProgressEvent) {
	if dt.Status.IsFinished() {
		return
	}
	dt.Percent = event.Percent
	dt.Message = event.Message
	if event.Percent <= ProgressStart {
		dt.Status = TaskStatusStarting
		return
	}
	dt.Status = TaskStatusDownloading
}

// Complete marks the task as finished with the produced file
func (dt *DownloadTask) Complete(path string) {
	dt.Status = TaskStatusCompleted
	dt.Percent = ProgressComplete
	dt.OutputPath = path
	dt.LastError = ""
	dt.FinishedAt = time.Now()
}

// Fail marks the task as failed
func (dt *DownloadTask) Fail(err error) {
	dt.Status = TaskStatusError
	if err != nil {
		dt.LastError = err.Error()
	}
	dt.FinishedAt = time.Now()
}

// GetPercentString returns the progress as "NN%"
func (dt *DownloadTask) GetPercentString() string {
	return fmt.Sprintf("%d%%", int(dt.Percent))
}

// GetDisplayTitle returns title, filename, URL or query in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Video != nil && dt.Video.Title != "" {
		return dt.Video.Title
	}

	if dt.OutputPath != "" {
		// Support both / and \ separators
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	if dt.Video != nil {
		return dt.Video.URL
	}
	return dt.Query
}

// generateTaskID generates a unique, time-ordered task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
