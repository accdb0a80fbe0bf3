package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQuery is returned when a search is requested without a query
var ErrEmptyQuery = errors.New("search query is empty")

// ExecutionError means yt-dlp could not be launched
type ExecutionError struct {
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute yt-dlp %s: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ToolError means yt-dlp ran but exited with a failure status
type ToolError struct {
	Op       string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("yt-dlp %s failed (exit status %d): %s", e.Op, e.ExitCode, strings.TrimSpace(e.Stderr))
}

// ParseError means a search result line was not valid JSON
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse yt-dlp output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError means a search result lacked a required field
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no %s field in yt-dlp response", e.Field)
}
