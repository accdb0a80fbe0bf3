package platform

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// DefaultBinary is the yt-dlp executable looked up on PATH
const DefaultBinary = "yt-dlp"

// RunResult holds the outcome of a finished yt-dlp process
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status 0
func (r *RunResult) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout followed by stderr
func (r *RunResult) Output() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	if r.Stdout == "" {
		return r.Stderr
	}
	return r.Stdout + "\n" + r.Stderr
}

// Runner runs yt-dlp with the given arguments and waits for it to exit.
// A non-zero exit is reported through RunResult.ExitCode, not as an error;
// an error means the process could not be run at all.
type Runner interface {
	Run(ctx context.Context, args []string) (*RunResult, error)
}

// ExecRunner implements Runner by spawning the yt-dlp binary
type ExecRunner struct {
	// BinaryPath is the path to the yt-dlp executable. Defaults to "yt-dlp".
	BinaryPath string
}

// NewExecRunner creates a runner for the given binary
func NewExecRunner(binaryPath string) *ExecRunner {
	return &ExecRunner{BinaryPath: binaryPath}
}

// Run executes the binary and buffers its whole output
func (r *ExecRunner) Run(ctx context.Context, args []string) (*RunResult, error) {
	bin := r.BinaryPath
	if bin == "" {
		bin = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &RunResult{Stdout: stdout.String(), Stderr: stderr.String()}, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &RunResult{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}, nil
	}
	return nil, err
}
