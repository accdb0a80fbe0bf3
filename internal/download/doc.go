package download

// Package download implements the audio download pipeline built on top of the
// yt-dlp CLI. It runs a single extract-audio invocation per call, reports
// coarse progress checkpoints and recovers the produced file path from the
// tool's completion messages.
