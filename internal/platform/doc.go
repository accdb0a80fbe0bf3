package platform

// Package platform contains OS/platform integration and external tooling glue:
// the yt-dlp process runner, the yt-dlp search resolver, filesystem helpers and
// OS open/reveal.
