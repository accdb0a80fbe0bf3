package download

import (
	"regexp"
	"strings"
)

// Completion messages yt-dlp prints for the final file, checked in order
var completionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[ExtractAudio\] Destination: (.+\.mp3)`),
	regexp.MustCompile(`\[Merger\] Merging formats into (.+\.mp3)`),
	regexp.MustCompile(`\[info\] (.+\.mp3)`),
}

// ExtractDownloadedFilename returns the path of the first completion pattern
// found in output. The boolean is false when no pattern matches.
func ExtractDownloadedFilename(output string) (string, bool) {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	for _, pattern := range completionPatterns {
		if m := pattern.FindStringSubmatch(output); m != nil {
			return m[1], true
		}
	}
	return "", false
}
