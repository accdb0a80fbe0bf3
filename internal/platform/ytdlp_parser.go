package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-audio/internal/model"
)

// Search constants
const (
	DefaultSearchResults = 10
	SearchPrefixFormat   = "ytsearch%d:"
)

// yt-dlp search flags
const (
	FlagDumpJSON   = "--dump-json"
	FlagNoDownload = "--no-download"
	FlagQuiet      = "--quiet"
	FlagNoWarnings = "--no-warnings"
)

// JSON fields read from a search result line
const (
	FieldID    = "id"
	FieldTitle = "title"
)

const opSearch = "search"

// Searcher resolves a free-text query to its top match
type Searcher interface {
	Search(ctx context.Context, query string) (*model.VideoRecord, error)
}

// SearchService resolves queries through yt-dlp's ytsearch extractor.
//
// Only the first result line is considered: a search resolves the top hit and
// never returns a ranked list.
type SearchService struct {
	runner  Runner
	results int
	log     logrus.FieldLogger
}

// NewSearchService creates a new search service
func NewSearchService(runner Runner, log logrus.FieldLogger) *SearchService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SearchService{
		runner:  runner,
		results: DefaultSearchResults,
		log:     log.WithField("component", opSearch),
	}
}

// Search returns the top match for query, or nil when yt-dlp found nothing
func (s *SearchService) Search(ctx context.Context, query string) (*model.VideoRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	log := s.log.WithField("query", query)
	log.Debug("searching")

	result, err := s.runner.Run(ctx, s.BuildSearchArgs(query))
	if err != nil {
		return nil, &ExecutionError{Op: opSearch, Err: err}
	}
	if !result.Success() {
		log.WithField("exit_code", result.ExitCode).Warn("yt-dlp search failed")
		return nil, &ToolError{Op: opSearch, ExitCode: result.ExitCode, Stderr: result.Stderr}
	}

	video, err := parseFirstResult(result.Stdout)
	if err != nil {
		return nil, err
	}
	if video == nil {
		log.Info("no match")
		return nil, nil
	}

	log.WithField("video_id", video.ID).Info("match found")
	return video, nil
}

// BuildSearchArgs builds the yt-dlp arguments for a search
func (s *SearchService) BuildSearchArgs(query string) []string {
	return []string{
		FlagDumpJSON,
		FlagNoDownload,
		FlagQuiet,
		FlagNoWarnings,
		fmt.Sprintf(SearchPrefixFormat, s.results) + query,
	}
}

// parseFirstResult parses the first non-blank JSON line of yt-dlp output
func parseFirstResult(output string) (*model.VideoRecord, error) {
	var line string
	for _, l := range strings.Split(output, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	if line == "" {
		return nil, nil
	}

	var videoData map[string]interface{}
	if err := json.Unmarshal([]byte(line), &videoData); err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	id, ok := videoData[FieldID].(string)
	if !ok || id == "" {
		return nil, &MissingFieldError{Field: FieldID}
	}
	title, _ := videoData[FieldTitle].(string)

	return model.NewVideoRecord(id, title), nil
}
