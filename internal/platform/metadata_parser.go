package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ytget/yt-menubar/internal/model"
)

// BytesPerMB converts the reported filesize into whole megabytes.
const BytesPerMB = 1024 * 1024

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// ErrNoJSONFound is returned when the tool output has no JSON line.
var ErrNoJSONFound = errors.New("no JSON object found in yt-dlp output")

// MalformedJSONError is returned when the JSON line cannot be decoded as an object.
type MalformedJSONError struct {
	Line string
	Err  error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in yt-dlp output: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// ParseMetadata extracts video metadata from the output of `yt-dlp --dump-json`.
// Warnings and other noise around the JSON line are ignored.
func ParseMetadata(raw string) (model.VideoMetadata, error) {
	line, ok := findJSONLine(raw)
	if !ok {
		return model.VideoMetadata{}, ErrNoJSONFound
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(line), &doc); err != nil {
		return model.VideoMetadata{}, &MalformedJSONError{Line: line, Err: err}
	}

	meta := model.VideoMetadata{
		Title:           model.UnknownTitle,
		DurationSeconds: wholeNumber(doc["duration"]),
		Resolution:      model.UnknownResolution,
	}
	if title, ok := doc["title"].(string); ok {
		meta.Title = title
	}
	if thumb, ok := doc["thumbnail"].(string); ok {
		meta.ThumbnailURL = thumb
	}

	// yt-dlp sorts formats worst to best
	if formats, ok := doc["formats"].([]any); ok && len(formats) > 0 {
		if best, ok := formats[len(formats)-1].(map[string]any); ok {
			if res, ok := best["resolution"].(string); ok {
				meta.Resolution = res
			}
			meta.ApproxSizeMB = wholeNumber(best["filesize"]) / BytesPerMB
		}
	}

	return meta, nil
}

func findJSONLine(raw string) (string, bool) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "{") && strings.HasSuffix(line, "}") {
			return line, true
		}
	}
	return "", false
}

// wholeNumber truncates a JSON number toward zero. Anything else, including
// negative values, yields 0.
func wholeNumber(v any) int {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

// FormatDuration formats seconds as h:mm:ss, or m:ss below one hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
