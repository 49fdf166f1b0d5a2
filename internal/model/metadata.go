package model

// Default values used when the tool output lacks a field
const (
	UnknownTitle      = "Unknown Title"
	UnknownResolution = "Unknown"
)

// VideoMetadata describes the video behind a submitted URL.
// It is produced once per task and never modified afterwards.
type VideoMetadata struct {
	Title           string
	DurationSeconds int
	ThumbnailURL    string
	Resolution      string
	ApproxSizeMB    int
}

// IsZero reports whether no metadata has been set
func (m VideoMetadata) IsZero() bool {
	return m == VideoMetadata{}
}

// DisplayTitle returns the title, or the URL when the title is unusable
func (m VideoMetadata) DisplayTitle(url string) string {
	if m.Title != "" && m.Title != UnknownTitle {
		return m.Title
	}
	if url != "" {
		return url
	}
	return m.Title
}
