package model

import "testing"

func TestNewSnapshot_Flags(t *testing.T) {
	tests := []struct {
		name        string
		state       TaskState
		busy        bool
		infoLoaded  bool
		completed   bool
		hasError    bool
		errorString string
	}{
		{name: "idle", state: NewIdle()},
		{name: "fetching", state: TaskState{Phase: PhaseFetchingMetadata}, busy: true},
		{name: "ready", state: TaskState{Phase: PhaseMetadataReady}, infoLoaded: true},
		{name: "downloading", state: TaskState{Phase: PhaseDownloading}, busy: true, infoLoaded: true},
		{name: "completed", state: TaskState{Phase: PhaseCompleted}, infoLoaded: true, completed: true},
		{name: "cancelled", state: TaskState{Phase: PhaseCancelled}},
		{name: "failed", state: TaskState{Phase: PhaseFailed, Reason: "boom"}, hasError: true, errorString: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewSnapshot(tt.state, "status")

			if snap.IsFetchingOrDownloading != tt.busy {
				t.Errorf("IsFetchingOrDownloading = %v, expected %v", snap.IsFetchingOrDownloading, tt.busy)
			}
			if snap.IsVideoInfoLoaded != tt.infoLoaded {
				t.Errorf("IsVideoInfoLoaded = %v, expected %v", snap.IsVideoInfoLoaded, tt.infoLoaded)
			}
			if snap.IsDownloadCompleted != tt.completed {
				t.Errorf("IsDownloadCompleted = %v, expected %v", snap.IsDownloadCompleted, tt.completed)
			}
			if snap.HasError != tt.hasError {
				t.Errorf("HasError = %v, expected %v", snap.HasError, tt.hasError)
			}
			if snap.ErrorMessage != tt.errorString {
				t.Errorf("ErrorMessage = %q, expected %q", snap.ErrorMessage, tt.errorString)
			}
			if snap.StatusMessage != "status" {
				t.Errorf("StatusMessage = %q", snap.StatusMessage)
			}
		})
	}
}

func TestNewSnapshot_CopiesMetadata(t *testing.T) {
	state := TaskState{
		ID:              "task-1",
		Phase:           PhaseDownloading,
		URL:             "https://youtube.com/watch?v=1",
		Metadata:        VideoMetadata{Title: "X", DurationSeconds: 125, Resolution: "1920x1080", ApproxSizeMB: 100},
		ProgressPercent: 45,
	}

	snap := NewSnapshot(state, "")
	if snap.Title != "X" || snap.DurationSeconds != 125 || snap.Resolution != "1920x1080" || snap.ApproxSizeMB != 100 {
		t.Errorf("metadata fields not projected: %+v", snap.VideoMetadata)
	}
	if snap.TaskID != "task-1" || snap.URL != state.URL || snap.ProgressPercent != 45 {
		t.Errorf("task fields not projected: %+v", snap)
	}
	if got := snap.DownloadedMB(); got != 45 {
		t.Errorf("DownloadedMB() = %d, expected 45", got)
	}
}

func TestVideoMetadata_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Video Title", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{UnknownTitle, "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
		{UnknownTitle, "", UnknownTitle},
	}

	for _, test := range tests {
		m := VideoMetadata{Title: test.title}
		result := m.DisplayTitle(test.url)
		if result != test.expected {
			t.Errorf("DisplayTitle() with title='%s', url='%s' = '%s', expected '%s'",
				test.title, test.url, result, test.expected)
		}
	}
}
