package model

// Snapshot is the read-only projection of a TaskState consumed by the UI.
// It is a plain value; holding one never affects the orchestrator.
type Snapshot struct {
	TaskID string
	Phase  Phase
	URL    string
	VideoMetadata

	ProgressPercent int
	StatusMessage   string
	ErrorMessage    string

	IsFetchingOrDownloading bool
	IsVideoInfoLoaded       bool
	IsDownloadCompleted     bool
	HasError                bool
}

// NewSnapshot projects state together with the current status line
func NewSnapshot(state TaskState, status string) Snapshot {
	snap := Snapshot{
		TaskID:          state.ID,
		Phase:           state.Phase,
		URL:             state.URL,
		VideoMetadata:   state.Metadata,
		ProgressPercent: state.ProgressPercent,
		StatusMessage:   status,

		IsFetchingOrDownloading: state.Phase.IsActive(),
		IsDownloadCompleted:     state.Phase == PhaseCompleted,
	}

	switch state.Phase {
	case PhaseMetadataReady, PhaseDownloading, PhaseCompleted:
		snap.IsVideoInfoLoaded = true
	case PhaseFailed:
		snap.ErrorMessage = state.Reason
		snap.HasError = true
	}

	return snap
}

// DownloadedMB estimates the downloaded amount from the progress and the
// approximate size
func (s Snapshot) DownloadedMB() int {
	return s.ProgressPercent * s.ApproxSizeMB / MaxProgressPercent
}
