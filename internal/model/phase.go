package model

// Phase is the tag of a TaskState
type Phase string

const (
	// PhaseIdle means no URL has been submitted
	PhaseIdle Phase = "Idle"

	// PhaseFetchingMetadata means the metadata subprocess is running
	PhaseFetchingMetadata Phase = "FetchingMetadata"

	// PhaseMetadataReady means metadata is known and no download was started yet
	PhaseMetadataReady Phase = "MetadataReady"

	// PhaseDownloading means the download subprocess is running
	PhaseDownloading Phase = "Downloading"

	// PhaseCompleted means the download subprocess exited successfully
	PhaseCompleted Phase = "Completed"

	// PhaseCancelled means the user aborted a running subprocess
	PhaseCancelled Phase = "Cancelled"

	// PhaseFailed means a phase ended with an error
	PhaseFailed Phase = "Failed"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while a subprocess is expected to be running
func (p Phase) IsActive() bool {
	return p == PhaseFetchingMetadata || p == PhaseDownloading
}

// IsFinished returns true for terminal phases (completed, cancelled, or failed)
func (p Phase) IsFinished() bool {
	return p == PhaseCompleted || p == PhaseCancelled || p == PhaseFailed
}

// AcceptsSubmit reports whether a new URL may be submitted from this phase
func (p Phase) AcceptsSubmit() bool {
	return p == PhaseIdle || p.IsFinished()
}
