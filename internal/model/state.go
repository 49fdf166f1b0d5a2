package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidState is returned when a transition is not allowed from the current phase
var ErrInvalidState = errors.New("invalid state for operation")

// TaskIDPrefix is prepended to every generated task ID
const TaskIDPrefix = "task-"

// MaxProgressPercent is the upper bound of ProgressPercent
const MaxProgressPercent = 100

// TaskState is the state of the current task. Payload fields are only
// meaningful for the phases that carry them:
//
//	FetchingMetadata: URL
//	MetadataReady:    URL, Metadata
//	Downloading:      URL, Metadata, ProgressPercent
//	Completed:        Metadata (ProgressPercent is always 100)
//	Failed:           Reason
//
// Transition methods never modify the receiver; they return a new value.
type TaskState struct {
	ID              string
	Phase           Phase
	URL             string
	Metadata        VideoMetadata
	ProgressPercent int
	Reason          string
}

// NewIdle returns an empty Idle state
func NewIdle() TaskState {
	return TaskState{Phase: PhaseIdle}
}

// NewTaskID generates a unique, time ordered task ID
func NewTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

// Fetching starts a new task for url. Allowed from Idle and terminal phases.
func (s TaskState) Fetching(id, url string) (TaskState, error) {
	if !s.Phase.AcceptsSubmit() {
		return s, invalidTransition(s.Phase, PhaseFetchingMetadata)
	}
	return TaskState{ID: id, Phase: PhaseFetchingMetadata, URL: url}, nil
}

// WithMetadata stores the parsed metadata. Allowed from FetchingMetadata.
func (s TaskState) WithMetadata(m VideoMetadata) (TaskState, error) {
	if s.Phase != PhaseFetchingMetadata {
		return s, invalidTransition(s.Phase, PhaseMetadataReady)
	}
	return TaskState{ID: s.ID, Phase: PhaseMetadataReady, URL: s.URL, Metadata: m}, nil
}

// BeginDownload enters Downloading with zero progress. Allowed from MetadataReady.
func (s TaskState) BeginDownload() (TaskState, error) {
	if s.Phase != PhaseMetadataReady {
		return s, invalidTransition(s.Phase, PhaseDownloading)
	}
	next := s
	next.Phase = PhaseDownloading
	next.ProgressPercent = 0
	return next, nil
}

// WithProgress applies a progress report. Lower values than the current
// progress are ignored and values above 100 are clamped. The boolean result
// tells whether the progress changed.
func (s TaskState) WithProgress(percent int) (TaskState, bool) {
	if s.Phase != PhaseDownloading {
		return s, false
	}
	if percent > MaxProgressPercent {
		percent = MaxProgressPercent
	}
	if percent <= s.ProgressPercent {
		return s, false
	}
	next := s
	next.ProgressPercent = percent
	return next, true
}

// Complete finishes a download. Progress is forced to 100.
func (s TaskState) Complete() (TaskState, error) {
	if s.Phase != PhaseDownloading {
		return s, invalidTransition(s.Phase, PhaseCompleted)
	}
	return TaskState{
		ID:              s.ID,
		Phase:           PhaseCompleted,
		Metadata:        s.Metadata,
		ProgressPercent: MaxProgressPercent,
	}, nil
}

// Cancel aborts a running phase
func (s TaskState) Cancel() (TaskState, error) {
	if !s.Phase.IsActive() {
		return s, invalidTransition(s.Phase, PhaseCancelled)
	}
	return TaskState{ID: s.ID, Phase: PhaseCancelled}, nil
}

// Fail records a terminal error. Allowed from any non-terminal phase,
// including Idle (used when the tool is missing at startup).
func (s TaskState) Fail(reason string) (TaskState, error) {
	if s.Phase.IsFinished() {
		return s, invalidTransition(s.Phase, PhaseFailed)
	}
	return TaskState{ID: s.ID, Phase: PhaseFailed, Reason: reason}, nil
}

func invalidTransition(from, to Phase) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidState, from, to)
}
