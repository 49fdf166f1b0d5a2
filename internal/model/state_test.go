package model

import (
	"errors"
	"strings"
	"testing"
)

var sampleMetadata = VideoMetadata{
	Title:           "Sample",
	DurationSeconds: 125,
	Resolution:      "1920x1080",
	ApproxSizeMB:    100,
}

func downloadingState(t *testing.T) TaskState {
	t.Helper()
	s, err := NewIdle().Fetching("task-1", "https://youtube.com/watch?v=1")
	if err != nil {
		t.Fatalf("Fetching: %v", err)
	}
	s, err = s.WithMetadata(sampleMetadata)
	if err != nil {
		t.Fatalf("WithMetadata: %v", err)
	}
	s, err = s.BeginDownload()
	if err != nil {
		t.Fatalf("BeginDownload: %v", err)
	}
	return s
}

func TestTaskState_HappyPath(t *testing.T) {
	s := downloadingState(t)

	if s.Phase != PhaseDownloading {
		t.Fatalf("expected Downloading, got %s", s.Phase)
	}
	if s.ProgressPercent != 0 {
		t.Errorf("expected progress 0, got %d", s.ProgressPercent)
	}
	if s.Metadata != sampleMetadata {
		t.Errorf("metadata not carried into Downloading: %+v", s.Metadata)
	}

	s, _ = s.WithProgress(97)
	done, err := s.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if done.ProgressPercent != 100 {
		t.Errorf("expected progress forced to 100, got %d", done.ProgressPercent)
	}
	if done.Metadata != sampleMetadata {
		t.Errorf("expected metadata on Completed, got %+v", done.Metadata)
	}
	if done.ID != "task-1" {
		t.Errorf("expected task ID to survive, got %q", done.ID)
	}
}

func TestTaskState_TransitionsDoNotMutateReceiver(t *testing.T) {
	s := downloadingState(t)
	next, changed := s.WithProgress(40)

	if !changed {
		t.Fatal("expected progress change")
	}
	if s.ProgressPercent != 0 {
		t.Errorf("receiver modified: progress %d", s.ProgressPercent)
	}
	if next.ProgressPercent != 40 {
		t.Errorf("expected 40, got %d", next.ProgressPercent)
	}
}

func TestTaskState_WithProgress(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		report   int
		expected int
		changed  bool
	}{
		{name: "increase", start: 10, report: 45, expected: 45, changed: true},
		{name: "regression ignored", start: 60, report: 12, expected: 60, changed: false},
		{name: "same value", start: 60, report: 60, expected: 60, changed: false},
		{name: "clamped to 100", start: 99, report: 250, expected: 100, changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := downloadingState(t)
			s.ProgressPercent = tt.start

			next, changed := s.WithProgress(tt.report)
			if changed != tt.changed {
				t.Errorf("changed = %v, expected %v", changed, tt.changed)
			}
			if next.ProgressPercent != tt.expected {
				t.Errorf("progress = %d, expected %d", next.ProgressPercent, tt.expected)
			}
		})
	}
}

func TestTaskState_WithProgressOutsideDownloading(t *testing.T) {
	s, _ := NewIdle().Fetching("task-1", "u")
	next, changed := s.WithProgress(50)
	if changed || next.ProgressPercent != 0 {
		t.Errorf("progress must not change outside Downloading, got %d", next.ProgressPercent)
	}
}

func TestTaskState_InvalidTransitions(t *testing.T) {
	idle := NewIdle()
	fetching, _ := idle.Fetching("id", "u")
	ready, _ := fetching.WithMetadata(sampleMetadata)
	failed, _ := fetching.Fail("boom")

	tests := []struct {
		name string
		run  func() (TaskState, error)
		from TaskState
	}{
		{name: "submit while fetching", from: fetching, run: func() (TaskState, error) { return fetching.Fetching("id2", "u2") }},
		{name: "submit while ready", from: ready, run: func() (TaskState, error) { return ready.Fetching("id2", "u2") }},
		{name: "metadata from idle", from: idle, run: func() (TaskState, error) { return idle.WithMetadata(sampleMetadata) }},
		{name: "download from fetching", from: fetching, run: func() (TaskState, error) { return fetching.BeginDownload() }},
		{name: "complete from ready", from: ready, run: func() (TaskState, error) { return ready.Complete() }},
		{name: "cancel from ready", from: ready, run: func() (TaskState, error) { return ready.Cancel() }},
		{name: "cancel from idle", from: idle, run: func() (TaskState, error) { return idle.Cancel() }},
		{name: "fail when already failed", from: failed, run: func() (TaskState, error) { return failed.Fail("again") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			if !errors.Is(err, ErrInvalidState) {
				t.Fatalf("expected ErrInvalidState, got %v", err)
			}
			if got != tt.from {
				t.Errorf("state changed on invalid transition: %+v", got)
			}
		})
	}
}

func TestTaskState_SubmitFromTerminalPhases(t *testing.T) {
	fetching, _ := NewIdle().Fetching("old", "old-url")
	cancelled, _ := fetching.Cancel()
	failed, _ := fetching.Fail("boom")

	for _, from := range []TaskState{cancelled, failed} {
		next, err := from.Fetching("new", "new-url")
		if err != nil {
			t.Fatalf("Fetching from %s: %v", from.Phase, err)
		}
		if next.ID != "new" || next.URL != "new-url" || next.Reason != "" {
			t.Errorf("expected a fresh state, got %+v", next)
		}
	}
}

func TestTaskState_FailFromIdle(t *testing.T) {
	s, err := NewIdle().Fail("tool missing")
	if err != nil {
		t.Fatalf("Fail from Idle: %v", err)
	}
	if s.Phase != PhaseFailed || s.Reason != "tool missing" {
		t.Errorf("unexpected state %+v", s)
	}
}

func TestNewTaskID(t *testing.T) {
	id1 := NewTaskID()
	id2 := NewTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}

	// task- + 36 chars for UUID
	if len(id1) != len(TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(TaskIDPrefix)+36, len(id1), id1)
	}
}
