package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestToolExists(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write tool: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "existing file", path: tool, expected: true},
		{name: "missing file", path: filepath.Join(dir, "missing"), expected: false},
		{name: "directory", path: dir, expected: false},
		{name: "empty path", path: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToolExists(tt.path); got != tt.expected {
				t.Errorf("ToolExists(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestDefaultToolPath(t *testing.T) {
	path := DefaultToolPath()
	if path == "" {
		t.Fatal("DefaultToolPath returned empty string")
	}
	if runtime.GOOS == OSDarwin && path != HomebrewToolPath {
		t.Errorf("expected %s on macOS, got %s", HomebrewToolPath, path)
	}
	if filepath.Base(path) != ToolName && !strings.HasPrefix(filepath.Base(path), ToolName) {
		t.Errorf("expected a yt-dlp binary path, got %s", path)
	}
}

func TestOutputTemplate(t *testing.T) {
	got := OutputTemplate("/tmp/videos")
	expected := filepath.Join("/tmp/videos", "%(title)s.%(ext)s")
	if got != expected {
		t.Errorf("OutputTemplate() = %s, expected %s", got, expected)
	}
}

func TestOpenFolder_NonExistent(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Expected error for non-existent folder, got nil")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOpenFolder_File(t *testing.T) {
	f := filepath.Join(t.TempDir(), "video.mp4")
	if err := os.WriteFile(f, nil, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := OpenFolder(f)
	if err == nil || !strings.Contains(err.Error(), "not a folder") {
		t.Errorf("expected 'not a folder' error, got %v", err)
	}
}
