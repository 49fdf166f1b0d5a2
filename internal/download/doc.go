// Package download drives yt-dlp through the lifecycle of a single video:
// metadata fetch, download with progress, and the terminal outcome.
//
// The Orchestrator owns the task state on one goroutine. Commands from the
// UI and events from the running subprocess are queued onto that goroutine in
// order, and every accepted transition is published as a model.Snapshot.
package download
