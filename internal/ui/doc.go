// Package ui is the Fyne menu-bar front end. It renders orchestrator
// snapshots as one of four views (input, progress, finish, error) and turns
// user actions into download.Controller commands. All UI strings are
// localized via Localization.
package ui
