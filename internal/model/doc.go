package model

// Package model defines the domain data of a single download task: video
// metadata, the task phase enum, the TaskState value with its transition
// functions, and the read-only Snapshot handed to the presentation layer.
