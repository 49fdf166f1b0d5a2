// Package platform contains OS integration and yt-dlp glue: launching the
// tool as a subprocess, parsing its metadata and progress output, and
// filesystem helpers such as the Downloads folder and folder reveal.
package platform
