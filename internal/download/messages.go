package download

// Status messages shown while a task progresses
const (
	StatusFetching    = "Fetching video information..."
	StatusInfoLoaded  = "Video information loaded successfully"
	StatusStarting    = "Starting download..."
	StatusDownloading = "Downloading... %d%%"
	StatusCompleted   = "Download completed successfully!"
	StatusCancelled   = "Download cancelled"
	statusNone        = ""
)

// Failure reasons
const (
	MsgToolNotFound   = "yt-dlp not found at %s. Please install it using 'brew install yt-dlp'"
	MsgRunFailed      = "Failed to run yt-dlp: %s"
	MsgStartFailed    = "Failed to start download: %s"
	MsgFetchTimedOut  = "Timed out fetching video information after %s"
	MsgUnknownError   = "Unknown error occurred"
	MsgDownloadFailed = "Download failed"
)
