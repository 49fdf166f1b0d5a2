package download

import (
	"fmt"
	"strings"

	"github.com/ytget/yt-menubar/internal/model"
)

// ToolExecutionError reports a non-zero yt-dlp exit.
type ToolExecutionError struct {
	Phase    model.Phase
	ExitCode int
	Stderr   string
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("yt-dlp exited with code %d during %s: %s", e.ExitCode, e.Phase, e.Reason())
}

// Reason is the trimmed stderr text, or a generic message when it is empty.
func (e *ToolExecutionError) Reason() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	return MsgUnknownError
}
