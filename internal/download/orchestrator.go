package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/yt-menubar/internal/model"
	"github.com/ytget/yt-menubar/internal/platform"
)

// Defaults
const (
	DefaultFetchTimeout = 60 * time.Second
	eventQueueSize      = 64
	outputTailBytes     = 4096
)

// yt-dlp arguments
var (
	fetchArgs    = []string{"--dump-json", "--no-playlist", "--quiet"}
	downloadArgs = []string{"--format", "best", "--progress", "--no-playlist"}
)

// Options configures an Orchestrator. Zero values fall back to defaults.
type Options struct {
	ToolPath     string
	DownloadDir  string
	FetchTimeout time.Duration
	Runner       Runner
	Logger       *zap.Logger
}

// activeHandle identifies the one subprocess the orchestrator is tracking.
// id 0 means no subprocess.
type activeHandle struct {
	id        uint64
	terminate func()
}

type subscriber struct {
	id int
	fn func(model.Snapshot)
}

// Orchestrator runs the fetch and download lifecycle of one task at a time.
type Orchestrator struct {
	toolPath     string
	downloadDir  string
	fetchTimeout time.Duration
	runner       Runner
	logger       *zap.Logger

	ctx       context.Context
	cancelCtx context.CancelFunc
	events    chan func()
	done      chan struct{}
	closeOnce sync.Once

	// Owned by the loop goroutine.
	state       model.TaskState
	status      string
	handle      activeHandle
	lastHandle  uint64
	chain       bool
	outputTail  string
	subscribers []subscriber
	lastSubID   int

	// Published copies for readers on other goroutines.
	snapMu  sync.RWMutex
	snap    model.Snapshot
	lastErr error
}

// New creates an orchestrator and starts its goroutine. When the tool is
// missing the orchestrator starts in Failed with an install hint.
func New(opts Options) *Orchestrator {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ToolPath == "" {
		opts.ToolPath = platform.DefaultToolPath()
	}
	if opts.DownloadDir == "" {
		if dir, err := platform.GetHomeDownloadsDir(); err == nil {
			opts.DownloadDir = dir
		}
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.Runner == nil {
		opts.Runner = platform.NewRunner(opts.Logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	o := &Orchestrator{
		toolPath:     opts.ToolPath,
		downloadDir:  opts.DownloadDir,
		fetchTimeout: opts.FetchTimeout,
		runner:       opts.Runner,
		logger:       opts.Logger,
		ctx:          ctx,
		cancelCtx:    cancel,
		events:       make(chan func(), eventQueueSize),
		done:         make(chan struct{}),
		state:        model.NewIdle(),
	}
	o.snap = model.NewSnapshot(o.state, statusNone)

	if !platform.ToolExists(o.toolPath) {
		reason := fmt.Sprintf(MsgToolNotFound, o.toolPath)
		o.logger.Warn("yt-dlp not found", zap.String("path", o.toolPath))
		o.fail(reason, &platform.SpawnError{Path: o.toolPath, Err: errors.New("file not found")})
	}

	go o.loop()
	return o
}

// DownloadDir returns the directory downloads are written to.
func (o *Orchestrator) DownloadDir() string {
	return o.downloadDir
}

// SubmitURL starts a new task for url. It is ignored (false) for a blank URL,
// for input yt-dlp would read as an option, or while a task is in progress or
// waiting for StartDownload. The call blocks until the metadata fetch
// resolves; Cancel and Reset from other goroutines still take effect meanwhile.
func (o *Orchestrator) SubmitURL(ctx context.Context, url string, mode Mode) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}
	if strings.HasPrefix(url, "-") {
		o.logger.Warn("rejected option-like URL", zap.String("url", url))
		return false
	}

	var (
		accepted bool
		id       uint64
		fetchCtx context.Context
		cancel   context.CancelFunc
	)
	o.call(func() {
		next, err := o.state.Fetching(model.NewTaskID(), url)
		if err != nil {
			o.logger.Debug("submit ignored", zap.String("url", url), zap.Error(err))
			return
		}
		accepted = true
		fetchCtx, cancel = context.WithTimeout(ctx, o.fetchTimeout)
		id = o.track(cancel)
		o.chain = mode == FetchAndDownload
		o.setLastError(nil)
		o.logger.Info("submitted URL",
			zap.String("task_id", next.ID),
			zap.String("url", url),
			zap.Stringer("mode", mode))
		o.transition(next, StatusFetching)
	})
	if !accepted {
		return false
	}

	args := append(append([]string{}, fetchArgs...), url)
	res, err := o.runner.Run(fetchCtx, o.toolPath, args...)
	cancel()

	o.call(func() { o.finishFetch(id, res, err) })
	return true
}

// StartDownload begins the download of a task whose metadata is ready.
func (o *Orchestrator) StartDownload() bool {
	var ok bool
	o.call(func() { ok = o.startDownload() })
	return ok
}

// Cancel aborts a running fetch or download. Output arriving later from the
// aborted subprocess is discarded.
func (o *Orchestrator) Cancel() bool {
	var ok bool
	o.call(func() {
		next, err := o.state.Cancel()
		if err != nil {
			o.logger.Debug("cancel ignored", zap.Error(err))
			return
		}
		o.terminateActive()
		o.chain = false
		o.logger.Info("task cancelled", zap.String("task_id", next.ID))
		o.transition(next, StatusCancelled)
		ok = true
	})
	return ok
}

// Reset stops any running subprocess and returns to Idle.
func (o *Orchestrator) Reset() {
	o.call(func() {
		o.terminateActive()
		o.chain = false
		o.outputTail = ""
		o.setLastError(nil)
		o.logger.Debug("reset", zap.String("task_id", o.state.ID), zap.Stringer("phase", o.state.Phase))
		o.transition(model.NewIdle(), statusNone)
	})
}

// Snapshot returns the latest published state.
func (o *Orchestrator) Snapshot() model.Snapshot {
	o.snapMu.RLock()
	defer o.snapMu.RUnlock()
	return o.snap
}

// LastError returns the error behind the current Failed state, if any.
func (o *Orchestrator) LastError() error {
	o.snapMu.RLock()
	defer o.snapMu.RUnlock()
	return o.lastErr
}

// Subscribe registers fn for every state change and immediately sends it the
// current snapshot. Callbacks run on the orchestrator goroutine in transition
// order; they must return quickly and must not call back into the
// orchestrator synchronously.
func (o *Orchestrator) Subscribe(fn func(model.Snapshot)) (unsubscribe func()) {
	var id int
	registered := o.call(func() {
		o.lastSubID++
		id = o.lastSubID
		o.subscribers = append(o.subscribers, subscriber{id: id, fn: fn})
		fn(model.NewSnapshot(o.state, o.status))
	})
	if !registered {
		return func() {}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			o.call(func() {
				for i, s := range o.subscribers {
					if s.id == id {
						o.subscribers = append(o.subscribers[:i], o.subscribers[i+1:]...)
						return
					}
				}
			})
		})
	}
}

// Close terminates any running subprocess and stops the orchestrator.
func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		o.call(o.terminateActive)
		o.cancelCtx()
		close(o.done)
	})
}

func (o *Orchestrator) loop() {
	for {
		select {
		case fn := <-o.events:
			fn()
		case <-o.done:
			return
		}
	}
}

// post queues fn for the loop goroutine. It returns false once closed.
func (o *Orchestrator) post(fn func()) bool {
	select {
	case <-o.done:
		return false
	default:
	}
	select {
	case o.events <- fn:
		return true
	case <-o.done:
		return false
	}
}

// call runs fn on the loop goroutine and waits for it.
func (o *Orchestrator) call(fn func()) bool {
	finished := make(chan struct{})
	if !o.post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-o.done:
		return false
	}
}

// track makes a new subprocess episode the active one.
func (o *Orchestrator) track(terminate func()) uint64 {
	o.lastHandle++
	o.handle = activeHandle{id: o.lastHandle, terminate: terminate}
	return o.lastHandle
}

func (o *Orchestrator) isLive(id uint64) bool {
	return o.handle.id != 0 && o.handle.id == id
}

func (o *Orchestrator) terminateActive() {
	if o.handle.id == 0 {
		return
	}
	o.logger.Debug("terminating subprocess", zap.Uint64("handle", o.handle.id))
	o.handle.terminate()
	o.handle = activeHandle{}
}

func (o *Orchestrator) finishFetch(id uint64, res platform.Result, err error) {
	if !o.isLive(id) {
		o.logger.Debug("discarding stale fetch result", zap.Uint64("handle", id))
		return
	}
	o.handle = activeHandle{}

	var spawnErr *platform.SpawnError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		o.fail(fmt.Sprintf(MsgFetchTimedOut, o.fetchTimeout), err)
	case errors.Is(err, context.Canceled):
		// The caller's context ended before the tool did.
		if next, cerr := o.state.Cancel(); cerr == nil {
			o.chain = false
			o.transition(next, StatusCancelled)
		}
	case errors.As(err, &spawnErr):
		o.fail(fmt.Sprintf(MsgRunFailed, spawnErr.Err.Error()), err)
	case err != nil:
		o.fail(fmt.Sprintf(MsgRunFailed, err.Error()), err)
	case res.ExitCode != 0:
		toolErr := &ToolExecutionError{Phase: model.PhaseFetchingMetadata, ExitCode: res.ExitCode, Stderr: res.Stderr}
		o.fail(toolErr.Reason(), toolErr)
	default:
		meta, perr := platform.ParseMetadata(res.Stdout)
		if perr != nil {
			o.fail(perr.Error(), perr)
			return
		}
		next, terr := o.state.WithMetadata(meta)
		if terr != nil {
			o.logger.Debug("metadata ignored", zap.Error(terr))
			return
		}
		o.logger.Info("metadata loaded",
			zap.String("task_id", next.ID),
			zap.String("title", meta.Title),
			zap.Int("duration", meta.DurationSeconds))
		o.transition(next, StatusInfoLoaded)

		if o.chain {
			o.startDownload()
		}
	}
}

func (o *Orchestrator) startDownload() bool {
	next, err := o.state.BeginDownload()
	if err != nil {
		o.logger.Debug("start download ignored", zap.Error(err))
		return false
	}
	o.chain = false
	o.outputTail = ""
	url := o.state.URL
	o.transition(next, StatusStarting)

	if err := platform.CreateDirectoryIfNotExists(o.downloadDir); err != nil {
		o.fail(fmt.Sprintf(MsgStartFailed, err.Error()), err)
		return true
	}

	// The handle ID is reserved before the subprocess exists so chunk
	// callbacks can carry it.
	o.lastHandle++
	id := o.lastHandle

	args := append([]string{"--output", platform.OutputTemplate(o.downloadDir)}, downloadArgs...)
	args = append(args, url)
	proc, err := o.runner.Stream(o.ctx, o.toolPath, args, func(chunk string) {
		o.post(func() { o.applyChunk(id, chunk) })
	})
	if err != nil {
		msg := err.Error()
		var spawnErr *platform.SpawnError
		if errors.As(err, &spawnErr) {
			msg = spawnErr.Err.Error()
		}
		o.fail(fmt.Sprintf(MsgStartFailed, msg), err)
		return true
	}

	o.handle = activeHandle{id: id, terminate: proc.Terminate}
	o.logger.Info("download started",
		zap.String("task_id", next.ID),
		zap.String("url", url),
		zap.Uint64("handle", id))

	go func() {
		code, werr := proc.Wait()
		o.post(func() { o.finishDownload(id, code, werr) })
	}()
	return true
}

func (o *Orchestrator) applyChunk(id uint64, chunk string) {
	if !o.isLive(id) {
		return
	}
	o.outputTail = tail(o.outputTail+chunk, outputTailBytes)

	percent, ok := platform.ScanProgress(chunk)
	if !ok {
		return
	}
	next, changed := o.state.WithProgress(percent)
	if !changed {
		return
	}
	o.logger.Debug("progress", zap.String("task_id", next.ID), zap.Int("percent", next.ProgressPercent))
	o.transition(next, fmt.Sprintf(StatusDownloading, next.ProgressPercent))
}

func (o *Orchestrator) finishDownload(id uint64, code int, err error) {
	if !o.isLive(id) {
		o.logger.Debug("discarding stale exit", zap.Uint64("handle", id), zap.Int("exit_code", code))
		return
	}
	o.handle = activeHandle{}

	if err != nil || code != 0 {
		toolErr := &ToolExecutionError{Phase: model.PhaseDownloading, ExitCode: code, Stderr: o.outputTail}
		if err != nil {
			o.fail(MsgDownloadFailed, fmt.Errorf("%w: %w", toolErr, err))
		} else {
			o.fail(MsgDownloadFailed, toolErr)
		}
		return
	}

	next, cerr := o.state.Complete()
	if cerr != nil {
		o.logger.Debug("completion ignored", zap.Error(cerr))
		return
	}
	o.outputTail = ""
	o.logger.Info("download completed", zap.String("task_id", next.ID), zap.String("title", next.Metadata.Title))
	o.transition(next, StatusCompleted)
}

// fail moves to Failed with reason. err is kept for LastError and logging.
func (o *Orchestrator) fail(reason string, err error) {
	next, ferr := o.state.Fail(reason)
	if ferr != nil {
		o.logger.Debug("failure ignored", zap.Error(ferr))
		return
	}
	o.chain = false
	o.setLastError(err)
	o.logger.Error("task failed",
		zap.String("task_id", next.ID),
		zap.String("reason", reason),
		zap.Error(err))
	o.transition(next, statusNone)
}

func (o *Orchestrator) setLastError(err error) {
	o.snapMu.Lock()
	o.lastErr = err
	o.snapMu.Unlock()
}

// transition installs next as the current state and notifies subscribers.
func (o *Orchestrator) transition(next model.TaskState, status string) {
	o.state = next
	o.status = status
	snap := model.NewSnapshot(next, status)

	o.snapMu.Lock()
	o.snap = snap
	o.snapMu.Unlock()

	for _, s := range o.subscribers {
		s.fn(snap)
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
