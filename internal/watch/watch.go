package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/DataPlatform/internal/logger"
)

// Change is delivered after the watched file settles
type Change struct {
	Path    string
	Data    []byte
	Removed bool
}

// Handler receives file changes
type Handler func(Change)

// ErrorHandler receives watcher and read errors
type ErrorHandler func(error)

// FileWatcher reports changes to a single file.
// The parent directory is watched so editors that replace the file
// through a rename are still observed.
type FileWatcher struct {
	path        string
	debounce    time.Duration
	initialRead bool
	onChange    Handler
	onError     ErrorHandler
	log         *logger.Logger
}

// Option configures a FileWatcher
type Option func(*FileWatcher)

// WithDebounce sets the quiet period before a change is delivered
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) { w.debounce = d }
}

// WithInitialRead delivers the current contents once when Run starts.
// Nothing is delivered if the file does not exist yet.
func WithInitialRead() Option {
	return func(w *FileWatcher) { w.initialRead = true }
}

// WithErrorHandler sets the error callback
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *FileWatcher) { w.onError = h }
}

// WithLogger sets the logger
func WithLogger(l *logger.Logger) Option {
	return func(w *FileWatcher) { w.log = l }
}

// New creates a watcher for path
func New(path string, onChange Handler, opts ...Option) (*FileWatcher, error) {
	if err := validateWatchFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}
	if onChange == nil {
		return nil, fmt.Errorf("change handler is required")
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	w := &FileWatcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		onChange: onChange,
		onError:  func(error) {},
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched
func (w *FileWatcher) Path() string {
	return w.path
}

// Run watches until ctx is cancelled. It returns nil on cancellation and
// an error only when the watch cannot be established or the event
// channels close unexpectedly.
func (w *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.cleanupWatcher(watcher)

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.log.DebugWithFields("watching file", []logger.Field{logger.Path(w.path)})

	if w.initialRead {
		w.deliver(true)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.deliver(false)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.WarnWithFields("watcher error", []logger.Field{logger.Error(err), logger.Path(w.path)})
			w.onError(err)
		}
	}
}

// relevant reports whether an event concerns the watched file
func (w *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// deliver reads the file and hands its state to the handler
func (w *FileWatcher) deliver(initial bool) {
	// #nosec G304 - path is validated by validateWatchFilePath()
	data, err := os.ReadFile(w.path)
	switch {
	case initial && errors.Is(err, fs.ErrNotExist):
		w.log.Debug("watched file does not exist yet: %s", w.path)
	case errors.Is(err, fs.ErrNotExist):
		w.log.Debug("watched file removed: %s", w.path)
		w.onChange(Change{Path: w.path, Removed: true})
	case err != nil:
		w.log.WarnWithFields("failed to read watched file", []logger.Field{logger.Error(err), logger.Path(w.path)})
		w.onError(fmt.Errorf("failed to read %s: %w", w.path, err))
	default:
		w.log.DebugWithFields("watched file changed", []logger.Field{logger.Path(w.path), logger.F("bytes", len(data))})
		w.onChange(Change{Path: w.path, Data: data})
	}
}

// cleanupWatcher safely closes watcher with error logging
func (w *FileWatcher) cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		w.log.Warn("failed to close watcher: %v", err)
	}
}

// validateWatchFilePath validates that a file path is safe to watch.
// The file itself may not exist yet; its directory must.
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	if climbsBack(path) {
		return fmt.Errorf("path traversal not allowed")
	}
	cleanPath := filepath.Clean(path)

	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	dirInfo, err := os.Stat(filepath.Dir(cleanPath))
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("parent is not a directory")
	}

	return nil
}

// climbsBack reports whether path descends into a directory and then
// leaves it again with "..". Leading ".." elements are allowed.
func climbsBack(path string) bool {
	descended := false
	for _, elem := range strings.Split(filepath.ToSlash(path), "/") {
		switch elem {
		case "", ".":
		case "..":
			if descended {
				return true
			}
		default:
			descended = true
		}
	}
	return false
}
