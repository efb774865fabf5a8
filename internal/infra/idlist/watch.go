package idlist

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"rokit/internal/domain"
)

const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher calls OnChange when any watched id list file is written, created or renamed.
type Watcher struct {
	Paths    []string
	Debounce time.Duration
	OnChange func(path string)
	Logger   *zap.Logger
}

// Run watches the parent directories of Paths until ctx is done.
func (w Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("idlist-watch")

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.FromIO("idlist.watch", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(w.Paths))
	dirs := make(map[string]struct{}, len(w.Paths))
	for _, path := range w.Paths {
		clean := CleanPath(path)
		targets[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("id list watcher add failed", zap.String("path", dir), zap.Error(err))
		}
	}

	var timer *time.Timer
	pending := make(map[string]struct{})
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				logger.Warn("id list watcher error", zap.Error(err))
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldNotify(event) {
				continue
			}
			path := CleanPath(event.Name)
			if _, watched := targets[path]; !watched {
				continue
			}
			pending[path] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timerChan(timer):
			timer = nil
			for path := range pending {
				logger.Debug("id list changed", zap.String("path", path))
				if w.OnChange != nil {
					w.OnChange(path)
				}
			}
			pending = make(map[string]struct{})
		}
	}
}

func shouldNotify(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// CleanPath returns the absolute, cleaned form of path used to match watcher events.
func CleanPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(path)
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
