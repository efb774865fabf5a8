package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"rokit/internal/domain"
	"rokit/internal/infra/idlist"
	"rokit/internal/infra/tasks"
)

const opCheck = "check"

var ErrNoPaths = errors.New("at least one id list path is required")

// FileReport is the outcome of checking one id list file.
type FileReport struct {
	Path   string
	Result idlist.Result
	Err    error
}

// OK reports whether the file loaded and had no issues.
func (r FileReport) OK() bool {
	return r.Err == nil && r.Result.OK()
}

// Check loads every id list concurrently and reports on each file in argument order.
// Load failures are recorded per file; the returned error is set only
// when a load could not be joined.
func (a *App) Check(ctx context.Context, paths []string) ([]FileReport, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	handles := make([]*tasks.Handle[idlist.Result], 0, len(paths))
	for _, path := range paths {
		handles = append(handles, tasks.Spawn(ctx, path, func(taskCtx context.Context) (idlist.Result, error) {
			if err := taskCtx.Err(); err != nil {
				return idlist.Result{}, err
			}
			return idlist.Load(path)
		}))
	}

	reports := make([]FileReport, 0, len(paths))
	for i, h := range handles {
		result, err := h.Join(ctx)
		if err != nil {
			var joinErr *tasks.JoinError
			if errors.As(err, &joinErr) || ctx.Err() != nil {
				for _, rest := range handles[i+1:] {
					rest.Abort()
				}
				return reports, domain.FromTaskJoin(opCheck, err)
			}
			a.logger.Debug("id list load failed", zap.String("path", paths[i]), zap.Error(err))
			reports = append(reports, FileReport{Path: paths[i], Err: domain.Wrap(opCheck, err)})
			continue
		}
		reports = append(reports, FileReport{Path: paths[i], Result: result})
	}
	return reports, nil
}

// WatchConfig configures Watch.
type WatchConfig struct {
	Paths    []string
	Debounce time.Duration
	// OnReport receives a fresh report for a file each time it changes.
	OnReport func(FileReport)
}

// Watch rechecks id list files whenever they change, until ctx is done.
func (a *App) Watch(ctx context.Context, cfg WatchConfig) error {
	if len(cfg.Paths) == 0 {
		return ErrNoPaths
	}
	byClean := make(map[string]string, len(cfg.Paths))
	for _, path := range cfg.Paths {
		byClean[idlist.CleanPath(path)] = path
	}
	watcher := idlist.Watcher{
		Paths:    cfg.Paths,
		Debounce: cfg.Debounce,
		Logger:   a.logger,
		OnChange: func(changed string) {
			path, ok := byClean[changed]
			if !ok {
				path = changed
			}
			reports, err := a.Check(ctx, []string{path})
			if err != nil {
				a.logger.Warn("id list recheck failed", zap.String("path", path), zap.Error(err))
				return
			}
			if cfg.OnReport != nil {
				for _, report := range reports {
					cfg.OnReport(report)
				}
			}
		},
	}
	return watcher.Run(ctx)
}
