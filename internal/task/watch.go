package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports changes to the tasks file made by any process, including
// this one. Bursts of events are coalesced into one signal. The channel is
// closed when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	if s.path == "" {
		return nil, fmt.Errorf("store has no backing file")
	}
	target, err := filepath.Abs(s.path)
	if err != nil {
		return nil, fmt.Errorf("resolve tasks path: %w", err)
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// The file is replaced by rename, so watch its directory.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("tasks file watcher", "err", err)
			}
		}
	}()
	return changes, nil
}
