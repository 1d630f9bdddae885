// Package watch reloads scheduler state when another process edits the state file.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/bnema/tabsweep/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 250 * time.Millisecond

// Sender is the slice of the event loop the watcher needs.
type Sender interface {
	Send(ctx context.Context, event application.Event) error
}

// OwnWrites tells the watcher whether the file on disk is one this process wrote itself.
type OwnWrites interface {
	IsOwnWrite() (bool, error)
}

type Watcher struct {
	path     string
	sender   Sender
	debounce time.Duration
	own      OwnWrites
}

func NewWatcher(path string, sender Sender, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		sender:   sender,
		debounce: debounce,
	}
}

// IgnoreOwnWrites skips reloads while the file still matches what own last wrote.
func (w *Watcher) IgnoreOwnWrites(own OwnWrites) *Watcher {
	w.own = own
	return w
}

// Run watches the state file's directory until ctx is cancelled.
// The directory is watched because saves replace the file by rename.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "watch")
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug().Str("path", w.path).Msg("watching state file")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Msg("state file changed")
			timer.Reset(w.debounce)

		case <-timer.C:
			if w.isOwnWrite(ctx) {
				log.Debug().Msg("state file change was our own write")
				continue
			}
			if err := w.sender.Send(ctx, application.ReloadEvent{}); err != nil {
				if errors.Is(err, application.ErrLoopStopped) || ctx.Err() != nil {
					return nil
				}
				log.Warn().Err(err).Msg("queue state reload")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) isOwnWrite(ctx context.Context) bool {
	if w.own == nil {
		return false
	}
	own, err := w.own.IsOwnWrite()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("compare state file with last write")
		return false
	}
	return own
}
