package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/tui/messages"
)

// refreshInterval is the minimum time between reloads caused by writes.
const refreshInterval = 250 * time.Millisecond

// Watcher reports writes to the registry database made by other processes.
// Bursts of filesystem events are coalesced into a single StoreChanged.
type Watcher struct {
	fs      *fsnotify.Watcher
	prefix  string
	limiter *rate.Limiter
}

// NewWatcher watches the directory holding dbPath. Events for dbPath and
// its journal files (-wal, -shm) are reported.
func NewWatcher(dbPath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(dbPath), err)
	}

	return &Watcher{
		fs:      fsw,
		prefix:  filepath.Base(dbPath),
		limiter: rate.NewLimiter(rate.Every(refreshInterval), 1),
	}, nil
}

// Next returns a command that blocks until the database changes.
func (w *Watcher) Next(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if !w.relevant(ev) {
					continue
				}
				if err := w.limiter.Wait(ctx); err != nil {
					return nil
				}
				w.drain()
				return messages.StoreChanged{}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return messages.WatchFailed{Err: err}
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), w.prefix)
}

// drain discards events already queued behind the one being reported.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
