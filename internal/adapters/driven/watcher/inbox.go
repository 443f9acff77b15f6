// Package watcher monitors the drop inbox directory. Files placed
// there are surfaced to the workflow as dropped attachments.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/uot-apps/withdrawal-cli/internal/logger"
)

// debounceWindow lets rapid write events settle before a file is
// reported. Copies into the inbox arrive as a create followed by one
// or more writes.
const debounceWindow = 500 * time.Millisecond

// Inbox watches a directory and reports files dropped into it.
type Inbox struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	dir     string
	pending map[string]time.Time
	drops   chan string
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewInbox creates a watcher for dir. The directory is created if it
// does not exist.
func NewInbox(dir string) (*Inbox, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	return &Inbox{
		watcher: w,
		dir:     dir,
		pending: make(map[string]time.Time),
		drops:   make(chan string, 8),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Dir returns the watched directory.
func (in *Inbox) Dir() string {
	return in.dir
}

// Drops returns the channel of settled dropped file paths.
func (in *Inbox) Drops() <-chan string {
	return in.drops
}

// Start begins watching. Non-blocking; events are delivered on Drops
// until Stop is called or ctx is cancelled.
func (in *Inbox) Start(ctx context.Context) {
	in.mu.Lock()
	if in.running {
		in.mu.Unlock()
		return
	}
	in.running = true
	in.mu.Unlock()

	logger.Debug("inbox: watching %s", in.dir)
	go in.run(ctx)
}

// Stop stops the watcher and waits for the event loop to exit.
func (in *Inbox) Stop() {
	in.mu.Lock()
	if !in.running {
		in.mu.Unlock()
		return
	}
	in.running = false
	in.mu.Unlock()

	close(in.stopCh)
	<-in.doneCh
	in.watcher.Close()
}

func (in *Inbox) run(ctx context.Context) {
	defer close(in.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-in.stopCh:
			return
		case event, ok := <-in.watcher.Events:
			if !ok {
				return
			}
			in.handleEvent(event)
		case err, ok := <-in.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("inbox: watch error: %v", err)
		case <-ticker.C:
			in.flushSettled()
		}
	}
}

func (in *Inbox) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return
	}
	if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
		return
	}

	in.mu.Lock()
	in.pending[event.Name] = time.Now()
	in.mu.Unlock()
}

func (in *Inbox) flushSettled() {
	in.mu.Lock()
	now := time.Now()
	var settled []string
	for path, at := range in.pending {
		if now.Sub(at) >= debounceWindow {
			settled = append(settled, path)
			delete(in.pending, path)
		}
	}
	in.mu.Unlock()

	for _, path := range settled {
		logger.Debug("inbox: file dropped: %s", path)
		select {
		case in.drops <- path:
		default:
			logger.Warn("inbox: drop channel full, discarding %s", path)
		}
	}
}
