// Package assets loads model descriptors asynchronously. Parsing happens on
// worker goroutines; completion callbacks are queued and only run when the
// frame thread calls Dispatch, so game state is never touched concurrently.
package assets

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/decker502/gunroom/pkg/scenegraph"
	"golang.org/x/sync/errgroup"
)

// preloadConcurrency bounds parallel parsing in Preload.
const preloadConcurrency = 4

// Loader parses models from an fs.FS and caches the parsed templates.
type Loader struct {
	fsys    fs.FS
	manager *Manager

	mu      sync.Mutex
	cache   map[string]*scenegraph.Node
	pending []func()

	inflight sync.WaitGroup
}

// NewLoader creates a loader. manager may be nil.
func NewLoader(fsys fs.FS, manager *Manager) *Loader {
	if manager == nil {
		manager = NewManager()
	}
	return &Loader{
		fsys:    fsys,
		manager: manager,
		cache:   make(map[string]*scenegraph.Node),
	}
}

// Manager returns the aggregate progress tracker.
func (l *Loader) Manager() *Manager {
	return l.manager
}

// Load parses path in the background. Exactly one of onSuccess / onError
// runs, on the next Dispatch after parsing finishes. onSuccess receives a
// fresh clone the caller owns.
func (l *Loader) Load(path string, onSuccess func(*scenegraph.Node), onError func(error)) {
	l.manager.itemStart(path)
	l.inflight.Add(1)

	go func() {
		defer l.inflight.Done()
		tmpl, err := l.template(path)

		l.mu.Lock()
		l.pending = append(l.pending, func() {
			if err != nil {
				log.Printf("[AssetLoader] Failed to load %s: %v", path, err)
				l.manager.itemError(path, err)
				if onError != nil {
					onError(err)
				}
				return
			}
			if onSuccess != nil {
				onSuccess(tmpl.Clone())
			}
			l.manager.itemEnd(path)
		})
		l.mu.Unlock()
	}()
}

// Dispatch runs every queued completion callback and returns how many ran.
func (l *Loader) Dispatch() int {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Flush waits for all in-flight parses and dispatches their callbacks.
// Intended for headless tools and tests.
func (l *Loader) Flush() int {
	l.inflight.Wait()
	return l.Dispatch()
}

// Preload parses every path into the cache in parallel and returns the first
// error. It does not touch the Manager.
func (l *Loader) Preload(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := l.template(p); err != nil {
				return fmt.Errorf("preload %s: %w", p, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (l *Loader) template(path string) (*scenegraph.Node, error) {
	l.mu.Lock()
	if n, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return n, nil
	}
	l.mu.Unlock()

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	n, err := ParseModel(data)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[path] = n
	l.mu.Unlock()
	return n, nil
}
