// Package store provides a pluggable file-persistence abstraction. A
// FileStore either performs I/O against a local directory or defers entirely
// to externally registered save/read handlers (e.g., for remote storage).
//
// The store is enabled when a directory is configured or when both a save
// handler and a read handler are registered. Disabled stores fail fast with
// ErrNotEnabled before attempting any I/O or handler dispatch.
package store

import (
	"sync"

	"github.com/tailored-agentic-units/filestore/observability"
)

// FileStore routes file operations to either registered handlers or local
// disk I/O under a configured directory. Configuration mutators are safe for
// concurrent use; concurrent operations against the same file name race at
// the filesystem level with last-writer-wins semantics.
type FileStore struct {
	directory   string
	dirReady    bool // directory tree verified/created since last SetDirectory
	saveHandler SaveHandler
	readHandler ReadHandler
	observer    observability.Observer
	mu          sync.Mutex
}

// Option configures a FileStore after construction.
type Option func(*FileStore)

// WithSaveHandler registers a handler that replaces local disk writes.
func WithSaveHandler(h SaveHandler) Option {
	return func(s *FileStore) { s.saveHandler = h }
}

// WithReadHandler registers a handler that replaces local disk reads.
func WithReadHandler(h ReadHandler) Option {
	return func(s *FileStore) { s.readHandler = h }
}

// WithObserver overrides the default no-op observer.
func WithObserver(o observability.Observer) Option {
	return func(s *FileStore) { s.observer = o }
}

// New creates a FileStore rooted at directory. An empty directory is valid:
// the store is then disabled until a directory is assigned or both handlers
// are registered.
func New(directory string, opts ...Option) *FileStore {
	s := &FileStore{
		directory: directory,
		observer:  observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsEnabled reports whether operations may proceed: a directory is configured,
// or both a save handler and a read handler are registered.
func (s *FileStore) IsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory != "" || (s.saveHandler != nil && s.readHandler != nil)
}

// Directory returns the currently configured directory, or "" when unset.
func (s *FileStore) Directory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory
}

// SetDirectory reassigns the backing directory and clears the directory
// creation cache, so the next local write re-verifies the tree. Reassigning
// while a batch is in flight can produce mixed-directory results; callers own
// that coordination.
func (s *FileStore) SetDirectory(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directory = path
	s.dirReady = false
}

// SetSaveHandler registers or clears (nil) the save handler.
func (s *FileStore) SetSaveHandler(h SaveHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveHandler = h
}

// SetReadHandler registers or clears (nil) the read handler.
func (s *FileStore) SetReadHandler(h ReadHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readHandler = h
}

// snapshot returns the configuration relevant to a single operation.
func (s *FileStore) snapshot() (dir string, ready bool, save SaveHandler, read ReadHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory, s.dirReady, s.saveHandler, s.readHandler
}

// markReady records that dir's tree exists. Skipped if the directory was
// reassigned while the creating operation was in flight.
func (s *FileStore) markReady(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.directory == dir {
		s.dirReady = true
	}
}
