package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tailored-agentic-units/filestore/observability"
)

// ReadResult is the per-item outcome of a batch read. Exactly one of Data and
// Err is meaningful.
type ReadResult struct {
	Name string
	Data []byte
	Err  error
}

// SaveFiles saves every entry concurrently with unbounded fan-out and waits
// for all of them to settle. It returns nil only when every save succeeded;
// otherwise it returns the first error to settle, which is not deterministic
// across runs. Entries that already completed stay written even when a
// sibling fails.
func (s *FileStore) SaveFiles(ctx context.Context, files map[string][]byte) error {
	s.emit(ctx, EventBatchSave, observability.LevelInfo, map[string]any{
		"batch_id": uuid.Must(uuid.NewV7()).String(),
		"files":    len(files),
	})

	g := new(errgroup.Group)
	for name, data := range files {
		name, data := name, data
		g.Go(func() error {
			return s.SaveFile(ctx, name, data)
		})
	}
	return g.Wait()
}

// ReadFiles reads every name concurrently and waits for all reads to settle.
// The result slice preserves input order regardless of completion order; each
// element carries either the contents or that read's error. The batch itself
// never fails.
func (s *FileStore) ReadFiles(ctx context.Context, names []string) []ReadResult {
	s.emit(ctx, EventBatchRead, observability.LevelInfo, map[string]any{
		"batch_id": uuid.Must(uuid.NewV7()).String(),
		"files":    len(names),
	})

	results := make([]ReadResult, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := s.ReadFile(ctx, name)
			results[i] = ReadResult{Name: name, Data: data, Err: err}
		}()
	}
	wg.Wait()

	return results
}
