package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/tailored-agentic-units/filestore/observability"
	"github.com/tailored-agentic-units/filestore/store"
)

func TestObserver_SaveAndBatchEvents(t *testing.T) {
	capture := &captureObserver{}
	s := store.New(t.TempDir(), store.WithObserver(capture))

	files := map[string][]byte{
		"a.txt": []byte("alpha"),
		"b.txt": []byte("beta"),
	}
	if err := s.SaveFiles(context.Background(), files); err != nil {
		t.Fatalf("SaveFiles() error = %v", err)
	}

	byType := capture.countByType()
	if byType[store.EventBatchSave] != 1 {
		t.Errorf("batch save events = %d, want 1", byType[store.EventBatchSave])
	}
	if byType[store.EventSave] != 2 {
		t.Errorf("save events = %d, want 2", byType[store.EventSave])
	}
}

func TestObserver_ErrorEvents(t *testing.T) {
	capture := &captureObserver{}
	s := store.New(t.TempDir(), store.WithObserver(capture))

	if _, err := s.ReadFile(context.Background(), "missing.txt"); err == nil {
		t.Fatal("ReadFile() succeeded, want not-found error")
	}

	byType := capture.countByType()
	if byType[store.EventError] != 1 {
		t.Errorf("error events = %d, want 1", byType[store.EventError])
	}
}

func TestObserver_BatchEventCarriesBatchID(t *testing.T) {
	capture := &captureObserver{}
	s := store.New(t.TempDir(), store.WithObserver(capture))

	s.ReadFiles(context.Background(), []string{"a.txt"})

	for _, event := range capture.all() {
		if event.Type != store.EventBatchRead {
			continue
		}
		if id, _ := event.Data["batch_id"].(string); id == "" {
			t.Error("batch read event missing batch_id")
		}
		return
	}
	t.Error("no batch read event emitted")
}

// captureObserver records events; safe for concurrent emission from batch
// goroutines.
type captureObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureObserver) all() []observability.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]observability.Event(nil), c.events...)
}

func (c *captureObserver) countByType() map[observability.EventType]int {
	counts := make(map[observability.EventType]int)
	for _, event := range c.all() {
		counts[event.Type]++
	}
	return counts
}
