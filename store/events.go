package store

import "github.com/tailored-agentic-units/filestore/observability"

// Store event types emitted during file operations. Per-file events are
// verbose; failures are reported at error level. The default observer is the
// no-op observer, so a plain FileStore stays silent.
const (
	EventSave      observability.EventType = "store.save"
	EventRead      observability.EventType = "store.read"
	EventBatchSave observability.EventType = "store.batch.save"
	EventBatchRead observability.EventType = "store.batch.read"
	EventError     observability.EventType = "store.error"
)
