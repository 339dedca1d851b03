package observability

import "context"

// NoOpObserver discards all events with zero overhead. It is the default
// observer of a FileStore, keeping the library silent unless a caller opts in.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
