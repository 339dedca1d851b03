package observability

import "context"

// FilterObserver forwards events at or above a minimum level and discards
// the rest. Useful for suppressing per-file verbose events while keeping
// batch and error events.
type FilterObserver struct {
	next Observer
	min  Level
}

// NewFilterObserver creates a FilterObserver that forwards events with
// event.Level >= min to next.
func NewFilterObserver(next Observer, min Level) *FilterObserver {
	return &FilterObserver{next: next, min: min}
}

func (f *FilterObserver) OnEvent(ctx context.Context, event Event) {
	if event.Level < f.min {
		return
	}
	f.next.OnEvent(ctx, event)
}
