package store

import "errors"

// Sentinel errors for store operations. Save and read failures wrap the
// underlying OS error, so callers can unwrap it with errors.Is/As. Errors
// returned by registered handlers are propagated verbatim and carry none of
// these sentinels unless the handler chose to.
var (
	ErrNotEnabled  = errors.New("store not enabled")
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
	ErrSaveFailed  = errors.New("save failed")
	ErrReadFailed  = errors.New("read failed")
)
