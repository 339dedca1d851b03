package store

import "context"

// SaveHandler persists a named file in place of local disk I/O. The handler
// is solely responsible for completion; any error it returns is propagated to
// the caller verbatim, without wrapping.
type SaveHandler interface {
	Save(ctx context.Context, name string, data []byte) error
}

// ReadHandler retrieves a named file in place of local disk I/O. The handler
// is solely responsible for supplying the byte contents or an error.
type ReadHandler interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// SaveHandlerFunc adapts a function to the SaveHandler interface.
type SaveHandlerFunc func(ctx context.Context, name string, data []byte) error

func (f SaveHandlerFunc) Save(ctx context.Context, name string, data []byte) error {
	return f(ctx, name, data)
}

// ReadHandlerFunc adapts a function to the ReadHandler interface.
type ReadHandlerFunc func(ctx context.Context, name string) ([]byte, error)

func (f ReadHandlerFunc) Read(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}
