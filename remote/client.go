package remote

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/filestore/store"
)

// Client calls a remote FileService. It implements both store.SaveHandler and
// store.ReadHandler, so registering one Client makes a FileStore fully
// handler-backed.
type Client struct {
	save *connect.Client[structpb.Struct, structpb.Struct]
	read *connect.Client[structpb.Struct, structpb.Struct]
}

var (
	_ store.SaveHandler = (*Client)(nil)
	_ store.ReadHandler = (*Client)(nil)
)

// NewClient creates a Client for the FileService at baseURL. The httpClient
// is typically *http.Client; pass connect options to select the protocol
// (Connect by default, connect.WithGRPC() for gRPC).
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	return &Client{
		save: connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+ProcedureSave, opts...),
		read: connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+ProcedureRead, opts...),
	}
}

// Save sends the named file to the remote service. Transport and service
// errors are returned as-is, the way the store propagates handler errors.
func (c *Client) Save(ctx context.Context, name string, data []byte) error {
	msg, err := encodeSave(name, data)
	if err != nil {
		return fmt.Errorf("encode save request: %w", err)
	}

	req := connect.NewRequest(msg)
	req.Header().Set(requestIDHeader, uuid.Must(uuid.NewV7()).String())

	_, err = c.save.CallUnary(ctx, req)
	return err
}

// Read fetches the named file from the remote service. A CodeNotFound
// response is translated back to store.ErrNotFound so callers see the same
// not-found condition as with local disk.
func (c *Client) Read(ctx context.Context, name string) ([]byte, error) {
	msg, err := encodeRead(name)
	if err != nil {
		return nil, fmt.Errorf("encode read request: %w", err)
	}

	req := connect.NewRequest(msg)
	req.Header().Set(requestIDHeader, uuid.Must(uuid.NewV7()).String())

	res, err := c.read.CallUnary(ctx, req)
	if err != nil {
		if connect.CodeOf(err) == connect.CodeNotFound {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, name)
		}
		return nil, err
	}

	return decodeContents(res.Msg)
}

// Config holds remote client initialization parameters.
type Config struct {
	URL string `json:"url,omitempty"` // FileService base URL; empty disables remote storage.
}

// DefaultConfig returns the default remote configuration (disabled).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.URL != "" {
		c.URL = source.URL
	}
}

// NewStore creates a fully handler-backed FileStore whose saves and reads are
// served by the FileService at cfg.URL. Returns nil when URL is empty,
// indicating remote storage is disabled.
func NewStore(cfg *Config, opts ...store.Option) *store.FileStore {
	if cfg.URL == "" {
		return nil
	}
	client := NewClient(http.DefaultClient, cfg.URL)
	opts = append([]store.Option{
		store.WithSaveHandler(client),
		store.WithReadHandler(client),
	}, opts...)
	return store.New("", opts...)
}
