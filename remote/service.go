package remote

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/filestore/store"
)

// Service exposes a FileStore as a Connect FileService. Store sentinel errors
// are mapped to Connect codes: ErrNotFound→CodeNotFound, ErrInvalidName→
// CodeInvalidArgument, ErrNotEnabled→CodeFailedPrecondition.
type Service struct {
	store *store.FileStore
}

// NewService creates a Service backed by the given store.
func NewService(s *store.FileStore) *Service {
	return &Service{store: s}
}

// Handler returns an http.Handler serving the FileService procedures. Mount
// it at the server root so procedure paths resolve as-is.
func (s *Service) Handler(opts ...connect.HandlerOption) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(ProcedureSave, connect.NewUnaryHandler(ProcedureSave, s.handleSave, opts...))
	mux.Handle(ProcedureRead, connect.NewUnaryHandler(ProcedureRead, s.handleRead, opts...))
	return mux
}

func (s *Service) handleSave(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	name, data, err := decodeSave(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.SaveFile(ctx, name, data); err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&structpb.Struct{}), nil
}

func (s *Service) handleRead(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	name, err := decodeRead(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	data, err := s.store.ReadFile(ctx, name)
	if err != nil {
		return nil, connectError(err)
	}

	msg, err := encodeContents(data)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(msg), nil
}

func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, store.ErrInvalidName):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, store.ErrNotEnabled):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
