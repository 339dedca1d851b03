// Package remote exposes a FileStore over Connect RPC and provides the
// matching client-side handlers. Registering a Client on a FileStore makes
// every save and read go to the remote service instead of local disk, which
// is the canonical use of the store's handler extension point.
//
// The wire format is deliberately schemaless: requests and responses are
// protobuf well-known Struct messages carrying a file name and base64 file
// contents, so no generated code is required on either side.
package remote

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Unary procedure paths served and called by this package.
const (
	ProcedureSave = "/filestore.v1.FileService/Save"
	ProcedureRead = "/filestore.v1.FileService/Read"
)

// requestIDHeader carries a per-request UUIDv7 for correlating client and
// server logs.
const requestIDHeader = "Filestore-Request-Id"

func encodeSave(name string, data []byte) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"name": name,
		"data": base64.StdEncoding.EncodeToString(data),
	})
}

func decodeSave(msg *structpb.Struct) (string, []byte, error) {
	name := msg.GetFields()["name"].GetStringValue()
	if name == "" {
		return "", nil, fmt.Errorf("missing name field")
	}
	data, err := base64.StdEncoding.DecodeString(msg.GetFields()["data"].GetStringValue())
	if err != nil {
		return "", nil, fmt.Errorf("malformed data field: %w", err)
	}
	return name, data, nil
}

func encodeRead(name string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"name": name})
}

func decodeRead(msg *structpb.Struct) (string, error) {
	name := msg.GetFields()["name"].GetStringValue()
	if name == "" {
		return "", fmt.Errorf("missing name field")
	}
	return name, nil
}

func encodeContents(data []byte) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"data": base64.StdEncoding.EncodeToString(data),
	})
}

func decodeContents(msg *structpb.Struct) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(msg.GetFields()["data"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("malformed data field: %w", err)
	}
	return data, nil
}
