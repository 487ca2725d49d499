package service

import (
	"context"
	"encoding/json"
)

// APIClient is the transport surface the resource services depend on.
// Satisfied by apiclient.Client; tests substitute a fake.
type APIClient interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}
