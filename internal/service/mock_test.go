package service

import (
	"context"
	"encoding/json"
	"errors"
)

// fakeAPIClient is a func-field fake of the APIClient transport surface.
// Unset methods fail loudly so a test that reaches the network by accident
// is caught.
type fakeAPIClient struct {
	GetFunc    func(ctx context.Context, path string) (json.RawMessage, error)
	PostFunc   func(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	PutFunc    func(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	PatchFunc  func(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	DeleteFunc func(ctx context.Context, path string) (json.RawMessage, error)

	calls int
}

var errUnexpectedCall = errors.New("unexpected transport call")

func (f *fakeAPIClient) Get(ctx context.Context, path string) (json.RawMessage, error) {
	f.calls++
	if f.GetFunc != nil {
		return f.GetFunc(ctx, path)
	}
	return nil, errUnexpectedCall
}

func (f *fakeAPIClient) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	f.calls++
	if f.PostFunc != nil {
		return f.PostFunc(ctx, path, body)
	}
	return nil, errUnexpectedCall
}

func (f *fakeAPIClient) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	f.calls++
	if f.PutFunc != nil {
		return f.PutFunc(ctx, path, body)
	}
	return nil, errUnexpectedCall
}

func (f *fakeAPIClient) Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	f.calls++
	if f.PatchFunc != nil {
		return f.PatchFunc(ctx, path, body)
	}
	return nil, errUnexpectedCall
}

func (f *fakeAPIClient) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	f.calls++
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, path)
	}
	return nil, errUnexpectedCall
}
