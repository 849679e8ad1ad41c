package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
)

// Ensure fakeRESTClient implements the interface.
var _ driven.RESTClient = (*fakeRESTClient)(nil)

// recordedCall is one request the fake client received.
type recordedCall struct {
	Method   string
	Endpoint string
	Query    url.Values
	Form     url.Values
}

// fakeRESTClient is a scripted in-memory stand-in for the REST
// adapter. Responses are keyed by "METHOD endpoint"; unscripted calls
// fail the operation.
type fakeRESTClient struct {
	responses map[string]any
	errs      map[string]error
	calls     []recordedCall
}

func newFakeRESTClient() *fakeRESTClient {
	return &fakeRESTClient{
		responses: make(map[string]any),
		errs:      make(map[string]error),
	}
}

// respond scripts a JSON-roundtripped response for a method+endpoint.
func (f *fakeRESTClient) respond(method, endpoint string, body any) {
	f.responses[method+" "+endpoint] = body
}

// fail scripts an error for a method+endpoint.
func (f *fakeRESTClient) fail(method, endpoint string, err error) {
	f.errs[method+" "+endpoint] = err
}

func (f *fakeRESTClient) lastCall() recordedCall {
	return f.calls[len(f.calls)-1]
}

func (f *fakeRESTClient) callCount() int {
	return len(f.calls)
}

func (f *fakeRESTClient) do(method, endpoint string, query, form url.Values, out any) error {
	f.calls = append(f.calls, recordedCall{
		Method:   method,
		Endpoint: endpoint,
		Query:    query,
		Form:     form,
	})

	key := method + " " + endpoint
	if err, ok := f.errs[key]; ok {
		return err
	}
	body, ok := f.responses[key]
	if !ok {
		return fmt.Errorf("unscripted call: %s", key)
	}
	if out == nil {
		return nil
	}

	// Round-trip through JSON so the fake behaves like the real
	// decoder.
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeRESTClient) Get(_ context.Context, endpoint string, query url.Values, out any) error {
	return f.do("GET", endpoint, query, nil, out)
}

func (f *fakeRESTClient) Post(_ context.Context, endpoint string, form url.Values, out any) error {
	return f.do("POST", endpoint, nil, form, out)
}

func (f *fakeRESTClient) Patch(_ context.Context, endpoint string, form url.Values, out any) error {
	return f.do("PATCH", endpoint, nil, form, out)
}

func (f *fakeRESTClient) Delete(_ context.Context, endpoint string, out any) error {
	return f.do("DELETE", endpoint, nil, nil, out)
}
