package textwave

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
)

type apiCall struct {
	method   string
	endpoint string
	params   url.Values
	body     any
}

// fakeAPI records the calls an operation makes and replays scripted
// responses.
type fakeAPI struct {
	calls   []apiCall
	respond func(method, endpoint string, params url.Values, body, out any) error
}

func (f *fakeAPI) Get(_ context.Context, endpoint string, params url.Values, out any) error {
	f.calls = append(f.calls, apiCall{method: "GET", endpoint: endpoint, params: params})
	if f.respond != nil {
		return f.respond("GET", endpoint, params, nil, out)
	}
	return nil
}

func (f *fakeAPI) Post(_ context.Context, endpoint string, params url.Values, body, out any) error {
	f.calls = append(f.calls, apiCall{method: "POST", endpoint: endpoint, params: params, body: body})
	if f.respond != nil {
		return f.respond("POST", endpoint, params, body, out)
	}
	return nil
}

func (f *fakeAPI) endpoints() []string {
	eps := make([]string, len(f.calls))
	for i, c := range f.calls {
		eps[i] = c.endpoint
	}
	return eps
}

// jsonInto decodes a canned JSON payload into an operation's out value,
// exercising the same decode path the wire uses.
func jsonInto(t *testing.T, raw string, out any) {
	t.Helper()
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		t.Fatalf("canned response %q: %v", raw, err)
	}
}

func newTestClient(api *fakeAPI) *Client {
	return &Client{api: api}
}
