package testsupport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// WebhookServer is an httptest server that records JSON POST bodies.
type WebhookServer struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	response string
	bodies   [][]byte
	headers  []http.Header
}

// NewWebhookServer starts a recording server answering with status and
// response. It is closed when the test ends.
func NewWebhookServer(t testing.TB, status int, response string) *WebhookServer {
	t.Helper()

	ws := &WebhookServer{status: status, response: response}
	ws.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ws.mu.Lock()
		ws.bodies = append(ws.bodies, body)
		ws.headers = append(ws.headers, r.Header.Clone())
		ws.mu.Unlock()
		w.WriteHeader(ws.status)
		_, _ = io.WriteString(w, ws.response)
	}))
	t.Cleanup(ws.Close)
	return ws
}

// Hits reports how many requests were received.
func (ws *WebhookServer) Hits() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.bodies)
}

// Header returns the headers of the i-th request.
func (ws *WebhookServer) Header(i int) http.Header {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.headers[i]
}

// DecodeBody unmarshals the i-th request body into v.
func (ws *WebhookServer) DecodeBody(t testing.TB, i int, v any) {
	t.Helper()
	ws.mu.Lock()
	body := ws.bodies[i]
	ws.mu.Unlock()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode webhook body %q: %v", body, err)
	}
}

// RefusingTransport fails the test if any request is attempted.
type RefusingTransport struct {
	T testing.TB
}

func (rt RefusingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.T.Errorf("unexpected request to %s", req.URL)
	return nil, http.ErrHandlerTimeout
}
