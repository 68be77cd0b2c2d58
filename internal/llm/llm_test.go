package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedUpstream plays back one canned completion per call, in order.
// Calls past the end of the script get empty content.
type scriptedUpstream struct {
	t       *testing.T
	mu      sync.Mutex
	calls   int
	replies []string
	reqs    []ChatRequest
	srv     *httptest.Server
}

func newScriptedUpstream(t *testing.T, replies ...string) *scriptedUpstream {
	t.Helper()

	u := &scriptedUpstream{t: t, replies: replies}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		u.reqs = append(u.reqs, req)

		reply := ""
		if u.calls < len(u.replies) {
			reply = u.replies[u.calls]
		}
		u.calls++

		resp := ChatResponse{
			Choices: []Choice{{
				Message:      Message{Role: "assistant", Content: reply},
				FinishReason: "stop",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *scriptedUpstream) client() *Client {
	return NewClient("test-token", "test-model", u.srv.URL, 5*time.Second, zap.NewNop())
}

func (u *scriptedUpstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

func (u *scriptedUpstream) request(i int) ChatRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	require.Greater(u.t, len(u.reqs), i)
	return u.reqs[i]
}
