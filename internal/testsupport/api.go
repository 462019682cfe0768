package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"langcache/internal/languageapi"
)

// APIServer is an httptest server speaking the language API wire format.
type APIServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]any
	requests  []string
}

// NewAPIServer starts a fake language API and closes it on test cleanup.
// Unknown requests answer with a bare false body.
func NewAPIServer(t testing.TB) *APIServer {
	t.Helper()

	s := &APIServer{responses: make(map[string]any)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Respond registers the JSON envelope returned for action with the given
// applet and language form values.
func (s *APIServer) Respond(action languageapi.Action, applet, language string, envelope any) *APIServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[apiKey(string(action), applet, language)] = envelope
	return s
}

// OK registers a successful envelope carrying data.
func (s *APIServer) OK(action languageapi.Action, applet, language string, data any) *APIServer {
	return s.Respond(action, applet, language, map[string]any{"status": languageapi.StatusOK, "data": data})
}

// Requests returns the keys of the requests received so far.
func (s *APIServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *APIServer) handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key := apiKey(r.URL.Query().Get("action"), r.PostForm.Get("applet"), r.PostForm.Get("language"))

	s.mu.Lock()
	s.requests = append(s.requests, key)
	envelope, ok := s.responses[key]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		_, _ = w.Write([]byte("false"))
		return
	}
	_ = json.NewEncoder(w).Encode(envelope)
}

func apiKey(action, applet, language string) string {
	return action + "|" + applet + "|" + language
}
