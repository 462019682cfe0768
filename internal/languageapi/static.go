package languageapi

import (
	"context"
	"net/url"
	"sync"
)

// Call records one request seen by a StaticCaller.
type Call struct {
	Target string
	Mode   string
	Query  url.Values
	Body   url.Values
}

// Action returns the action selector of the recorded call.
func (c Call) Action() Action { return Action(c.Query.Get("action")) }

// StaticCaller answers calls from an in-memory table keyed by action, applet
// and language. Unknown keys answer with a nil response.
type StaticCaller struct {
	mu        sync.Mutex
	responses map[string]*Response
	errs      map[string]error
	calls     []Call
}

var _ Caller = (*StaticCaller)(nil)

// NewStaticCaller returns an empty StaticCaller.
func NewStaticCaller() *StaticCaller {
	return &StaticCaller{
		responses: make(map[string]*Response),
		errs:      make(map[string]error),
	}
}

// Respond sets the response for action with the given applet and language
// filters; empty filters match calls that omit them.
func (s *StaticCaller) Respond(action Action, applet, language string, resp *Response) *StaticCaller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[staticKey(action, applet, language)] = resp
	return s
}

// Fail makes the matching call return err as a transport failure.
func (s *StaticCaller) Fail(action Action, applet, language string, err error) *StaticCaller {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[staticKey(action, applet, language)] = err
	return s
}

// Calls returns the calls received so far.
func (s *StaticCaller) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Call implements Caller.
func (s *StaticCaller) Call(_ context.Context, target, mode string, query, body url.Values) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Target: target, Mode: mode, Query: cloneValues(query), Body: cloneValues(body)})
	key := staticKey(Action(query.Get("action")), body.Get("applet"), body.Get("language"))
	if err, ok := s.errs[key]; ok {
		return nil, err
	}
	return s.responses[key], nil
}

func staticKey(action Action, applet, language string) string {
	return string(action) + "|" + applet + "|" + language
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
