package languageapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"langcache/internal/config"
)

// Caller performs one remote call against the language API. query carries the
// system and action selectors, body carries the filter fields. A non-nil
// error means the call itself failed; API-level failures come back inside the
// Response.
type Caller interface {
	Call(ctx context.Context, target, mode string, query, body url.Values) (*Response, error)
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, target, mode string, query, body url.Values) (*Response, error)

// Call implements Caller.
func (f CallerFunc) Call(ctx context.Context, target, mode string, query, body url.Values) (*Response, error) {
	return f(ctx, target, mode, query, body)
}

// Client issues the three language actions through a Caller and validates
// each response, so every action shares one error taxonomy.
type Client struct {
	caller Caller
}

// NewClient wraps caller.
func NewClient(caller Caller) (*Client, error) {
	if caller == nil {
		return nil, errors.New("language api caller required")
	}
	return &Client{caller: caller}, nil
}

// LanguageFile fetches the language file content for language.
func (c *Client) LanguageFile(ctx context.Context, language string) (string, error) {
	payload, err := c.do(ctx, ActionGetLanguageFile, url.Values{"language": {language}})
	if err != nil {
		return "", err
	}
	return payload.Text, nil
}

// AppletLanguages lists the languages available for applet.
func (c *Client) AppletLanguages(ctx context.Context, applet string) ([]string, error) {
	payload, err := c.do(ctx, ActionGetAppletLanguages, url.Values{"applet": {applet}})
	if err != nil {
		return nil, err
	}
	return payload.Languages, nil
}

// AppletLanguageFile fetches the language XML for applet in language.
func (c *Client) AppletLanguageFile(ctx context.Context, applet, language string) (string, error) {
	payload, err := c.do(ctx, ActionGetAppletLanguageFile, url.Values{"applet": {applet}, "language": {language}})
	if err != nil {
		return "", err
	}
	return payload.Text, nil
}

func (c *Client) do(ctx context.Context, action Action, body url.Values) (Payload, error) {
	query := url.Values{
		"system": {System},
		"action": {string(action)},
	}
	resp, err := c.caller.Call(ctx, Target, Mode, query, body)
	if err != nil {
		return Payload{}, &TransportError{Cause: err}
	}
	data, err := Validate(resp)
	if err != nil {
		return Payload{}, err
	}
	return DecodePayload(action, data)
}

// Factory builds a Caller from API configuration.
type Factory func(cfg config.API) (Caller, error)

// Registry maps implementation names to caller factories so the transport
// can be swapped by configuration.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with the HTTP implementation registered as
// "http".
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("http", func(cfg config.API) (Caller, error) {
		return NewHTTPClient(cfg)
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Names lists registered implementations in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the caller registered under cfg.Client.
func (r *Registry) New(cfg config.API) (Caller, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Client))
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("api.client: unknown implementation %q (available: %s)", cfg.Client, strings.Join(r.Names(), ", "))
	}
	return factory(cfg)
}
