package languageapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"langcache/internal/config"
	"langcache/internal/languageapi"
)

func TestClientSendsActionSelectors(t *testing.T) {
	caller := languageapi.NewStaticCaller().
		Respond(languageapi.ActionGetLanguageFile, "", "de", languageapi.OKResponse("de-content")).
		Respond(languageapi.ActionGetAppletLanguages, "JSM2_MemberApplet", "", languageapi.OKResponse([]string{"en", "hu"})).
		Respond(languageapi.ActionGetAppletLanguageFile, "JSM2_MemberApplet", "hu", languageapi.OKResponse("<xml/>"))

	client, err := languageapi.NewClient(caller)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	content, err := client.LanguageFile(ctx, "de")
	if err != nil || content != "de-content" {
		t.Fatalf("LanguageFile: %q %v", content, err)
	}
	langs, err := client.AppletLanguages(ctx, "JSM2_MemberApplet")
	if err != nil || strings.Join(langs, ",") != "en,hu" {
		t.Fatalf("AppletLanguages: %v %v", langs, err)
	}
	xml, err := client.AppletLanguageFile(ctx, "JSM2_MemberApplet", "hu")
	if err != nil || xml != "<xml/>" {
		t.Fatalf("AppletLanguageFile: %q %v", xml, err)
	}

	calls := caller.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	for _, call := range calls {
		if call.Target != languageapi.Target || call.Mode != languageapi.Mode {
			t.Fatalf("unexpected routing pair %s/%s", call.Target, call.Mode)
		}
		if call.Query.Get("system") != "LanguageFiles" {
			t.Fatalf("expected system selector, got %v", call.Query)
		}
	}
	if calls[0].Action() != languageapi.ActionGetLanguageFile || calls[0].Body.Get("language") != "de" {
		t.Fatalf("unexpected first call %#v", calls[0])
	}
}

func TestClientWrapsCallerFailure(t *testing.T) {
	boom := errors.New("connection reset")
	caller := languageapi.NewStaticCaller().Fail(languageapi.ActionGetLanguageFile, "", "en", boom)
	client, _ := languageapi.NewClient(caller)

	_, err := client.LanguageFile(context.Background(), "en")
	var transportErr *languageapi.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
	if !errors.Is(err, boom) {
		t.Fatal("expected cause to be preserved")
	}
}

func TestClientUnknownResponseIsTransportError(t *testing.T) {
	client, _ := languageapi.NewClient(languageapi.NewStaticCaller())
	_, err := client.LanguageFile(context.Background(), "en")
	var transportErr *languageapi.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError for absent response, got %T %v", err, err)
	}
}

func TestHTTPClientPostsFormToRoutingPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/system_api/language_api" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("action") != "getLanguageFile" || r.URL.Query().Get("system") != "LanguageFiles" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		values, _ := url.ParseQuery(string(body))
		if values.Get("language") != "en" {
			t.Errorf("unexpected body %q", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","data":"hello"}`))
	}))
	t.Cleanup(server.Close)

	caller, err := languageapi.NewHTTPClient(config.API{BaseURL: server.URL + "/", Token: "tok"})
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	client, _ := languageapi.NewClient(caller)
	content, err := client.LanguageFile(context.Background(), "en")
	if err != nil {
		t.Fatalf("LanguageFile: %v", err)
	}
	if content != "hello" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestHTTPClientPassesErrorEnvelopeThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"FAIL","error_code":"403"}`))
	}))
	t.Cleanup(server.Close)

	caller, _ := languageapi.NewHTTPClient(config.API{BaseURL: server.URL})
	client, _ := languageapi.NewClient(caller)
	_, err := client.LanguageFile(context.Background(), "en")
	var apiErr *languageapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T %v", err, err)
	}
	if !strings.Contains(err.Error(), "Code(403)") {
		t.Fatalf("expected code in message, got %q", err.Error())
	}
}

func TestHTTPClientPassesEmptyStatusEnvelopeThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"","error_code":"500","data":"maintenance"}`))
	}))
	t.Cleanup(server.Close)

	caller, _ := languageapi.NewHTTPClient(config.API{BaseURL: server.URL})
	client, _ := languageapi.NewClient(caller)
	_, err := client.LanguageFile(context.Background(), "en")
	var apiErr *languageapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T %v", err, err)
	}
	if err.Error() != "Wrong response: Code(500) maintenance" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestHTTPClientNonJSONFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(server.Close)

	caller, _ := languageapi.NewHTTPClient(config.API{BaseURL: server.URL})
	client, _ := languageapi.NewClient(caller)
	_, err := client.LanguageFile(context.Background(), "en")
	var transportErr *languageapi.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
}

func TestHTTPClientFalseBodyIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("false"))
	}))
	t.Cleanup(server.Close)

	caller, _ := languageapi.NewHTTPClient(config.API{BaseURL: server.URL})
	client, _ := languageapi.NewClient(caller)
	_, err := client.AppletLanguages(context.Background(), "JSM2_MemberApplet")
	var transportErr *languageapi.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := languageapi.NewHTTPClient(config.API{}); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestRegistrySelectsImplementation(t *testing.T) {
	registry := languageapi.NewRegistry()
	if !registry.Has("http") {
		t.Fatal("expected http implementation registered")
	}

	static := languageapi.NewStaticCaller()
	registry.Register("static", func(config.API) (languageapi.Caller, error) { return static, nil })

	caller, err := registry.New(config.API{Client: "Static"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if caller != static {
		t.Fatal("expected registered static caller")
	}

	if _, err := registry.New(config.API{Client: "grpc"}); err == nil || !strings.Contains(err.Error(), "http, static") {
		t.Fatalf("expected unknown implementation error listing names, got %v", err)
	}
}
