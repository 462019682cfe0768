package languageapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Routing key of the language service; every call goes to this pair.
const (
	Target = "system_api"
	Mode   = "language_api"
	System = "LanguageFiles"
)

// StatusOK is the success marker the API places in Response.Status.
const StatusOK = "OK"

// Action selects the remote operation. The action also determines the shape of
// the response data.
type Action string

const (
	ActionGetLanguageFile       Action = "getLanguageFile"
	ActionGetAppletLanguages    Action = "getAppletLanguages"
	ActionGetAppletLanguageFile Action = "getAppletLanguageFile"
)

// Response is the envelope returned by every language API call. A nil
// *Response stands for an absent reply (the API answering with a bare false).
type Response struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data,omitempty"`
	ErrorType Code            `json:"error_type,omitempty"`
	ErrorCode Code            `json:"error_code,omitempty"`

	// statusSet records a status key decoded with a non-null value, so an
	// empty status can be told apart from a missing one.
	statusSet bool
}

// HasStatus reports whether the response carries a status marker. A status
// decoded as "" still counts; a missing or null one does not.
func (r *Response) HasStatus() bool {
	return r != nil && (r.Status != "" || r.statusSet)
}

// UnmarshalJSON decodes the envelope and remembers whether status was sent.
// Non-string statuses are kept as their JSON text.
func (r *Response) UnmarshalJSON(data []byte) error {
	var env struct {
		Status    json.RawMessage `json:"status"`
		Data      json.RawMessage `json:"data"`
		ErrorType Code            `json:"error_type"`
		ErrorCode Code            `json:"error_code"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*r = Response{Data: env.Data, ErrorType: env.ErrorType, ErrorCode: env.ErrorCode}
	status := bytes.TrimSpace(env.Status)
	if len(status) == 0 || bytes.Equal(status, []byte("null")) {
		return nil
	}
	r.statusSet = true
	if status[0] == '"' {
		return json.Unmarshal(status, &r.Status)
	}
	r.Status = string(status)
	return nil
}

// Code is an error marker the API sends as either a JSON string or number.
type Code string

// UnmarshalJSON accepts strings, numbers, booleans and null. A numeric zero
// decodes as an unset code.
func (c *Code) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte("false")):
		*c = ""
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	default:
		if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil && f == 0 {
			*c = ""
			return nil
		}
		*c = Code(trimmed)
		return nil
	}
}

// marker returns the code as rendered in error messages. "0" counts as unset,
// like a blank code.
func (c Code) marker() string {
	s := strings.TrimSpace(string(c))
	if s == "0" {
		return ""
	}
	return s
}

// OKResponse builds a successful response carrying data encoded as JSON.
func OKResponse(data any) *Response {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("null")
	}
	return &Response{Status: StatusOK, Data: raw}
}

// Payload is the validated data of a response, shaped by the action that
// produced it: Text for file actions, Languages for discovery.
type Payload struct {
	Action    Action
	Text      string
	Languages []string
}

// DecodePayload converts validated response data into the shape implied by
// action. JSON null decodes to the zero value of that shape.
func DecodePayload(action Action, raw json.RawMessage) (Payload, error) {
	payload := Payload{Action: action}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return payload, nil
	}
	switch action {
	case ActionGetLanguageFile, ActionGetAppletLanguageFile:
		if err := json.Unmarshal(trimmed, &payload.Text); err != nil {
			return Payload{}, &ShapeError{Action: action, Want: "string", Cause: err}
		}
	case ActionGetAppletLanguages:
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Payload{}, &ShapeError{Action: action, Want: "array", Cause: err}
		}
		payload.Languages = make([]string, 0, len(items))
		for _, item := range items {
			payload.Languages = append(payload.Languages, renderScalar(item))
		}
	default:
		return Payload{}, &ShapeError{Action: action, Want: "known action"}
	}
	return payload, nil
}

// renderScalar turns a JSON value into the text a loosely typed API client
// would see: strings unquoted, false and null empty, true as "1".
func renderScalar(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte("false")):
		return ""
	case bytes.Equal(trimmed, []byte("true")):
		return "1"
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
		return strings.Trim(string(trimmed), `"`)
	case trimmed[0] == '[' || trimmed[0] == '{':
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err == nil {
			return compact.String()
		}
		return string(trimmed)
	default:
		if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return string(trimmed)
	}
}

func isFalse(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("false"))
}
