// Package languageapi talks to the remote language service.
//
// Every request goes to the same routing pair (system_api/language_api) and
// selects one of three actions: getLanguageFile, getAppletLanguages and
// getAppletLanguageFile. The transport sits behind the Caller interface;
// HTTPClient is the production implementation and Registry lets
// configuration pick another by name.
//
// All responses funnel through Validate, which maps the envelope onto a fixed
// error taxonomy (TransportError, APIError, EmptyPayloadError) before
// DecodePayload shapes the data according to the action that was invoked.
package languageapi
