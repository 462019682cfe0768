package languageapi

import "encoding/json"

// Validate inspects resp for the success and error markers and returns its
// data unchanged when the call succeeded.
func Validate(resp *Response) (json.RawMessage, error) {
	if !resp.HasStatus() {
		return nil, &TransportError{}
	}
	if resp.Status != StatusOK {
		return nil, &APIError{
			Status:    resp.Status,
			ErrorType: resp.ErrorType.marker(),
			ErrorCode: resp.ErrorCode.marker(),
			Detail:    renderScalar(resp.Data),
		}
	}
	if isFalse(resp.Data) {
		return nil, &EmptyPayloadError{}
	}
	return resp.Data, nil
}
