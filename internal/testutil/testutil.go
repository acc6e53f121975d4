package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

// NewRequest creates a new HTTP request for testing. body is encoded as
// JSON unless it is a string, which is sent verbatim.
func NewRequest(method, path string, body any) *http.Request {
	var r *http.Request
	switch b := body.(type) {
	case nil:
		r = httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, strings.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	default:
		bodyBytes, _ := json.Marshal(b)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse is a decoded HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorded response body as a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Data returns the "data" object of an envelope, or nil.
func (r RecordResponse) Data() map[string]any {
	data, _ := r.Body["data"].(map[string]any)
	return data
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertEnvelope checks the status and message of an envelope.
func AssertEnvelope(t interface {
	Errorf(format string, args ...any)
}, body map[string]any, status, message string) {
	if got := body["status"]; got != status {
		t.Errorf("got status %v, want %q", got, status)
	}
	got, _ := body["message"].(string)
	if got != message {
		t.Errorf("got message %q, want %q", got, message)
	}
}
