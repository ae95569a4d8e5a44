package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libcirc/internal/auth"
	"libcirc/internal/catalog"
)

// TestReader is a reader account for handler tests.
var TestReader = auth.User{
	ID:        42,
	Username:  "reader",
	FullName:  "Test Reader",
	Role:      auth.RoleReader,
	CreatedAt: time.Now(),
}

// TestLibrarian is a staff account for handler tests.
var TestLibrarian = auth.User{
	ID:        7,
	Username:  "librarian",
	FullName:  "Test Librarian",
	Role:      auth.RoleLibrarian,
	CreatedAt: time.Now(),
}

// TestBook is a catalog title with copies on the shelf.
var TestBook = catalog.Book{
	ID:              1,
	ISBN:            "9780134190440",
	Title:           "The Go Programming Language",
	Author:          "Alan A. A. Donovan",
	Publisher:       "Addison-Wesley",
	Category:        "Technology",
	TotalCopies:     3,
	AvailableCopies: 3,
	CreatedAt:       time.Now(),
	UpdatedAt:       time.Now(),
}

// NewRequest builds an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse drains a recorder into a RecordResponse.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// AssertResponseCode checks if the response code matches expected.
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field.
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %q for key %q, want %q", value, key, expectedValue)
	}
}
