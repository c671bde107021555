//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// pixelHeaders are set on every tracking pixel response regardless of outcome.
var pixelHeaders = map[string]string{
	"Content-Type":  "image/gif",
	"Cache-Control": "no-store, no-cache, must-revalidate, private",
	"Pragma":        "no-cache",
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		assert.Equalf(t, want, w.Header().Get(name), "header %s", name)
	}
}

func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, path string) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Location": path})
}

// AssertPixelHeaders checks the content type and that no intermediary may cache the pixel.
func AssertPixelHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, pixelHeaders)
}
