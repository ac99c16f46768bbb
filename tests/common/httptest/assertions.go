//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the response body; Data stays raw so callers pick the type.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// AssertSuccessResponse checks the status and success flag and decodes the
// data member into targetData when it is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetData any) Envelope {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	env := DecodeEnvelope(t, w)
	assert.True(t, env.Success, "success flag not set: %s", w.Body.String())

	if targetData != nil {
		require.NotEmpty(t, env.Data, "response has no data member")
		require.NoError(t, json.Unmarshal(env.Data, targetData), "Failed to decode data: %s", string(env.Data))
	}
	return env
}

// AssertErrorResponse checks the status and that message contains
// expectedErrorMsg (skipped when empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	env := DecodeEnvelope(t, w)
	assert.False(t, env.Success)

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	return env
}
