package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Ping(t *testing.T) {
	t.Parallel()

	h := NewHealth()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	h.Ping(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body pingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}
