package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIPAddressForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getIPAddress(r))
}

func TestGetIPAddressRealIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Real-IP", "203.0.113.10")
	assert.Equal(t, "203.0.113.10", getIPAddress(r))
}

func TestGetIPAddressRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.1:54321"
	assert.Equal(t, "192.0.2.1", getIPAddress(r))
}

func TestParseTimeParamRFC3339(t *testing.T) {
	r := httptest.NewRequest("GET", "/?start=2024-03-01T08:00:00Z", nil)

	got, err := parseTimeParam(r, "start")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseTimeParamDate(t *testing.T) {
	r := httptest.NewRequest("GET", "/?end=2024-03-31", nil)

	got, err := parseTimeParam(r, "end")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 31, got.Day())
}

func TestParseTimeParamMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	got, err := parseTimeParam(r, "start")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseTimeParamInvalid(t *testing.T) {
	r := httptest.NewRequest("GET", "/?start=yesterday", nil)

	_, err := parseTimeParam(r, "start")
	assert.Error(t, err)
}

func TestParseIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=25", nil)

	n, err := parseIntParam(r, "limit")
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	n, err = parseIntParam(r, "offset")
	require.NoError(t, err)
	assert.Zero(t, n)

	r = httptest.NewRequest("GET", "/?limit=abc", nil)
	_, err = parseIntParam(r, "limit")
	assert.Error(t, err)
}
