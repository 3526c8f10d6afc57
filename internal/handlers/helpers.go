package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/timeutil"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeJSON decodes the request body into dst and runs struct validation
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Invalidf("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.Invalidf("validation failed: %v", err)
	}
	return nil
}

// getIPAddress resolves the client address, preferring proxy headers
func getIPAddress(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseTimeParam reads a query parameter as RFC3339 or a plain local date.
// A missing parameter returns nil.
func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := timeutil.ParseLocal(timeutil.DateLayout, value)
	if err != nil {
		return nil, apperrors.Invalidf("invalid %s: %q", name, value)
	}
	return &t, nil
}

// parseIntParam reads a query parameter as int, zero when absent
func parseIntParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.Invalidf("invalid %s: %q", name, value)
	}
	return n, nil
}
