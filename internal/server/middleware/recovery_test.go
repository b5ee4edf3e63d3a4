package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware_PassThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	w := httptest.NewRecorder()

	RecoveryMiddleware(setupTestLogger())(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRecoveryMiddleware_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went terribly wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	w := httptest.NewRecorder()

	RecoveryMiddleware(logger)(handler).ServeHTTP(w, req)

	// Клиент видит только generic 500
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Error", bodyMessage(t, w.Body.Bytes()))

	// Причина и стек остаются в логах
	logLine := buf.String()
	assert.Contains(t, logLine, "panic recovered")
	assert.Contains(t, logLine, "something went terribly wrong")
}
