package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	APIKey       = "test123"
	APIKeyHeader = "X-Api-Key"
)

// DummyLogger returns a logger writing bare messages to both stderr and w,
// with the standard library logger redirected to it.
func DummyLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "message",
	})

	writer := zap.CombineWriteSyncers(zapcore.AddSync(os.Stderr), zapcore.AddSync(w))

	l := zap.New(zapcore.NewCore(encoder, writer, zapcore.DebugLevel))
	zap.RedirectStdLog(l)

	return l
}

// NewRequest builds a server-side request carrying the given API key, or no
// key header at all when key is empty.
func NewRequest(method, target string, body io.Reader, key string) *http.Request {
	r := httptest.NewRequest(method, target, body)
	if key != "" {
		r.Header.Set(APIKeyHeader, key)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}
