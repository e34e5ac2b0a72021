package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		remote    string
		want      string
	}{
		{"remote addr only", "", "192.0.2.10:4711", "192.0.2.10"},
		{"forwarded single", "203.0.113.7", "10.0.0.1:80", "203.0.113.7"},
		{"forwarded chain keeps first hop", "203.0.113.7, 10.0.0.1, 10.0.0.2", "10.0.0.1:80", "203.0.113.7"},
		{"forwarded chain trims spaces", " 203.0.113.7 ,10.0.0.1", "10.0.0.1:80", "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/scan", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}

func TestRateLimiterVaryingProxyTailSharesBucket(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwarded string) int {
		r := httptest.NewRequest(http.MethodGet, "/scan", nil)
		r.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("203.0.113.7, 10.0.0.1"))
	// Same client, different proxy tail: must hit the same exhausted bucket.
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7, 10.9.9.9"))
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(2, 1)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow(), "bucket exhausted")
}
