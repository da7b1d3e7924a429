package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-analytics-srv/config"
	"social-analytics-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allow bool
	err   error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, log.GetRequestID(c.Request.Context()))
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func serve(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), nil, config.CORSConfig{})
	r := newRouter(mw, mw.RequestID())

	w := serve(r, http.MethodGet, "/x", map[string]string{HeaderRequestID: "abc"})
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc", w.Body.String())

	w = serve(r, http.MethodGet, "/x", nil)
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	assert.Equal(t, w.Header().Get(HeaderRequestID), w.Body.String())
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limiter stubLimiter
		want    int
	}{
		{name: "allowed", limiter: stubLimiter{allow: true}, want: http.StatusOK},
		{name: "rejected", limiter: stubLimiter{allow: false}, want: http.StatusTooManyRequests},
		{name: "limiter down fails open", limiter: stubLimiter{err: errors.New("down")}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(log.NewNop(), tt.limiter, config.CORSConfig{})
			r := newRouter(mw, mw.RateLimit())
			assert.Equal(t, tt.want, serve(r, http.MethodGet, "/x", nil).Code)
		})
	}
}

func TestCORS(t *testing.T) {
	mw := New(log.NewNop(), nil, config.CORSConfig{AllowedOrigins: []string{"https://dash.example.com"}})
	r := newRouter(mw, mw.CORS())

	w := serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://dash.example.com"})
	assert.Equal(t, "https://dash.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/x", map[string]string{"Origin": "https://dash.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecovery(t *testing.T) {
	mw := New(log.NewNop(), nil, config.CORSConfig{})
	r := newRouter(mw, Recovery(log.NewNop(), nil))

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
