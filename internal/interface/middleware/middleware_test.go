package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.GetString("request_id")) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	c.Assert(err, qt.IsNil)
	c.Assert(w.Header().Get(HeaderRequestID), qt.Equals, w.Body.String())

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, id)
	c.Assert(serve(r, req).Body.String(), qt.Equals, id)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	c.Assert(serve(r, req).Body.String(), qt.Not(qt.Equals), "<script>")
}

func TestRealIPAndPrivateGuard(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RealIP())
	r.GET("/ip", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.GetString("real_ip")) })
	r.GET("/private", RequireAllowed(AllowPrivateIP()), func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	c.Assert(serve(r, req).Body.String(), qt.Equals, "203.0.113.7")

	req = httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("CF-Connecting-IP", "198.51.100.2")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	c.Assert(serve(r, req).Body.String(), qt.Equals, "198.51.100.2")

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	c.Assert(serve(r, req).Code, qt.Equals, http.StatusNoContent)

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "8.8.8.8")
	c.Assert(serve(r, req).Code, qt.Equals, http.StatusForbidden)
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP("t"), nil), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	for i := 0; i < 3; i++ {
		c.Assert(serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code, qt.Equals, http.StatusOK)
	}
}
