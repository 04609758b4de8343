package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/config"
	"github.com/oksasatya/home-hero-api/internal/container"
	"github.com/oksasatya/home-hero-api/pkg/validation"
)

func newTestEngine(c *qt.C, debug bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.Load()
	cfg.DebugMetricsEnabled = debug
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRepositories(container.MemoryRepositories())

	r := gin.New()
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func TestAllRoutesMounted(t *testing.T) {
	c := qt.New(t)
	r := newTestEngine(c, false)

	got := map[string]bool{}
	for _, ri := range r.Routes() {
		got[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"POST /users",
		"GET /users",
		"GET /users/email/:email",
		"PATCH /users/email/:email",
		"PATCH /users/:id/role",
		"POST /services",
		"GET /services",
		"GET /services/search",
		"GET /services/:id",
		"PATCH /services/:id",
		"DELETE /services/:id",
		"POST /services/:id/image",
		"PATCH /services/:id/reviews",
		"GET /provider/services",
		"POST /bookings",
		"GET /bookings",
		"GET /bookings/check",
		"DELETE /bookings/:id",
		"POST /testimonials",
		"GET /testimonials",
	} {
		c.Check(got[want], qt.IsTrue, qt.Commentf("missing route %s", want))
	}
	c.Assert(got["GET /debug/vars"], qt.IsFalse)
}

func TestDebugVarsPrivateOnly(t *testing.T) {
	c := qt.New(t)
	r := newTestEngine(c, true)

	req := httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	req.RemoteAddr = "127.0.0.1:4000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	req = httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	req.RemoteAddr = "203.0.113.9:4000"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusForbidden)
}

func TestRegisterThenFetchThroughRouter(t *testing.T) {
	c := qt.New(t)
	r := newTestEngine(c, false)

	req := httptest.NewRequest(http.MethodGet, "/users/email/nobody@x.io", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusNotFound)
}
