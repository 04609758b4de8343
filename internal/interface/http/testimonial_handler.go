package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/pkg/response"
	"github.com/oksasatya/home-hero-api/pkg/validation"
)

type TestimonialHandler struct {
	Svc    *application.TestimonialService
	Logger *logrus.Logger
}

func NewTestimonialHandler(svc *application.TestimonialService, logger *logrus.Logger) *TestimonialHandler {
	return &TestimonialHandler{Svc: svc, Logger: logger}
}

// Create handles POST /testimonials. The body is stored as given.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Append(c.Request.Context(), payload)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "testimonial created", nil)
}

// List handles GET /testimonials.
func (h *TestimonialHandler) List(c *gin.Context) {
	out, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, out, "testimonials", gin.H{"count": len(out)})
}
