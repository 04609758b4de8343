package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/pkg/response"
	"github.com/oksasatya/home-hero-api/pkg/validation"
)

type BookingHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *application.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type createBookingRequest struct {
	UserEmail     string  `json:"userEmail" binding:"required"`
	ServiceID     string  `json:"serviceId" binding:"required"`
	ServiceName   string  `json:"serviceName"`
	ProviderEmail string  `json:"providerEmail"`
	Price         float64 `json:"price" binding:"price"`
	BookingDate   string  `json:"bookingDate"`
	Address       string  `json:"address"`
	Instruction   string  `json:"instruction"`
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), application.CreateBookingInput{
		UserEmail:     req.UserEmail,
		ServiceID:     req.ServiceID,
		ServiceName:   req.ServiceName,
		ProviderEmail: req.ProviderEmail,
		Price:         req.Price,
		BookingDate:   req.BookingDate,
		Address:       req.Address,
		Instruction:   req.Instruction,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, b, "booking created", nil)
}

// List handles GET /bookings?email=&providerEmail=.
func (h *BookingHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), application.BookingQuery{
		UserEmail:     c.Query("email"),
		ProviderEmail: c.Query("providerEmail"),
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, out, "bookings", gin.H{"count": len(out)})
}

// Delete handles DELETE /bookings/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "booking deleted", nil)
}

// Check handles GET /bookings/check?userEmail=&serviceId=.
func (h *BookingHandler) Check(c *gin.Context) {
	email := c.Query("userEmail")
	if email == "" {
		email = c.Query("email")
	}
	booked, err := h.Svc.Exists(c.Request.Context(), email, c.Query("serviceId"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booked": booked}, "booking check", nil)
}
