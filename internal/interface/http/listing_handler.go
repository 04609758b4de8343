package handlers

import (
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/pkg/response"
	"github.com/oksasatya/home-hero-api/pkg/validation"
)

const maxImageBytes = 5 << 20

type ListingHandler struct {
	Svc     *application.ListingService
	Reviews *application.ReviewService
	Logger  *logrus.Logger
}

func NewListingHandler(svc *application.ListingService, reviews *application.ReviewService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Reviews: reviews, Logger: logger}
}

type createListingRequest struct {
	Email        string   `json:"email" binding:"required"`
	ServiceName  string   `json:"serviceName" binding:"required"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	ProviderName string   `json:"providerName"`
	Area         string   `json:"area"`
	Price        *float64 `json:"price" binding:"required,price"`
}

type updateListingRequest struct {
	Email        string   `json:"email" binding:"required"`
	ServiceName  *string  `json:"serviceName"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	ProviderName *string  `json:"providerName"`
	Area         *string  `json:"area"`
	Price        *float64 `json:"price" binding:"omitempty,price"`
}

type ownerRequest struct {
	Email string `json:"email"`
}

type reviewRequest struct {
	UserEmail string   `json:"userEmail" binding:"required"`
	Rating    *float64 `json:"rating" binding:"required"`
	Comment   string   `json:"comment"`
}

// Create handles POST /services.
func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Create(c.Request.Context(), application.CreateListingInput{
		Email:        req.Email,
		ServiceName:  req.ServiceName,
		Category:     req.Category,
		Description:  req.Description,
		Image:        req.Image,
		ProviderName: req.ProviderName,
		Area:         req.Area,
		Price:        req.Price,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, newListingView(l), "service created", nil)
}

// List handles GET /services with optional email, minPrice and maxPrice.
func (h *ListingHandler) List(c *gin.Context) {
	minPrice, ok := queryFloat(c, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := queryFloat(c, "maxPrice")
	if !ok {
		return
	}
	out, err := h.Svc.List(c.Request.Context(), application.ListingQuery{
		Email:    c.Query("email"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newListingViews(out), "services", gin.H{"count": len(out)})
}

// ListForProvider handles GET /provider/services?email=.
func (h *ListingHandler) ListForProvider(c *gin.Context) {
	out, err := h.Svc.ListForProvider(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newListingViews(out), "services", gin.H{"count": len(out)})
}

// Get handles GET /services/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newListingView(l), "service", nil)
}

// Update handles PATCH /services/:id. Only the owner may change a listing
// and the owner email itself is never patched.
func (h *ListingHandler) Update(c *gin.Context) {
	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Email, entity.ListingPatch{
		ServiceName:  req.ServiceName,
		Category:     req.Category,
		Description:  req.Description,
		Image:        req.Image,
		ProviderName: req.ProviderName,
		Area:         req.Area,
		Price:        req.Price,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newListingView(l), "service updated", nil)
}

// Delete handles DELETE /services/:id. The caller email comes from the
// query string or, failing that, a JSON body.
func (h *ListingHandler) Delete(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		var req ownerRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			email = req.Email
		}
	}
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), email); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "service deleted", nil)
}

// AddReview handles PATCH /services/:id/reviews.
func (h *ListingHandler) AddReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Reviews.Append(c.Request.Context(), c.Param("id"), application.ReviewInput{
		UserEmail: req.UserEmail,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newListingView(l), "review added", nil)
}

// Search handles GET /services/search?q=&size=.
func (h *ListingHandler) Search(c *gin.Context) {
	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid query", map[string]string{"size": "must be an integer"})
			return
		}
		size = n
	}
	hits, err := h.Svc.SearchListings(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// UploadImage handles POST /services/:id/image as multipart with an
// email field and a file part.
func (h *ListingHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "file is required", nil)
		return
	}
	if fh.Size > maxImageBytes {
		response.Error[any](c, http.StatusBadRequest, "file too large", map[string]string{"file": "must be at most 5MB"})
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error[any](c, http.StatusBadRequest, "file must be an image", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read file", nil)
		return
	}
	defer f.Close()

	l, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), c.PostForm("email"), f, filepath.Base(fh.Filename), contentType)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newListingView(l), "image uploaded", nil)
}

// queryFloat parses an optional float query parameter. It writes a 400 and
// reports false when the value is present but malformed or not finite.
func queryFloat(c *gin.Context, key string) (*float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		response.Error[any](c, http.StatusBadRequest, "invalid query", map[string]string{key: "must be a finite number"})
		return nil, false
	}
	return &v, true
}
