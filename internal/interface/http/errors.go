package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/pkg/helpers"
	"github.com/oksasatya/home-hero-api/pkg/response"
)

// respondError maps an application error onto a status code. Store failures
// are logged and reported without detail.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var ae *application.AppError
	msg := "internal server error"
	if errors.As(err, &ae) {
		msg = ae.Message
	}

	switch application.KindOf(err) {
	case application.KindValidation:
		response.Error[any](c, http.StatusBadRequest, msg, nil)
	case application.KindNotFound:
		response.Error[any](c, http.StatusNotFound, msg, nil)
	case application.KindForbidden:
		response.Error[any](c, http.StatusForbidden, msg, nil)
	case application.KindConflict:
		response.Error[any](c, http.StatusConflict, msg, nil)
	default:
		helpers.LogError(logger, "store failure", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
