package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/webgate/internal/middleware"
	apperrors "github.com/xxxsen/webgate/internal/pkg/errors"
	"github.com/xxxsen/webgate/internal/pkg/response"
)

func getSessionEmail(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextEmailKey)
	email, _ := value.(string)
	return email
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Info("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	switch err {
	case apperrors.ErrNameRequired:
		response.Error(c, http.StatusBadRequest, "Name required.")
	case apperrors.ErrInvalidEmail:
		response.Error(c, http.StatusBadRequest, "Invalid email.")
	case apperrors.ErrPhoneRequired:
		response.Error(c, http.StatusBadRequest, "Phone required.")
	case apperrors.ErrPasswordTooShort:
		response.Error(c, http.StatusBadRequest, "Password too short.")
	case apperrors.ErrEmailTaken:
		response.Error(c, http.StatusBadRequest, "Email already registered.")
	case apperrors.ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "Invalid credentials.")
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error.")
	}
}
