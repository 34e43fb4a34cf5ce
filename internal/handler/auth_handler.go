package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/webgate/internal/pkg/response"
	"github.com/xxxsen/webgate/internal/pkg/session"
	"github.com/xxxsen/webgate/internal/service"
)

const landingPath = "/index"

type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request.")
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	if !h.startSession(c, user.Email) {
		return
	}
	response.Success(c, http.StatusCreated, landingPath)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request.")
		return
	}
	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	if !h.startSession(c, user.Email) {
		return
	}
	response.Success(c, http.StatusOK, landingPath)
}

// Logout clears the session cookie and sends the browser back to the entry
// page. Safe to call without an active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, email string) bool {
	token, err := h.sessions.Issue(email)
	if err != nil {
		handleError(c, err)
		return false
	}
	h.sessions.SetCookie(c, token)
	return true
}
