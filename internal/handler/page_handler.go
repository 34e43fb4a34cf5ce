package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/webgate/internal/model"
	"github.com/xxxsen/webgate/internal/service"
)

// PageHandler renders the site pages. Only /index and /profile look up the
// logged-in user; the rest render the same for everyone.
type PageHandler struct {
	auth *service.AuthService
}

func NewPageHandler(auth *service.AuthService) *PageHandler {
	return &PageHandler{auth: auth}
}

func (h *PageHandler) Auth(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", gin.H{})
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"user": h.currentUser(c)})
}

func (h *PageHandler) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", gin.H{"user": h.currentUser(c)})
}

func (h *PageHandler) Reports(c *gin.Context) {
	c.HTML(http.StatusOK, "reports.html", gin.H{})
}

func (h *PageHandler) News(c *gin.Context) {
	c.HTML(http.StatusOK, "news.html", gin.H{})
}

func (h *PageHandler) Plan(c *gin.Context) {
	c.HTML(http.StatusOK, "plan.html", gin.H{})
}

func (h *PageHandler) Support(c *gin.Context) {
	c.HTML(http.StatusOK, "support.html", gin.H{})
}

func (h *PageHandler) Team(c *gin.Context) {
	c.HTML(http.StatusOK, "team.html", gin.H{})
}

func (h *PageHandler) currentUser(c *gin.Context) *model.User {
	user, err := h.auth.CurrentUser(c.Request.Context(), getSessionEmail(c))
	if err != nil {
		return nil
	}
	return user
}
