package response

import "github.com/gin-gonic/gin"

type result struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

func Success(c *gin.Context, status int, redirect string) {
	c.JSON(status, result{Success: true, Redirect: redirect})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, result{Success: false, Message: message})
}
