package handler

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/webgate/internal/middleware"
	"github.com/xxxsen/webgate/internal/pkg/session"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Pages         *PageHandler
	Sessions      *session.Manager
	TemplatesGlob string
	StaticDir     string
	CORSAllowlist []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(deps.CORSAllowlist))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.Session(deps.Sessions))

	if deps.TemplatesGlob != "" {
		router.LoadHTMLGlob(deps.TemplatesGlob)
	}
	if deps.StaticDir != "" {
		router.Static("/static", deps.StaticDir)
	}

	api := router.Group("/api")
	api.POST("/register", deps.Auth.Register)
	api.POST("/login", deps.Auth.Login)

	router.GET("/logout", deps.Auth.Logout)

	router.GET("/", deps.Pages.Auth)
	router.GET("/index", deps.Pages.Index)
	router.GET("/reports", deps.Pages.Reports)
	router.GET("/news", deps.Pages.News)
	router.GET("/plan", deps.Pages.Plan)
	router.GET("/profile", deps.Pages.Profile)
	router.GET("/support", deps.Pages.Support)
	router.GET("/team", deps.Pages.Team)

	return router
}
