// Package server はルーティング表とミドルウェアの配線を行います。
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/assessments"
	"github.com/yourusername/quiz-portal/internal/auth"
	"github.com/yourusername/quiz-portal/internal/config"
	"github.com/yourusername/quiz-portal/internal/pages"
	"github.com/yourusername/quiz-portal/internal/session"
	"github.com/yourusername/quiz-portal/internal/users"
)

// Deps はルーターが必要とするハンドラー群です。
type Deps struct {
	Config      *config.Config
	Auth        *auth.Manager
	Users       *users.Handler
	Assessments *assessments.Handler
	Pages       *pages.Catalog
}

// NewRouter は gin エンジンを組み立てます（デフォルトミドルウェア: Logger, Recovery）。
func NewRouter(d Deps) *gin.Engine {
	router := gin.Default()

	router.Use(session.Middleware(session.CookieOptions{
		Secret: d.Config.SessionSecret,
		Secure: d.Config.SessionCookieSecure,
		MaxAge: d.Config.SessionTTL(),
	}))

	if origins := d.Config.AllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
		router.Use(cors.New(corsConfig))
	}

	setupRoutes(router, d)
	return router
}

func setupRoutes(router *gin.Engine, d Deps) {
	router.GET("/health", handleHealth)
	router.GET("/", d.Auth.Root)

	// 未ログイン向けの画面
	anonymous := router.Group("", d.Auth.RedirectIfAuthenticated())
	{
		anonymous.GET("/home", d.Pages.Serve(pages.Home))
		anonymous.GET("/register", d.Pages.Serve(pages.Register))
		anonymous.GET("/login", d.Pages.Serve(pages.Login))
	}

	router.POST("/register", d.Auth.Register)
	router.POST("/login", d.Auth.Login)
	router.GET("/logout", d.Auth.Logout)

	// ログインが必要な画面
	private := router.Group("", d.Auth.RequirePage())
	{
		private.GET("/view", d.Pages.Serve(pages.View))
		private.GET("/subjects/:subject", d.Pages.ServeSubject)
	}

	api := router.Group("/api", d.Auth.RequireLogin())
	{
		api.GET("/user", d.Users.Profile)
		api.GET("/assessments", d.Assessments.List)
		api.GET("/assessments/:id", d.Assessments.Get)
		api.POST("/assessment", d.Assessments.Submit)
	}

	router.NoRoute(pages.Assets(d.Config.StaticDir))
}

// handleHealth はヘルスチェックエンドポイントのハンドラーです。
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "quiz-portal",
	})
}
