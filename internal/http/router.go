package api

import (
	"log"
	stdhttp "net/http"

	"toyshop/internal/auth"
	intconfig "toyshop/internal/config"
	h "toyshop/internal/http/handlers"
	"toyshop/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	tokens := auth.NewTokenService(env.JWTSecret)
	h.Configure(h.Config{PageSize: env.PageSize, Tokens: tokens})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		requireAuth := middleware.RequireAuth(tokens)
		requireAdmin := middleware.RequireAdmin()

		// Toys
		toys := api.Group("/toy")
		toys.GET("", h.GetToys)
		toys.GET("/:id", h.GetToyByID)
		toys.POST("", requireAuth, requireAdmin, h.AddToy)
		toys.PUT("/:id", requireAuth, requireAdmin, h.UpdateToy)
		toys.DELETE("/:id", requireAuth, requireAdmin, h.RemoveToy)
		toys.POST("/:id/msg", requireAuth, h.AddToyMsg)
		toys.DELETE("/:id/msg/:msgId", requireAuth, h.RemoveToyMsg)

		// Reviews
		reviews := api.Group("/review", requireAuth)
		reviews.GET("", h.GetReviews)
		reviews.POST("", h.AddReview)
		reviews.DELETE("/:id", h.DeleteReview)

		// Reports
		reports := api.Group("/reports", requireAuth, requireAdmin)
		reports.GET("/catalog", h.GetCatalogReport)
	}

	return r
}
