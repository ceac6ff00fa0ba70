package http

import (
	"github.com/gin-gonic/gin"
)

// Register mounts every API route on r
func (h *Handlers) Register(r gin.IRouter) {
	// System
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/stats", h.Stats)
	r.GET("/formats", h.Formats)
	r.GET("/config", h.Config)
	r.GET("/build-info", h.BuildInfo)
	r.GET("/metrics/summary", h.MetricsSummary)

	// Repositories
	repos := r.Group("/repositories")
	{
		repos.GET("", h.ListRepositories)
		repos.GET("/", h.ListRepositories)
		repos.POST("", h.CreateRepository)
		repos.POST("/", h.CreateRepository)
		repos.GET("/:name", h.GetRepository)
		repos.GET("/:name/packages", h.ListRepositoryPackages)
	}

	// Packages
	pkgs := r.Group("/packages")
	{
		pkgs.GET("", h.ListPackages)
		pkgs.GET("/", h.ListPackages)
		pkgs.POST("", h.UploadPackage)
		pkgs.POST("/", h.UploadPackage)
		pkgs.GET("/:name", h.GetPackage)
	}
}
