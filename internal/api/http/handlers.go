package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/aggregation"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/packages"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/repository"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/buildinfo"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/config"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

// SupportedOperations is reported by GET /config
var SupportedOperations = []string{
	"list_repositories",
	"create_repository",
	"upload_package",
	"download_package",
	"search_packages",
}

// Handlers contains all HTTP handlers
type Handlers struct {
	repositories *repository.Service
	packages     *packages.Service
	aggregation  *aggregation.Service
	metrics      *HandlerMetrics
	app          config.AppConfig
}

// NewHandlers creates a new handler set
func NewHandlers(
	repositories *repository.Service,
	packages *packages.Service,
	aggregation *aggregation.Service,
	metrics *HandlerMetrics,
	app config.AppConfig,
) *Handlers {
	return &Handlers{
		repositories: repositories,
		packages:     packages,
		aggregation:  aggregation,
		metrics:      metrics,
		app:          app,
	}
}

// Root returns the welcome payload
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.InfoResponse{
		Message: "Welcome to the Nexus Repository Manager API",
		Version: h.app.Version,
		Docs:    "/docs",
		Health:  "/health",
	})
}

// Health handles the liveness probe
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now(),
		Version:     h.app.Version,
		Environment: h.app.Environment,
	})
}

// Stats returns aggregate registry statistics
func (h *Handlers) Stats(c *gin.Context) {
	done := h.metrics.Track("aggregation", "stats")
	stats := h.aggregation.Stats()
	done(statusSuccess)

	c.JSON(http.StatusOK, stats)
}

// Formats lists the formats in use and the known format descriptions
func (h *Handlers) Formats(c *gin.Context) {
	c.JSON(http.StatusOK, h.aggregation.SupportedFormats())
}

// Config echoes static service configuration
func (h *Handlers) Config(c *gin.Context) {
	ops := make([]string, len(SupportedOperations))
	copy(ops, SupportedOperations)

	c.JSON(http.StatusOK, types.ConfigResponse{
		NexusURL:            h.app.NexusURL,
		APIVersion:          h.app.Version,
		SupportedOperations: ops,
	})
}

// BuildInfo describes the running binary
func (h *Handlers) BuildInfo(c *gin.Context) {
	c.JSON(http.StatusOK, buildinfo.Read(h.app.Environment))
}

// ListRepositories returns every repository
func (h *Handlers) ListRepositories(c *gin.Context) {
	c.JSON(http.StatusOK, h.repositories.GetAll())
}

// GetRepository returns one repository by name
func (h *Handlers) GetRepository(c *gin.Context) {
	repo, err := h.repositories.GetByName(c.Param("name"))
	if err != nil {
		respondError(c, resourceRepository, err)
		return
	}
	c.JSON(http.StatusOK, repo)
}

// CreateRepository stores a new repository
func (h *Handlers) CreateRepository(c *gin.Context) {
	var req types.CreateRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RepositoryCreate(createInvalid)
		respondBindError(c, err)
		return
	}

	done := h.metrics.Track("repository", "create")
	repo, err := h.repositories.Create(req.ToRepository())
	if err != nil {
		done(statusError)
		h.metrics.RepositoryCreate(createOutcome(err))
		respondError(c, resourceRepository, err)
		return
	}
	done(statusSuccess)

	h.metrics.RepositoryCreate(createCreated)
	h.metrics.SyncRegistry()
	c.JSON(http.StatusOK, repo)
}

// ListRepositoryPackages returns the packages of an existing repository
func (h *Handlers) ListRepositoryPackages(c *gin.Context) {
	pkgs, err := h.packages.GetByRepository(c.Param("name"))
	if err != nil {
		respondError(c, resourceRepository, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// ListPackages returns every package record
func (h *Handlers) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.packages.GetAll())
}

// GetPackage returns all versions of a package
func (h *Handlers) GetPackage(c *gin.Context) {
	pkgs, err := h.packages.GetByName(c.Param("name"))
	if err != nil {
		respondError(c, resourcePackage, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// UploadPackage records a package with a server-assigned upload date
func (h *Handlers) UploadPackage(c *gin.Context) {
	var req types.UploadPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	done := h.metrics.Track("packages", "upload")
	pkg, err := h.packages.Upload(req.ToPackage())
	if err != nil {
		done(statusError)
		respondError(c, resourcePackage, err)
		return
	}
	done(statusSuccess)

	h.metrics.PackageUpload(pkg.Repository)
	h.metrics.SyncRegistry()
	c.JSON(http.StatusOK, pkg)
}

// MetricsSummary returns a JSON digest of request and registry metrics
func (h *Handlers) MetricsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Summary())
}
