package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
	"github.com/pranathi988/Kamadhenu-app/internal/service/catalog"
)

// CatalogHandler serves the read-only reference data: breeds, schemes,
// eco practices and the lifecycle guide.
type CatalogHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

// ListBreeds returns the breed catalog, optionally filtered and sorted.
func (h *CatalogHandler) ListBreeds(c *gin.Context) {
	filter := catalog.BreedFilter{
		Search: c.Query("search"),
		Region: c.Query("region"),
		Sort:   catalog.BreedSort(c.DefaultQuery("sort", string(catalog.SortByName))),
	}

	breeds, err := h.svc.Breeds(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed listing breeds", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load breed catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeds": breeds, "count": len(breeds)})
}

// ListBreedRegions returns the distinct breed origin regions.
func (h *CatalogHandler) ListBreedRegions(c *gin.Context) {
	regions, err := h.svc.Regions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing breed regions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load regions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// ListEcoPractices returns eco practice summaries, optionally by category.
func (h *CatalogHandler) ListEcoPractices(c *gin.Context) {
	practices, err := h.svc.EcoPractices(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.logger.Error("failed listing eco practices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load eco practices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"practices": practices})
}

// ListPracticeGuides returns the detailed implementation guides.
func (h *CatalogHandler) ListPracticeGuides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"guides": h.svc.PracticeGuides()})
}

// ListSchemes returns government schemes matching the query filters.
func (h *CatalogHandler) ListSchemes(c *gin.Context) {
	filter := models.SchemeFilter{
		Region:  c.Query("region"),
		Type:    c.Query("type"),
		Keyword: c.Query("q"),
	}

	schemes, err := h.svc.Schemes(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed listing schemes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load schemes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schemes": schemes, "count": len(schemes)})
}

// ListSchemeFilters returns the distinct region and type values for the
// scheme browser's dropdowns.
func (h *CatalogHandler) ListSchemeFilters(c *gin.Context) {
	regions, types, err := h.svc.SchemeFilters(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing scheme filters", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load scheme filters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"regions": regions, "types": types})
}

// ListLifecycleStages returns the full lifecycle guide.
func (h *CatalogHandler) ListLifecycleStages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stages": h.svc.LifecycleStages()})
}

// GetLifecycleStage returns one stage by name.
func (h *CatalogHandler) GetLifecycleStage(c *gin.Context) {
	stage, err := h.svc.LifecycleStage(c.Param("stage"))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownStage) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown lifecycle stage"})
			return
		}
		h.logger.Error("failed loading lifecycle stage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load lifecycle stage"})
		return
	}

	c.JSON(http.StatusOK, stage)
}
