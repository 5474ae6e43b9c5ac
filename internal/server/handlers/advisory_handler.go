package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
	"github.com/pranathi988/Kamadhenu-app/internal/service/breeding"
	"github.com/pranathi988/Kamadhenu-app/internal/service/diagnosis"
	"github.com/pranathi988/Kamadhenu-app/internal/service/sustainability"
	"github.com/pranathi988/Kamadhenu-app/internal/service/valuation"
)

// AdvisoryHandler serves the computed advice endpoints: disease lookup,
// valuation, breeding suggestions and the sustainability calculators.
type AdvisoryHandler struct {
	diagnosis      *diagnosis.Service
	valuation      *valuation.Service
	breeding       *breeding.Service
	sustainability *sustainability.Service
	logger         *zap.Logger
}

// NewAdvisoryHandler constructs the HTTP handler adapter.
func NewAdvisoryHandler(diag *diagnosis.Service, val *valuation.Service, breed *breeding.Service, sus *sustainability.Service, logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{
		diagnosis:      diag,
		valuation:      val,
		breeding:       breed,
		sustainability: sus,
		logger:         logger,
	}
}

type diagnosisRequest struct {
	Symptoms string `json:"symptoms" binding:"required"`
	Limit    int    `json:"limit"`
}

// Diagnose matches free-text symptoms against the disease catalog.
func (h *AdvisoryHandler) Diagnose(c *gin.Context) {
	var req diagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptoms field is required"})
		return
	}

	matches, err := h.diagnosis.Match(c.Request.Context(), req.Symptoms, req.Limit)
	if err != nil {
		if errors.Is(err, diagnosis.ErrNoSymptoms) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid symptoms provided, separate symptoms with commas"})
			return
		}
		h.logger.Error("symptom lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to search disease catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches":    matches,
		"count":      len(matches),
		"disclaimer": "Preliminary information only. Always consult a qualified veterinarian for diagnosis and treatment.",
	})
}

// EstimateValue computes a price band for the described animal.
func (h *AdvisoryHandler) EstimateValue(c *gin.Context) {
	var input models.ValuationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid valuation input"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"range":      h.valuation.Estimate(input),
		"disclaimer": "Indicative estimate only. Actual market prices vary by location, season and negotiation.",
	})
}

// ListPriceTrends returns the historical market price rows.
func (h *AdvisoryHandler) ListPriceTrends(c *gin.Context) {
	trends, err := h.valuation.Trends(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing price trends", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load price trends"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// PriceSummary returns the latest price point and month-over-month delta.
func (h *AdvisoryHandler) PriceSummary(c *gin.Context) {
	summary, err := h.valuation.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("failed summarizing price trends", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to summarize price trends"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

type suggestPairRequest struct {
	Cattle1 string `json:"cattle_1" binding:"required"`
	Cattle2 string `json:"cattle_2" binding:"required"`
	Goal    string `json:"goal"`
}

// SuggestPair scores a pairing for a breeding goal and logs it.
func (h *AdvisoryHandler) SuggestPair(c *gin.Context) {
	var req suggestPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cattle_1 and cattle_2 are required"})
		return
	}

	goal := models.BreedingGoal(req.Goal)
	if req.Goal == "" {
		goal = models.GoalHighMilkYield
	} else if !validGoal(goal) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown breeding goal", "goals": models.BreedingGoals()})
		return
	}

	pair, err := h.breeding.SuggestPair(c.Request.Context(), req.Cattle1, req.Cattle2, goal)
	if err != nil {
		if errors.Is(err, breeding.ErrInvalidPair) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed suggesting pair", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to record pairing suggestion"})
		return
	}

	c.JSON(http.StatusCreated, pair)
}

func validGoal(goal models.BreedingGoal) bool {
	for _, g := range models.BreedingGoals() {
		if g == goal {
			return true
		}
	}
	return false
}

// ListBreedingGoals returns the supported goals in display order.
func (h *AdvisoryHandler) ListBreedingGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": models.BreedingGoals()})
}

// ListRecentPairs returns the newest pairing suggestions.
func (h *AdvisoryHandler) ListRecentPairs(c *gin.Context) {
	pairs, err := h.breeding.RecentPairs(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing breeding pairs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load breeding pairs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pairs": pairs})
}

// ListRecentOffspring returns the newest offspring records.
func (h *AdvisoryHandler) ListRecentOffspring(c *gin.Context) {
	records, err := h.breeding.RecentOffspring(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing offspring", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load offspring records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offspring": records})
}

// EstimateCarbon returns the approximate monthly farm footprint.
func (h *AdvisoryHandler) EstimateCarbon(c *gin.Context) {
	var input sustainability.CarbonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carbon input"})
		return
	}

	c.JSON(http.StatusOK, h.sustainability.Carbon(input))
}

// EstimateWater returns the approximate monthly irrigation water usage.
func (h *AdvisoryHandler) EstimateWater(c *gin.Context) {
	var input sustainability.WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid water input"})
		return
	}

	c.JSON(http.StatusOK, h.sustainability.Water(input))
}
