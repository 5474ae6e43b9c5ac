package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pranathi988/Kamadhenu-app/internal/domain/models"
	"github.com/pranathi988/Kamadhenu-app/internal/service/breeding"
	"github.com/pranathi988/Kamadhenu-app/internal/service/catalog"
	"github.com/pranathi988/Kamadhenu-app/internal/service/diagnosis"
	"github.com/pranathi988/Kamadhenu-app/internal/service/sustainability"
	"github.com/pranathi988/Kamadhenu-app/internal/service/valuation"
)

type fakeStore struct{}

func (fakeStore) DiseaseCatalog(ctx context.Context) ([]models.DiseaseRecord, error) {
	return []models.DiseaseRecord{
		{ID: 1, Symptoms: "High fever, drooling, blisters", Disease: "Foot and Mouth Disease", Severity: "High"},
	}, nil
}

func (fakeStore) PriceTrends(ctx context.Context) ([]models.PriceTrend, error) {
	return []models.PriceTrend{
		{Year: 2024, Month: 1, Breed: "Gir", AveragePrice: 68000},
		{Year: 2024, Month: 2, Breed: "Gir", AveragePrice: 68500},
	}, nil
}

func (fakeStore) Breeds(ctx context.Context) ([]models.BreedProfile, error) {
	return []models.BreedProfile{{ID: 1, Name: "Gir", Region: "Gujarat", MilkYield: 12}}, nil
}

func (fakeStore) EcoPractices(ctx context.Context, category string) ([]models.EcoPractice, error) {
	return []models.EcoPractice{{ID: 1, Name: "Biogas Production"}}, nil
}

func (fakeStore) Schemes(ctx context.Context, filter models.SchemeFilter) ([]models.SchemeRecord, error) {
	return []models.SchemeRecord{{ID: 1, Name: "Rashtriya Gokul Mission", Details: "Indigenous breeding"}}, nil
}

func (fakeStore) SchemeRegions(ctx context.Context) ([]string, error) {
	return []string{models.CentralRegion}, nil
}

func (fakeStore) SchemeTypes(ctx context.Context) ([]string, error) {
	return []string{"Animal Husbandry"}, nil
}

func (fakeStore) InsertBreedingPair(ctx context.Context, pair models.BreedingPair) (int64, error) {
	return 1, nil
}

func (fakeStore) RecentBreedingPairs(ctx context.Context, limit int) ([]models.BreedingPair, error) {
	return nil, nil
}

func (fakeStore) RecentOffspring(ctx context.Context, limit int) ([]models.OffspringRecord, error) {
	return nil, nil
}

func testEngine() *gin.Engine {
	store := fakeStore{}
	diagSvc := diagnosis.NewService(store, nil, nil)
	valSvc := valuation.NewService(store, nil, nil)
	breedSvc := breeding.NewService(store, func() int { return 80 }, nil)
	catSvc := catalog.NewService(store, nil)
	susSvc := sustainability.NewService(nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")

	cat := NewCatalogHandler(catSvc, nil)
	adv := NewAdvisoryHandler(diagSvc, valSvc, breedSvc, susSvc, nil)
	ast := NewAssistantHandler(nil, nil, nil)

	api.GET("/breeds", cat.ListBreeds)
	api.GET("/lifecycle/:stage", cat.GetLifecycleStage)
	api.POST("/diagnosis", adv.Diagnose)
	api.POST("/valuation/estimate", adv.EstimateValue)
	api.POST("/breeding/suggest", adv.SuggestPair)
	api.POST("/eco/carbon", adv.EstimateCarbon)
	api.POST("/chat", ast.Chat)
	api.POST("/identify", ast.Identify)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDiagnoseEndpoint(t *testing.T) {
	r := testEngine()

	w := doJSON(t, r, http.MethodPost, "/api/diagnosis", `{"symptoms":"fever, drooling"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Matches    []models.DiseaseMatch `json:"matches"`
		Disclaimer string                `json:"disclaimer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Matches) != 1 || resp.Matches[0].Disease != "Foot and Mouth Disease" {
		t.Errorf("matches = %+v", resp.Matches)
	}
	if !strings.Contains(resp.Disclaimer, "veterinarian") {
		t.Errorf("disclaimer = %q", resp.Disclaimer)
	}
}

func TestDiagnoseEndpointRejectsBadInput(t *testing.T) {
	r := testEngine()

	if w := doJSON(t, r, http.MethodPost, "/api/diagnosis", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing symptoms status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/diagnosis", `{"symptoms":"a, b"}`); w.Code != http.StatusBadRequest {
		t.Errorf("too-short tokens status = %d", w.Code)
	}
}

func TestValuationEndpoint(t *testing.T) {
	r := testEngine()

	w := doJSON(t, r, http.MethodPost, "/api/valuation/estimate",
		`{"breed":"Gir","age_years":4,"weight_kg":350,"milk_yield":8,"health":"Good"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Range models.ValuationRange `json:"range"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Range.Low < 77593 || resp.Range.Low > 77595 {
		t.Errorf("range = %+v", resp.Range)
	}
}

func TestSuggestPairEndpoint(t *testing.T) {
	r := testEngine()

	w := doJSON(t, r, http.MethodPost, "/api/breeding/suggest",
		`{"cattle_1":"GIR-01","cattle_2":"SAH-02","goal":"High Milk Yield"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var pair models.BreedingPair
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if pair.Status != models.StatusRecommended || pair.GeneticScore != 80 {
		t.Errorf("pair = %+v", pair)
	}
}

func TestSuggestPairEndpointValidation(t *testing.T) {
	r := testEngine()

	if w := doJSON(t, r, http.MethodPost, "/api/breeding/suggest", `{"cattle_1":"A-1","cattle_2":"A-1"}`); w.Code != http.StatusBadRequest {
		t.Errorf("same animal status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/breeding/suggest", `{"cattle_1":"A-1","cattle_2":"B-2","goal":"World Domination"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown goal status = %d", w.Code)
	}
}

func TestCarbonEndpoint(t *testing.T) {
	r := testEngine()

	w := doJSON(t, r, http.MethodPost, "/api/eco/carbon",
		`{"fuel_liters":100,"nitrogen_kg":20,"cattle_count":4,"rice_paddy_acres":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var est sustainability.CarbonEstimate
	if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if est.TotalKgCO2e < 1057.9 || est.TotalKgCO2e > 1058.1 {
		t.Errorf("total = %v, want ~1058", est.TotalKgCO2e)
	}
}

func TestLifecycleStageEndpoint(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/lifecycle/Lactating%20Cow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/lifecycle/retired", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown stage status = %d", w.Code)
	}
}

func TestUnconfiguredAssistantReturns503(t *testing.T) {
	r := testEngine()

	if w := doJSON(t, r, http.MethodPost, "/api/chat", `{"message":"hi"}`); w.Code != http.StatusServiceUnavailable {
		t.Errorf("chat status = %d, want 503", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/identify", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("identify status = %d, want 503", w.Code)
	}
}
