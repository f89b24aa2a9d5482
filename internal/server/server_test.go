package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makers-assistant/internal/catalog"
	"makers-assistant/internal/chat"
	"makers-assistant/internal/common/config"
	apperrors "makers-assistant/internal/common/errors"
	"makers-assistant/internal/common/logger"
	"makers-assistant/internal/common/observability"
	"makers-assistant/internal/nlp"
	"makers-assistant/internal/recommend"
	"makers-assistant/pkg/registry"
)

func testInventory() catalog.Inventory {
	return catalog.Inventory{
		Computers: []catalog.Product{
			{ID: "c1", Name: "HP Pavilion", Brand: "HP", Type: "laptop", Price: 1299, Stock: 5,
				Specs: map[string]string{"RAM": "16GB"}, Category: "gaming",
				Description: "computador gaming", Rating: 4.5},
			{ID: "c2", Name: "Dell XPS", Brand: "Dell", Type: "laptop", Price: 1599, Stock: 3,
				Specs: map[string]string{"RAM": "16GB"}, Category: "ultrabook",
				Description: "ultrabook liviano", Rating: 4.7},
		},
		Accessories: []catalog.Product{
			{ID: "a1", Name: "MX Master", Brand: "Logitech", Type: "mouse", Price: 129, Stock: 10,
				Specs: map[string]string{"Sensor": "8000 DPI"}, Category: "peripherals",
				Description: "mouse inalámbrico", Rating: 4.6},
		},
		Smartphones: []catalog.Product{
			{ID: "s1", Name: "iPhone 14", Brand: "Apple", Type: "smartphone", Price: 1299, Stock: 4,
				Specs: map[string]string{"Cámara": "48MP"}, Category: "flagship",
				Description: "teléfono insignia", Rating: 4.8},
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := logger.NewNoOpLogger()
	vocab := registry.Default()
	provider := catalog.NewProvider(testInventory())
	classifier := nlp.NewClassifier(vocab, nlp.NewSubstringMatcher(), log)
	engine := chat.NewEngineWithRandom(provider, classifier, vocab, func(n int) int { return 0 }, log)
	scorer := recommend.NewScorer(provider, log)

	// A zero-value Observability records nothing; it keeps the test from
	// registering a second Prometheus exporter.
	return New(config.ServerConfig{Port: 8080}, engine, scorer, provider, &observability.Observability{}, log)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

// ==========================
// Chat Endpoint Tests
// ==========================

func TestServer_Chat(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat", ChatRequest{Message: "hola"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "greeting", resp.Intent)
	assert.InDelta(t, 0.5, resp.Confidence, 1e-9)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.SuggestedActions)
}

func TestServer_ChatReturnsProducts(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat", ChatRequest{Message: "precio del iphone"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "price", resp.Intent)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "s1", resp.Products[0].ID)
}

func TestServer_ChatMissingMessage(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/chat", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.ErrCodeInvalidRequest), resp.Code)
}

// ==========================
// Recommendation Endpoint Tests
// ==========================

func TestServer_Recommendations(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/recommendations", RecommendationRequest{
		Budget: 2000,
		Brand:  "dell",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Four products split 2 / 2 / 0 across the tiers.
	require.Len(t, resp.HighlyRecommended, 2)
	assert.Len(t, resp.Recommended, 2)
	assert.Empty(t, resp.NotRecommended)

	// The brand preference pushes the Dell to the top.
	assert.Equal(t, "c2", resp.HighlyRecommended[0].ID)
	assert.Greater(t, resp.HighlyRecommended[0].Score, resp.HighlyRecommended[1].Score)
}

// ==========================
// Product Endpoint Tests
// ==========================

func TestServer_ListProducts(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 4)
}

func TestServer_ListProductsByCategory(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products?category=smartphones", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "s1", products[0].ID)
}

func TestServer_ProductStats(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats catalog.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 22, stats.TotalStock)
}

func TestServer_SearchProducts(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products/search?q=laptop", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestServer_SearchProductsMissingQuery(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products/search", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetProduct(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products/a1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var product catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "MX Master", product.Name)
}

func TestServer_GetProductNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.ErrCodeProductNotFound), resp.Code)
}

// ==========================
// Health Endpoint Tests
// ==========================

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
