package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makers-assistant/internal/catalog"
	"makers-assistant/internal/common/logger"
	"makers-assistant/internal/nlp"
	"makers-assistant/pkg/registry"
)

func testInventory() catalog.Inventory {
	return catalog.Inventory{
		Computers: []catalog.Product{
			{ID: "c1", Name: "HP Pavilion", Brand: "HP", Type: "laptop", Price: 1299, Stock: 5,
				Specs: map[string]string{"RAM": "32GB", "Procesador": "i7", "Pantalla": "15.6\""},
				Category: "gaming", Description: "computador gaming", Rating: 4.5},
			{ID: "c2", Name: "Dell XPS", Brand: "Dell", Type: "laptop", Price: 1599, Stock: 3,
				Specs: map[string]string{"RAM": "16GB", "Peso": "1.2kg"},
				Category: "ultrabook", Description: "ultrabook liviano", Rating: 4.7},
		},
		Accessories: []catalog.Product{
			{ID: "a1", Name: "MX Master", Brand: "Logitech", Type: "mouse", Price: 129, Stock: 10,
				Specs: map[string]string{"Sensor": "8000 DPI"},
				Category: "peripherals", Description: "mouse inalámbrico", Rating: 4.6},
		},
		Smartphones: []catalog.Product{
			{ID: "s1", Name: "iPhone 14", Brand: "Apple", Type: "smartphone", Price: 1299, Stock: 4,
				Specs: map[string]string{"Cámara": "48MP", "Pantalla": "6.1\""},
				Category: "flagship", Description: "teléfono insignia", Rating: 4.8},
		},
	}
}

// newTestEngine pins the random picker to the first lead line.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	vocab := registry.Default()
	log := logger.NewNoOpLogger()
	provider := catalog.NewProvider(testInventory())
	classifier := nlp.NewClassifier(vocab, nlp.NewSubstringMatcher(), log)
	return NewEngineWithRandom(provider, classifier, vocab, func(n int) int { return 0 }, log)
}

// ==========================
// Greeting
// ==========================

func TestEngine_Greeting(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("hola")

	assert.Equal(t, nlp.IntentGreeting, intent.Type)
	assert.InDelta(t, 0.5, intent.Confidence, 1e-9)
	assert.Contains(t, resp.Message, greetingLines[0])
	assert.Contains(t, resp.Message, "Tenemos 4 productos disponibles")
	assert.Contains(t, resp.Message, "2 computadores")
	assert.Contains(t, resp.Message, "1 accesorios")
	assert.Contains(t, resp.Message, "1 smartphones")
	assert.Equal(t, []string{"Ver todos los computadores", "Mostrar precios", "Recomiéndame algo"}, resp.SuggestedActions)
	assert.Empty(t, resp.Products)
}

func TestEngine_GreetingRandomLineIsInjectable(t *testing.T) {
	vocab := registry.Default()
	log := logger.NewNoOpLogger()
	provider := catalog.NewProvider(testInventory())
	classifier := nlp.NewClassifier(vocab, nlp.NewSubstringMatcher(), log)

	for i := range greetingLines {
		idx := i
		e := NewEngineWithRandom(provider, classifier, vocab, func(n int) int { return idx }, log)
		resp, _ := e.Answer("hola")
		assert.Contains(t, resp.Message, greetingLines[idx])
	}
}

// ==========================
// Inventory
// ==========================

func TestEngine_InventoryByBrand(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("qué productos de hp tienen en stock")

	assert.Equal(t, nlp.IntentInventory, intent.Type)
	assert.Contains(t, resp.Message, "Productos de HP:")
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "c1", resp.Products[0].ID)
	assert.Contains(t, resp.Message, "Stock: 5 | Precio: $1,299")
	// Exactly one result gets the detail question.
	assert.Contains(t, resp.Message, "¿Te gustaría conocer más detalles de este producto?")
	assert.Equal(t, []string{"Ver especificaciones", "Comparar precios"}, resp.SuggestedActions)
}

func TestEngine_InventoryByComputerTerm(t *testing.T) {
	e := newTestEngine(t)

	resp, _ := e.Answer("hay stock de algún computador")

	assert.Contains(t, resp.Message, "Computadores disponibles:")
	require.Len(t, resp.Products, 2)
	// Several results get the choice question instead.
	assert.Contains(t, resp.Message, "¿Cuál de estos te interesa más?")
}

func TestEngine_InventoryByPhoneTerm(t *testing.T) {
	e := newTestEngine(t)

	resp, _ := e.Answer("cuántos teléfonos tienen")

	assert.Contains(t, resp.Message, "Smartphones disponibles:")
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "s1", resp.Products[0].ID)
}

func TestEngine_InventorySummary(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("cuánto inventario hay")

	assert.Equal(t, nlp.IntentInventory, intent.Type)
	assert.Contains(t, resp.Message, "Inventario actual")
	assert.Contains(t, resp.Message, "**Computadores:** 2 disponibles")
	assert.Contains(t, resp.Message, "• HP: 5 productos")
	assert.Contains(t, resp.Message, "• Logitech: 10 productos")
	assert.Contains(t, resp.Message, "**Total en stock:** 22 unidades")
	assert.Empty(t, resp.Products)
	assert.Equal(t, []string{"Ver computadores", "Ver smartphones", "Ver accesorios"}, resp.SuggestedActions)
}

// ==========================
// Price
// ==========================

func TestEngine_PriceSortedAscending(t *testing.T) {
	e := newTestEngine(t)

	// Both entities match the two laptops; they must come back cheapest
	// first and without duplicates.
	resp, intent := e.Answer("precio del laptop hp y del laptop dell")

	assert.Equal(t, nlp.IntentPrice, intent.Type)
	assert.Contains(t, resp.Message, "Precios encontrados")
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "c1", resp.Products[0].ID)
	assert.Equal(t, "c2", resp.Products[1].ID)
}

func TestEngine_PriceNoDuplicateIDs(t *testing.T) {
	e := newTestEngine(t)

	// "apple" and "iphone" both hit the same product.
	resp, _ := e.Answer("precio del iphone de apple")

	require.Len(t, resp.Products, 1)
	assert.Equal(t, "s1", resp.Products[0].ID)
}

func TestEngine_PriceFallback(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("cuánto cuesta")

	assert.Equal(t, nlp.IntentPrice, intent.Type)
	assert.Empty(t, resp.Products)
	assert.Contains(t, resp.Message, "Información de precios")
	// (1299+1599+129+1299)/4 = 1081.5, rounded
	assert.Contains(t, resp.Message, "Precio promedio: $1,082")
	assert.Contains(t, resp.Message, "Computadores: $1,299 - $1,999")
	assert.Contains(t, resp.Message, "Accesorios: $129 - $179")
}

// ==========================
// Specs
// ==========================

func TestEngine_SpecsNoMatch(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("qué especificaciones tiene")

	assert.Equal(t, nlp.IntentSpecs, intent.Type)
	assert.Contains(t, resp.Message, "No especificaste qué producto te interesa")
	assert.Equal(t, []string{"Ver computadores", "Ver smartphones", "Ver accesorios"}, resp.SuggestedActions)
}

func TestEngine_SpecsSingleMatch(t *testing.T) {
	e := newTestEngine(t)

	resp, _ := e.Answer("especificaciones del iphone")

	require.Len(t, resp.Products, 1)
	assert.Contains(t, resp.Message, "iPhone 14 - Apple")
	assert.Contains(t, resp.Message, "• **Cámara:** 48MP")
	assert.Contains(t, resp.Message, "**Precio:** $1,299")
	assert.Contains(t, resp.Message, "**Stock:** 4 disponibles")
	assert.Contains(t, resp.Message, "**Rating:** 4.8/5")
	assert.Contains(t, resp.Message, "teléfono insignia")
}

func TestEngine_SpecsMultipleMatches(t *testing.T) {
	e := newTestEngine(t)

	resp, _ := e.Answer("especificaciones del laptop")

	require.Len(t, resp.Products, 2)
	assert.Contains(t, resp.Message, "Especificaciones encontradas")
	assert.Contains(t, resp.Message, "¿Cuál te gustaría conocer en detalle?")
	// Only the first two spec pairs per product are shown; the third
	// sorted pair (RAM: 32GB) is cut.
	assert.NotContains(t, resp.Message, "32GB")
	assert.Equal(t, []string{"Ver detalles completos", "Comparar todos"}, resp.SuggestedActions)
}

// ==========================
// Recommendation quick-path
// ==========================

func TestEngine_RecommendationTopThreeByRating(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("qué me recomiendas")

	assert.Equal(t, nlp.IntentRecommendation, intent.Type)
	require.Len(t, resp.Products, 3)
	assert.Equal(t, "s1", resp.Products[0].ID) // 4.8
	assert.Equal(t, "c2", resp.Products[1].ID) // 4.7
	assert.Equal(t, "a1", resp.Products[2].ID) // 4.6
	assert.Contains(t, resp.Message, "Mis recomendaciones top")
	assert.True(t, strings.Contains(resp.Message, "1. **iPhone 14**"))
}

func TestEngine_RecommendationSkipsOutOfStock(t *testing.T) {
	inv := testInventory()
	inv.Smartphones[0].Stock = 0

	vocab := registry.Default()
	log := logger.NewNoOpLogger()
	classifier := nlp.NewClassifier(vocab, nlp.NewSubstringMatcher(), log)
	e := NewEngineWithRandom(catalog.NewProvider(inv), classifier, vocab, func(n int) int { return 0 }, log)

	resp, _ := e.Answer("qué me recomiendas")

	require.Len(t, resp.Products, 3)
	for _, p := range resp.Products {
		assert.NotEqual(t, "s1", p.ID)
		assert.Greater(t, p.Stock, 0)
	}
}

// ==========================
// Unknown
// ==========================

func TestEngine_Unknown(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("xyzzy plugh")

	assert.Equal(t, nlp.IntentUnknown, intent.Type)
	assert.Equal(t, 0.1, intent.Confidence)
	assert.Contains(t, resp.Message, unknownLines[0])
	assert.Contains(t, resp.Message, "Puedo ayudarte con:")
	assert.Equal(t, []string{"Ver inventario", "Mostrar precios", "Recomiéndame algo"}, resp.SuggestedActions)
}

func TestEngine_EmptyMessageNeverFails(t *testing.T) {
	e := newTestEngine(t)

	resp, intent := e.Answer("")

	assert.Equal(t, nlp.IntentUnknown, intent.Type)
	assert.NotEmpty(t, resp.Message)
}

// ==========================
// Helpers
// ==========================

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{129, "129"},
		{1299, "1,299"},
		{1234567, "1,234,567"},
		{1057.5, "1,057.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatPrice(tt.in))
	}
}

func TestDedupeByID(t *testing.T) {
	products := []catalog.Product{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "c"}, {ID: "b"}}

	out := dedupeByID(products)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}
