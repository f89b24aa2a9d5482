package chat

import (
	"fmt"
	"sort"
	"strings"

	"makers-assistant/internal/catalog"
)

var greetingLines = []string{
	"¡Hola! Soy el asistente de Makers Tech. ¿En qué puedo ayudarte hoy?",
	"¡Bienvenido a Makers Tech! Estoy aquí para ayudarte con nuestro inventario.",
	"¡Hola! ¿Te gustaría conocer nuestros productos disponibles?",
}

var unknownLines = []string{
	"No estoy seguro de entender tu pregunta. ¿Podrías ser más específico?",
	"Hmm, no logro entender eso. ¿Te gustaría saber sobre nuestro inventario, precios o características?",
	"Disculpa, no entendí bien. Puedo ayudarte con información sobre productos, precios y stock.",
}

func (e *Engine) buildGreetingResponse() Response {
	stats := e.catalog.InventoryStats()

	message := fmt.Sprintf(`%s

🖥️ Tenemos %d productos disponibles:
• %d computadores
• %d accesorios
• %d smartphones

¿Qué te gustaría saber?`,
		e.pickLine(greetingLines),
		stats.TotalProducts,
		stats.Categories.Computers,
		stats.Categories.Accessories,
		stats.Categories.Smartphones,
	)

	return Response{
		Message: message,
		SuggestedActions: []string{
			"Ver todos los computadores",
			"Mostrar precios",
			"Recomiéndame algo",
		},
	}
}

func (e *Engine) buildInventoryResponse(entities []string) Response {
	var products []catalog.Product
	var message string

	// Branch priority: brand, then computers, then smartphones, then
	// accessories, then the aggregate summary.
	if brand := e.firstBrand(entities); brand != "" {
		products = e.catalog.Search(brand)
		message = fmt.Sprintf("Productos de %s:\n\n", strings.ToUpper(brand))
	} else if containsAny(entities, "computador", "laptop") {
		products = e.catalog.ProductsByCategory(catalog.CategoryComputers)
		message = "Computadores disponibles:\n\n"
	} else if containsAny(entities, "teléfono", "smartphone") {
		products = e.catalog.ProductsByCategory(catalog.CategorySmartphones)
		message = "Smartphones disponibles:\n\n"
	} else if containsAny(entities, "accesorios") {
		products = e.catalog.ProductsByCategory(catalog.CategoryAccessories)
		message = "Accesorios disponibles:\n\n"
	} else {
		return e.buildInventorySummary()
	}

	if len(products) > 0 {
		lines := make([]string, 0, len(products))
		for _, p := range products {
			lines = append(lines, fmt.Sprintf("• **%s** - %s\n  Stock: %d | Precio: $%s",
				p.Name, p.Brand, p.Stock, formatPrice(p.Price)))
		}
		message += strings.Join(lines, "\n\n")

		if len(products) == 1 {
			message += "\n\n¿Te gustaría conocer más detalles de este producto?"
		} else {
			message += "\n\n¿Cuál de estos te interesa más?"
		}

		return Response{
			Message:          message,
			Products:         products,
			SuggestedActions: []string{"Ver especificaciones", "Comparar precios"},
		}
	}

	return Response{
		Message:          message,
		SuggestedActions: []string{"Ver computadores", "Ver smartphones", "Ver accesorios"},
	}
}

func (e *Engine) buildInventorySummary() Response {
	stats := e.catalog.InventoryStats()
	brandStats := e.catalog.BrandStats()

	brands := make([]string, 0, len(brandStats))
	for brand := range brandStats {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	brandLines := make([]string, 0, len(brands))
	for _, brand := range brands {
		brandLines = append(brandLines, fmt.Sprintf("• %s: %d productos", brand, brandStats[brand]))
	}

	message := fmt.Sprintf(`📊 **Inventario actual:**

🖥️ **Computadores:** %d disponibles
📱 **Smartphones:** %d disponibles
🖱️ **Accesorios:** %d disponibles

**Por marca:**
%s

**Total en stock:** %d unidades`,
		stats.Categories.Computers,
		stats.Categories.Smartphones,
		stats.Categories.Accessories,
		strings.Join(brandLines, "\n"),
		stats.TotalStock,
	)

	return Response{
		Message:          message,
		SuggestedActions: []string{"Ver computadores", "Ver smartphones", "Ver accesorios"},
	}
}

func (e *Engine) buildPriceResponse(entities []string) Response {
	products := e.searchEntities(entities)

	if len(products) > 0 {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})

		lines := make([]string, 0, len(products))
		for _, p := range products {
			lines = append(lines, fmt.Sprintf("• **%s** - %s\n  💵 $%s | Stock: %d",
				p.Name, p.Brand, formatPrice(p.Price), p.Stock))
		}

		return Response{
			Message:          "💰 **Precios encontrados:**\n\n" + strings.Join(lines, "\n\n"),
			Products:         products,
			SuggestedActions: []string{"Ver más detalles", "Comparar opciones", "Ver por categoría"},
		}
	}

	// Fallback: average price plus the fixed category ranges. The ranges
	// are deliberately literal for reply parity with the original copy.
	stats := e.catalog.InventoryStats()
	message := fmt.Sprintf(`💰 **Información de precios:**

📊 Precio promedio: $%s

**Rangos por categoría:**
🖥️ Computadores: $1,299 - $1,999
📱 Smartphones: $1,099 - $1,299
🖱️ Accesorios: $129 - $179

¿Te interesa alguna categoría en particular?`,
		formatPrice(float64(stats.AveragePrice)),
	)

	return Response{
		Message:          message,
		SuggestedActions: []string{"Ver más detalles", "Comparar opciones", "Ver por categoría"},
	}
}

func (e *Engine) buildSpecsResponse(entities []string) Response {
	products := e.searchEntities(entities)

	if len(products) == 0 {
		return Response{
			Message:          "No especificaste qué producto te interesa. ¿Podrías decirme de qué producto quieres conocer las características?",
			SuggestedActions: []string{"Ver computadores", "Ver smartphones", "Ver accesorios"},
		}
	}

	if len(products) == 1 {
		p := products[0]

		specLines := make([]string, 0, len(p.Specs))
		for _, key := range sortedSpecKeys(p.Specs) {
			specLines = append(specLines, fmt.Sprintf("• **%s:** %s", key, p.Specs[key]))
		}

		message := fmt.Sprintf(`🔧 **%s - %s**

%s

💰 **Precio:** $%s
📦 **Stock:** %d disponibles
⭐ **Rating:** %s/5

%s`,
			p.Name, p.Brand,
			strings.Join(specLines, "\n"),
			formatPrice(p.Price),
			p.Stock,
			formatRating(p.Rating),
			p.Description,
		)

		return Response{
			Message:          message,
			Products:         products,
			SuggestedActions: []string{"Ver precio", "Comparar con otros", "Más información"},
		}
	}

	// Multiple matches: first two spec pairs per product, then ask which
	// one to expand.
	lines := make([]string, 0, len(products))
	for _, p := range products {
		keys := sortedSpecKeys(p.Specs)
		if len(keys) > 2 {
			keys = keys[:2]
		}
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %s", key, p.Specs[key]))
		}
		lines = append(lines, fmt.Sprintf("• **%s** - %s", p.Name, strings.Join(pairs, ", ")))
	}

	message := "🔧 **Especificaciones encontradas:**\n\n" +
		strings.Join(lines, "\n") +
		"\n\n¿Cuál te gustaría conocer en detalle?"

	return Response{
		Message:          message,
		Products:         products,
		SuggestedActions: []string{"Ver detalles completos", "Comparar todos"},
	}
}

// buildRecommendationResponse is the chat quick-path: top three in-stock
// products by rating. The preference-driven ranking lives in the
// recommend package.
func (e *Engine) buildRecommendationResponse() Response {
	inStock := []catalog.Product{}
	for _, p := range e.catalog.AllProducts() {
		if p.Stock > 0 {
			inStock = append(inStock, p)
		}
	}

	sort.SliceStable(inStock, func(i, j int) bool {
		return inStock[i].Rating > inStock[j].Rating
	})

	if len(inStock) > 3 {
		inStock = inStock[:3]
	}

	lines := make([]string, 0, len(inStock))
	for i, p := range inStock {
		lines = append(lines, fmt.Sprintf("%d. **%s** - %s\n   💰 $%s | ⭐ %s/5\n   %s",
			i+1, p.Name, p.Brand, formatPrice(p.Price), formatRating(p.Rating), p.Description))
	}

	message := fmt.Sprintf(`⭐ **Mis recomendaciones top:**

%s

¿Te gustaría conocer más sobre alguno de estos?`,
		strings.Join(lines, "\n\n"),
	)

	return Response{
		Message:          message,
		Products:         inStock,
		SuggestedActions: []string{"Ver detalles", "Comparar precios", "Más opciones"},
	}
}

func (e *Engine) buildUnknownResponse() Response {
	message := fmt.Sprintf(`%s

Puedo ayudarte con:
• 📦 Inventario y stock disponible
• 💰 Precios de productos
• 🔧 Especificaciones técnicas
• ⭐ Recomendaciones personalizadas

¿Qué te gustaría saber?`,
		e.pickLine(unknownLines),
	)

	return Response{
		Message:          message,
		SuggestedActions: []string{"Ver inventario", "Mostrar precios", "Recomiéndame algo"},
	}
}

// searchEntities accumulates catalog hits for every entity and removes
// duplicates keeping first occurrence.
func (e *Engine) searchEntities(entities []string) []catalog.Product {
	var products []catalog.Product
	for _, entity := range entities {
		products = append(products, e.catalog.Search(entity)...)
	}
	return dedupeByID(products)
}

// firstBrand returns the first extracted entity that is a known brand.
func (e *Engine) firstBrand(entities []string) string {
	for _, entity := range entities {
		for _, brand := range e.vocab.Entities.Brands {
			if entity == brand {
				return entity
			}
		}
	}
	return ""
}

func containsAny(entities []string, terms ...string) bool {
	for _, entity := range entities {
		for _, term := range terms {
			if entity == term {
				return true
			}
		}
	}
	return false
}

func sortedSpecKeys(specs map[string]string) []string {
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
