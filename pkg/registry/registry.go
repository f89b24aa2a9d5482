package registry

import (
	"encoding/json"
	"os"
)

// Default returns the built-in vocabulary tables.
func Default() *VocabularyRegistry {
	return &VocabularyRegistry{
		Version: "1.0",
		Keywords: KeywordSets{
			Inventory: []string{
				"cuántos", "cantidad", "stock", "disponible", "hay", "tienen", "inventario",
				"productos", "computadores", "laptops", "teléfonos", "accesorios",
			},
			Price: []string{
				"precio", "costo", "vale", "cuesta", "cuánto", "barato", "caro", "económico",
				"presupuesto", "dinero", "pagar",
			},
			Specs: []string{
				"características", "especificaciones", "specs", "procesador", "ram", "memoria",
				"pantalla", "cámara", "batería", "almacenamiento", "detalles", "información",
			},
			Recommendation: []string{
				"recomienda", "recomendación", "mejor", "cuál", "qué", "sugiere", "aconseja",
				"comparar", "diferencia", "ventajas",
			},
			Greeting: []string{
				"hola", "buenos", "buenas", "saludos", "hi", "hello", "ayuda", "servicio",
			},
		},
		Entities: EntityVocabularies{
			Brands:     []string{"hp", "dell", "apple", "samsung", "logitech", "keychron"},
			Products:   []string{"computador", "laptop", "teléfono", "mouse", "teclado", "ssd", "iphone", "macbook"},
			Categories: []string{"gaming", "ultrabook", "premium", "flagship", "peripherals", "storage"},
		},
	}
}

// Load reads a vocabulary registry from a JSON file.
func Load(path string) (*VocabularyRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg VocabularyRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}
