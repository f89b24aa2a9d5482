package catalog

import (
	"math"
	"strings"
)

// Provider is the read-only catalog contract consumed by the chat engine
// and the recommendation scorer. Every method operates on the in-memory
// snapshot taken at load time; no call performs I/O.
type Provider interface {
	AllProducts() []Product
	ProductsByCategory(category string) []Product
	Search(query string) []Product
	ProductByID(id string) (Product, bool)
	InventoryStats() Stats
	BrandStats() map[string]int
}

type memoryProvider struct {
	inventory Inventory
	all       []Product
	byID      map[string]Product
}

// NewProvider builds a Provider over an inventory snapshot.
func NewProvider(inv Inventory) Provider {
	all := make([]Product, 0, len(inv.Computers)+len(inv.Accessories)+len(inv.Smartphones))
	all = append(all, inv.Computers...)
	all = append(all, inv.Accessories...)
	all = append(all, inv.Smartphones...)

	byID := make(map[string]Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	return &memoryProvider{
		inventory: inv,
		all:       all,
		byID:      byID,
	}
}

func (m *memoryProvider) AllProducts() []Product {
	out := make([]Product, len(m.all))
	copy(out, m.all)
	return out
}

func (m *memoryProvider) ProductsByCategory(category string) []Product {
	var group []Product
	switch category {
	case CategoryComputers:
		group = m.inventory.Computers
	case CategoryAccessories:
		group = m.inventory.Accessories
	case CategorySmartphones:
		group = m.inventory.Smartphones
	default:
		return []Product{}
	}
	out := make([]Product, len(group))
	copy(out, group)
	return out
}

// Search matches a case-insensitive substring across name, brand, type and
// description, preserving catalog order.
func (m *memoryProvider) Search(query string) []Product {
	term := strings.ToLower(query)
	out := []Product{}
	for _, p := range m.all {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Type), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

func (m *memoryProvider) ProductByID(id string) (Product, bool) {
	p, ok := m.byID[id]
	return p, ok
}

func (m *memoryProvider) InventoryStats() Stats {
	totalStock := 0
	totalPrice := 0.0
	for _, p := range m.all {
		totalStock += p.Stock
		totalPrice += p.Price
	}

	// Average over an empty catalog is defined as 0.
	averagePrice := 0
	if len(m.all) > 0 {
		averagePrice = int(math.Round(totalPrice / float64(len(m.all))))
	}

	return Stats{
		TotalProducts: len(m.all),
		TotalStock:    totalStock,
		Categories: CategoryCounts{
			Computers:   len(m.inventory.Computers),
			Accessories: len(m.inventory.Accessories),
			Smartphones: len(m.inventory.Smartphones),
		},
		Brands:       m.BrandStats(),
		AveragePrice: averagePrice,
	}
}

func (m *memoryProvider) BrandStats() map[string]int {
	brands := make(map[string]int)
	for _, p := range m.all {
		brands[p.Brand] += p.Stock
	}
	return brands
}
