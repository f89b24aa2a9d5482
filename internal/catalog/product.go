package catalog

// Product is a single catalog record. Products are immutable once loaded.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	Type        string            `json:"type"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	Specs       map[string]string `json:"specs"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Rating      float64           `json:"rating"`
}

// Inventory is the on-disk shape of the catalog: three disjoint ordered
// groups concatenated in this fixed order to form the full product list.
type Inventory struct {
	Computers   []Product `json:"computers"`
	Accessories []Product `json:"accessories"`
	Smartphones []Product `json:"smartphones"`
}

// CategoryCounts holds per-category product counts.
type CategoryCounts struct {
	Computers   int `json:"computers"`
	Accessories int `json:"accessories"`
	Smartphones int `json:"smartphones"`
}

// Stats summarizes the loaded catalog.
type Stats struct {
	TotalProducts int            `json:"totalProducts"`
	TotalStock    int            `json:"totalStock"`
	Categories    CategoryCounts `json:"categories"`
	Brands        map[string]int `json:"brands"`
	AveragePrice  int            `json:"averagePrice"`
}

// Category tags used in the data file and category queries.
const (
	CategoryComputers   = "computers"
	CategoryAccessories = "accessories"
	CategorySmartphones = "smartphones"
)
