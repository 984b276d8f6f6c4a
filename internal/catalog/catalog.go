package catalog

// Product is one catalog card as rendered on the shop and home pages.
type Product struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	PriceCents         int     `json:"price_cents"`
	OriginalPriceCents *int    `json:"original_price_cents,omitempty"`
	Image              string  `json:"image"`
	Rating             float64 `json:"rating"`
	Reviews            int     `json:"reviews"`
	Category           string  `json:"category"`
	Badge              *string `json:"badge,omitempty"`
}

// Details extends a catalog card with the product page content.
type Details struct {
	Product
	Images         []string          `json:"images"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"in_stock"`
	StockCount     int               `json:"stock_count"`
}
