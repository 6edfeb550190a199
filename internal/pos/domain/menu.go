package domain

// Category groups products for display. Order is preserved exactly as the
// menu endpoint returns it (upstream sorts by sort_order).
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice float64         `json:"base_price"`
	Options   []ProductOption `json:"options"`
}

// ProductOption is a single customization. All options flagged required on
// one product form a single implicit single-choice group; optional options
// are independent add-ons.
type ProductOption struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PriceDelta float64 `json:"price_delta"`
	IsRequired bool    `json:"is_required"`
}

// Option looks up an option by id on the product's current option list.
func (p Product) Option(id string) (ProductOption, bool) {
	for _, opt := range p.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return ProductOption{}, false
}

// FindProduct scans a menu for a product by id.
func FindProduct(menu []Category, productID string) (Product, bool) {
	for _, cat := range menu {
		for _, p := range cat.Products {
			if p.ID == productID {
				return p, true
			}
		}
	}
	return Product{}, false
}
