package domain

// Product is a sellable catalog item. CatalogID is the id the storefront
// references; ID is the storage row id and never leaves the database layer.
// Stock is the single source of truth for availability.
type Product struct {
	ID        int64   `db:"id" json:"-"`
	CatalogID int     `db:"catalog_id" json:"id"`
	Name      string  `db:"name" json:"nome"`
	Price     float64 `db:"price" json:"preco"`
	Category  string  `db:"category" json:"categoria"`
	ImageURL  string  `db:"image_url" json:"img"`
	Stock     int     `db:"stock" json:"estoque"`
}

// CartLine is one entry of a checkout request. Name and UnitPrice come from
// the client and are trusted for display/logging only; authoritative price
// and stock are always re-read from the product store.
type CartLine struct {
	ProductID int     `json:"id"`
	Quantity  int     `json:"qtd"`
	Name      string  `json:"nome"`
	UnitPrice float64 `json:"preco"`
}

// CheckoutRequest is the inbound body of the create-payment operation.
type CheckoutRequest struct {
	Lines      []CartLine `json:"cartLines"`
	BuyerTaxID string     `json:"cpfComprador"`
}
