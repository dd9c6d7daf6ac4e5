package repos

import "lojinha/internal/domain"

// DefaultStock is applied to every seeded product.
const DefaultStock = 10

// DefaultCatalog returns the demo catalog installed by /api/popular-banco.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{CatalogID: 1, Name: "Fone Bluetooth JBL", Price: 249.90, Category: "eletronicos",
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=400&q=80", Stock: DefaultStock},
		{CatalogID: 2, Name: "Smartwatch Xiaomi Mi Band 7", Price: 299.90, Category: "eletronicos",
			ImageURL: "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=400&q=80", Stock: DefaultStock},
		{CatalogID: 3, Name: "Camiseta Minimalista Branca", Price: 79.90, Category: "roupas",
			ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=400&q=80", Stock: DefaultStock},
		{CatalogID: 4, Name: "Tênis Nike Revolution", Price: 329.90, Category: "calcados",
			ImageURL: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?auto=format&fit=crop&w=400&q=80", Stock: DefaultStock},
		{CatalogID: 6, Name: "Notebook Gamer Dell G15", Price: 5499.00, Category: "eletronicos",
			ImageURL: "https://images.unsplash.com/photo-1593642634315-48f5414c3ad9?auto=format&fit=crop&w=400&q=80", Stock: DefaultStock},
	}
}
