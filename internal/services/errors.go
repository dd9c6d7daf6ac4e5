package services

import (
	"errors"
	"fmt"
)

// Error messages keep the exact text the storefront already displays.
var ErrEmptyCart = errors.New("Carrinho vazio")

// InsufficientStockError names the product using the stored name, not the
// display name supplied by the cart.
type InsufficientStockError struct{ Name string }

func (e *InsufficientStockError) Error() string {
	return "Estoque insuficiente para: " + e.Name
}

// ProductNotFoundError is only returned when the reservation service is
// configured to reject unknown product ids instead of skipping them.
type ProductNotFoundError struct{ CatalogID int }

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Produto não encontrado: %d", e.CatalogID)
}
