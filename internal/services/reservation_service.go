package services

import (
	"database/sql"
	"errors"

	"lojinha/internal/domain"
	"lojinha/internal/repos"
)

// ReservationService validates a cart against live stock and durably
// decrements it, line by line and in cart order.
type ReservationService struct {
	Products *repos.ProductRepo
	// IgnoreUnknownProducts skips lines whose product id matches nothing
	// in the catalog instead of failing the whole cart.
	IgnoreUnknownProducts bool
}

func NewReservationService(products *repos.ProductRepo, ignoreUnknown bool) *ReservationService {
	return &ReservationService{Products: products, IgnoreUnknownProducts: ignoreUnknown}
}

// Reserve decrements stock for every line or fails on the first line that
// cannot be satisfied. Each line is committed on its own, so a mid-cart
// failure leaves earlier lines decremented; callers get the error and the
// unprocessed lines are untouched. The per-line decrement is a conditional
// UPDATE, so duplicate product ids in one cart and concurrent carts both
// see current committed stock.
func (s *ReservationService) Reserve(lines []domain.CartLine) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	for _, ln := range lines {
		p, err := s.Products.Get(ln.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			if s.IgnoreUnknownProducts {
				continue
			}
			return &ProductNotFoundError{CatalogID: ln.ProductID}
		}
		if err != nil {
			return err
		}
		applied, err := s.Products.DecrementStock(p.CatalogID, ln.Quantity)
		if err != nil {
			return err
		}
		if !applied {
			return &InsufficientStockError{Name: p.Name}
		}
	}
	return nil
}
