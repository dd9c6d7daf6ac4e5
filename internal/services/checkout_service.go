package services

import (
	"context"
	"errors"

	"lojinha/internal/domain"
	"lojinha/internal/metrics"
	"lojinha/internal/payment"
)

// CheckoutService runs the whole checkout: reserve stock first (fail fast),
// then submit the payment preference. Stock committed by the reservation is
// not rolled back when the gateway call fails or the caller goes away.
type CheckoutService struct {
	Reservation *ReservationService
	Gateway     *payment.Client
	Metrics     *metrics.Metrics
}

func NewCheckoutService(res *ReservationService, gw *payment.Client, m *metrics.Metrics) *CheckoutService {
	return &CheckoutService{Reservation: res, Gateway: gw, Metrics: m}
}

func (s *CheckoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	if err := s.Reservation.Reserve(req.Lines); err != nil {
		s.Metrics.CountCheckout(outcomeFor(err))
		return "", err
	}
	url, err := s.Gateway.CreatePreference(ctx, req.Lines, req.BuyerTaxID)
	if err != nil {
		s.Metrics.CountCheckout("gateway_error")
		return "", err
	}
	s.Metrics.CountCheckout("ok")
	return url, nil
}

func outcomeFor(err error) string {
	var insufficient *InsufficientStockError
	var notFound *ProductNotFoundError
	switch {
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	case errors.As(err, &notFound):
		return "unknown_product"
	default:
		return "error"
	}
}
