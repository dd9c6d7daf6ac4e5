package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"lojinha/internal/domain"
	"lojinha/internal/metrics"
	"lojinha/internal/payment"
	"lojinha/internal/repos"
	"lojinha/internal/services"
)

func newCheckout(t *testing.T, gatewayURL string) (*services.CheckoutService, func(int) int) {
	t.Helper()
	db := memdb(t)
	m := metrics.New(prometheus.NewRegistry())
	gw := payment.NewClient(payment.Config{
		AccessToken:   "TEST-token",
		PreferenceURL: gatewayURL,
		ReturnBaseURL: "http://localhost:5500",
		Timeout:       2 * time.Second,
	}, m)
	resSvc := services.NewReservationService(repos.NewProductRepo(db), true)
	return services.NewCheckoutService(resSvc, gw, m), func(id int) int { return stockOf(t, db, id) }
}

func TestCheckoutHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"init_point":"https://mp.test/redirect/abc"}`))
	}))
	defer srv.Close()

	svc, stock := newCheckout(t, srv.URL)
	url, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Lines: []domain.CartLine{{ProductID: 1, Quantity: 2, Name: "Fone", UnitPrice: 249.90}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://mp.test/redirect/abc" {
		t.Fatalf("wrong redirect url: %q", url)
	}
	if got := stock(1); got != 3 {
		t.Fatalf("want stock 3 after checkout, got %d", got)
	}
}

func TestCheckoutReservationFailsBeforeGateway(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	svc, stock := newCheckout(t, srv.URL)
	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Lines: []domain.CartLine{{ProductID: 2, Quantity: 50}},
	})
	var insufficient *services.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("want InsufficientStockError, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("gateway must not be called when reservation fails, got %d calls", calls)
	}
	if got := stock(2); got != 2 {
		t.Fatalf("stock must be unchanged, got %d", got)
	}
}

// A gateway failure after a successful reservation does not roll the stock
// back; the decrement stays committed.
func TestCheckoutGatewayFailureKeepsReservation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid items"}`))
	}))
	defer srv.Close()

	svc, stock := newCheckout(t, srv.URL)
	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		Lines: []domain.CartLine{{ProductID: 1, Quantity: 1}},
	})
	var gw *payment.GatewayError
	if !errors.As(err, &gw) {
		t.Fatalf("want GatewayError, got %v", err)
	}
	if gw.Message != "invalid items" {
		t.Fatalf("gateway message must pass through unchanged, got %q", gw.Message)
	}
	if got := stock(1); got != 4 {
		t.Fatalf("reservation must stay committed, got stock %d", got)
	}
}
