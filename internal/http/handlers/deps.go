package handlers

import (
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"

	"lojinha/internal/config"
	"lojinha/internal/metrics"
	"lojinha/internal/payment"
	"lojinha/internal/repos"
	"lojinha/internal/services"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CheckoutHandler *CheckoutHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, reg prometheus.Registerer) *Deps {
	prodRepo := repos.NewProductRepo(db)
	m := metrics.New(reg)

	gateway := payment.NewClient(payment.Config{
		AccessToken:   cfg.MPAccessToken,
		PreferenceURL: cfg.MPPreferenceURL,
		ReturnBaseURL: cfg.FrontendURL,
		Timeout:       cfg.MPTimeout,
	}, m)

	resSvc := services.NewReservationService(prodRepo, cfg.IgnoreUnknownProducts)
	checkoutSvc := services.NewCheckoutService(resSvc, gateway, m)

	return &Deps{
		ProductHandler:  &ProductHandler{Products: prodRepo},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
	}
}
