package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics carries the service's checkout counters. Pass a fresh registry in
// tests; main uses prometheus.DefaultRegisterer.
type Metrics struct {
	Checkouts       *prometheus.CounterVec
	GatewayRequests *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lojinha",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"outcome"})
	gateway := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lojinha",
		Name:      "gateway_requests_total",
		Help:      "Outbound payment gateway requests by result.",
	}, []string{"result"})

	reg.MustRegister(checkouts, gateway)
	return &Metrics{Checkouts: checkouts, GatewayRequests: gateway}
}

func (m *Metrics) CountCheckout(outcome string) {
	if m == nil {
		return
	}
	m.Checkouts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CountGatewayRequest(result string) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(result).Inc()
}
