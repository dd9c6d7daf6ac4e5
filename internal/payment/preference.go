package payment

import (
	"strconv"

	"github.com/google/uuid"

	"lojinha/internal/domain"
)

const (
	currencyID  = "BRL"
	fallbackCPF = "19119119100"
	// autoReturn asks the gateway to send the buyer back automatically
	// after an approved payment; some account configurations reject it.
	autoReturn = "approved"
)

type Item struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type Payer struct {
	Email          string         `json:"email"`
	Identification Identification `json:"identification"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// Preference is the gateway's "create preference" payload.
type Preference struct {
	Items      []Item   `json:"items"`
	Payer      Payer    `json:"payer"`
	BackURLs   BackURLs `json:"back_urls"`
	AutoReturn string   `json:"auto_return,omitempty"`
}

// buildPreference assembles the provider payload from the cart. Item prices
// and titles here are the display values the storefront sent; the gateway
// charges what it is told, stock authority stays with the reservation step.
func buildPreference(lines []domain.CartLine, buyerTaxID, returnBaseURL string) *Preference {
	items := make([]Item, 0, len(lines))
	for _, ln := range lines {
		items = append(items, Item{
			ID:         strconv.Itoa(ln.ProductID),
			Title:      ln.Name,
			Quantity:   ln.Quantity,
			UnitPrice:  ln.UnitPrice,
			CurrencyID: currencyID,
		})
	}
	cpf := buyerTaxID
	if cpf == "" {
		cpf = fallbackCPF
	}
	return &Preference{
		Items: items,
		Payer: Payer{
			// unique per request so gateway-side dedup never kicks in
			Email:          "teste_" + uuid.NewString()[:8] + "@test.com",
			Identification: Identification{Type: "CPF", Number: cpf},
		},
		BackURLs: BackURLs{
			Success: returnBaseURL + "/sucesso.html",
			Failure: returnBaseURL + "/index.html",
			Pending: returnBaseURL + "/sucesso.html",
		},
		AutoReturn: autoReturn,
	}
}
