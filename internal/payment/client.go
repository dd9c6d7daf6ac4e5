package payment

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"lojinha/internal/domain"
	"lojinha/internal/metrics"
)

// GatewayError wraps the processor's failure message; the text is surfaced
// to the caller unchanged.
type GatewayError struct{ Message string }

func (e *GatewayError) Error() string { return e.Message }

type Config struct {
	AccessToken   string
	PreferenceURL string
	ReturnBaseURL string
	Timeout       time.Duration
}

// Client creates payment preferences against the gateway's
// preference-creation endpoint.
type Client struct {
	http    *resty.Client
	cfg     Config
	metrics *metrics.Metrics
}

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		http:    resty.New().SetTimeout(cfg.Timeout),
		cfg:     cfg,
		metrics: m,
	}
}

type preferenceResponse struct {
	InitPoint string `json:"init_point"`
	Message   string `json:"message"`
	ErrorCode string `json:"error"`
}

// CreatePreference submits the cart and returns the gateway redirect URL.
// When the gateway rejects the auto_return field, the payload is resubmitted
// exactly once without it and that second outcome is final.
func (c *Client) CreatePreference(ctx context.Context, lines []domain.CartLine, buyerTaxID string) (string, error) {
	pref := buildPreference(lines, buyerTaxID, c.cfg.ReturnBaseURL)

	url, retriable, err := c.submit(ctx, pref)
	if err == nil {
		return url, nil
	}
	if !retriable {
		return "", err
	}

	c.metrics.CountGatewayRequest("retried")
	pref.AutoReturn = ""
	url, _, err = c.submit(ctx, pref)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (c *Client) submit(ctx context.Context, pref *Preference) (url string, retriable bool, err error) {
	var out preferenceResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.cfg.AccessToken).
		SetBody(pref).
		SetResult(&out).
		SetError(&out).
		Post(c.cfg.PreferenceURL)
	if err != nil {
		if isTimeout(err) {
			c.metrics.CountGatewayRequest("timeout")
			return "", false, &GatewayError{Message: "timeout"}
		}
		c.metrics.CountGatewayRequest("error")
		return "", false, &GatewayError{Message: err.Error()}
	}
	if resp.IsSuccess() {
		c.metrics.CountGatewayRequest("ok")
		return out.InitPoint, false, nil
	}

	c.metrics.CountGatewayRequest("rejected")
	// Structured code first; the message substring match is the
	// compatibility fallback for older gateway responses.
	if pref.AutoReturn != "" &&
		(out.ErrorCode == "invalid_auto_return" || strings.Contains(out.Message, "auto_return")) {
		return "", true, &GatewayError{Message: out.Message}
	}
	return "", false, &GatewayError{Message: out.Message}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
