package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port            string
	DBDSN           string
	MPAccessToken   string
	MPPreferenceURL string
	FrontendURL     string
	LogFile         string
	MPTimeout       time.Duration
	// IgnoreUnknownProducts keeps the lenient behavior of skipping cart
	// lines whose product id matches nothing in the catalog.
	IgnoreUnknownProducts bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "lojinha.db"
	} // sqlite file in project root
	token := os.Getenv("MP_ACCESS_TOKEN")
	prefURL := os.Getenv("MP_PREFERENCE_URL")
	if prefURL == "" {
		prefURL = "https://api.mercadopago.com/checkout/preferences"
	}
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		// local storefront; production sets the real URL
		frontend = "http://localhost:5500"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./lojinha.log"
	}
	timeout := 10 * time.Second
	if v := os.Getenv("MP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}
	ignoreUnknown := os.Getenv("IGNORE_UNKNOWN_PRODUCTS") != "false"

	cfg := Config{
		Port:                  port,
		DBDSN:                 dsn,
		MPAccessToken:         token,
		MPPreferenceURL:       prefURL,
		FrontendURL:           frontend,
		LogFile:               logFile,
		MPTimeout:             timeout,
		IgnoreUnknownProducts: ignoreUnknown,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s FRONTEND_URL=%s MP_TOKEN_SET=%t MP_TIMEOUT=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.FrontendURL, cfg.MPAccessToken != "", cfg.MPTimeout, cfg.LogFile)
	return cfg
}
