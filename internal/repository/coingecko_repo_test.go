package repository

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	assert.NoError(t, err)
	return log
}

func coinGeckoTestConfig(baseURL string) *config.Config {
	return &config.Config{
		CoinGecko: config.CoinGecko{
			BaseURL:             baseURL,
			AssetID:             "cardano",
			VsCurrency:          "usd",
			Timeout:             5 * time.Second,
			MaxRequestPerMinute: 600,
		},
	}
}

func TestCoinGeckoRepository_GetSpotPrice(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantPrice float64
		wantErr   bool
	}{
		{
			name: "valid quote",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "cardano", r.URL.Query().Get("ids"))
				assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"cardano":{"usd":0.45}}`))
			},
			wantPrice: 0.45,
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: true,
		},
		{
			name: "missing asset key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"bitcoin":{"usd":60000}}`))
			},
			wantErr: true,
		},
		{
			name: "missing currency key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"cardano":{"eur":0.41}}`))
			},
			wantErr: true,
		},
		{
			name: "non-positive price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"cardano":{"usd":0}}`))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			repo := NewCoinGeckoRepository(coinGeckoTestConfig(srv.URL), testLogger(t))
			price, err := repo.GetSpotPrice(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPriceUnavailable)
				assert.Zero(t, price)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, price)
		})
	}

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		repo := NewCoinGeckoRepository(coinGeckoTestConfig(srv.URL), testLogger(t))
		_, err := repo.GetSpotPrice(context.Background())
		assert.ErrorIs(t, err, ErrPriceUnavailable)
	})
}
