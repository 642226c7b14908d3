package repository

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"crypto-advisor/pkg/httpclient"
	"crypto-advisor/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrPriceUnavailable collapses every price fetch failure (network, non-200,
// malformed payload) into the single failure kind the caller acts on.
var ErrPriceUnavailable = errors.New("price unavailable")

type PriceRepository interface {
	GetSpotPrice(ctx context.Context) (float64, error)
}

// coinGeckoRepository fetches spot prices from the CoinGecko simple price API.
type coinGeckoRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewCoinGeckoRepository creates a new instance of coinGeckoRepository.
func NewCoinGeckoRepository(cfg *config.Config, log *logger.Logger) PriceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.CoinGecko.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &coinGeckoRepository{
		httpClient:     httpclient.New(cfg.CoinGecko.BaseURL, cfg.CoinGecko.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *coinGeckoRepository) GetSpotPrice(ctx context.Context) (float64, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	queryParams := map[string]string{
		"ids":           r.cfg.CoinGecko.AssetID,
		"vs_currencies": r.cfg.CoinGecko.VsCurrency,
	}

	var priceResp dto.SimplePriceResponse
	resp, err := r.httpClient.Get(ctx, "/simple/price", queryParams, nil, &priceResp)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to fetch price from CoinGecko", logger.ErrorField(err))
		return 0, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "CoinGecko returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return 0, fmt.Errorf("%w: status %d", ErrPriceUnavailable, resp.StatusCode)
	}

	quotes, ok := priceResp[r.cfg.CoinGecko.AssetID]
	if !ok {
		return 0, fmt.Errorf("%w: no quotes for asset %s", ErrPriceUnavailable, r.cfg.CoinGecko.AssetID)
	}

	price, ok := quotes[r.cfg.CoinGecko.VsCurrency]
	if !ok {
		return 0, fmt.Errorf("%w: no %s quote for asset %s", ErrPriceUnavailable, r.cfg.CoinGecko.VsCurrency, r.cfg.CoinGecko.AssetID)
	}

	if price <= 0 {
		return 0, fmt.Errorf("%w: non-positive price %f", ErrPriceUnavailable, price)
	}

	return price, nil
}
