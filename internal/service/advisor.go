package service

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"crypto-advisor/internal/repository"
	"crypto-advisor/internal/strategy"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/telegram"
	"time"
)

type AdvisorService interface {
	Advise(ctx context.Context) (*dto.Advice, error)
	Notify(ctx context.Context, advice *dto.Advice) error
}

type advisorService struct {
	cfg          *config.Config
	log          *logger.Logger
	priceRepo    repository.PriceRepository
	headlineRepo repository.HeadlineRepository
	scorer       SentimentScorer
	notifier     *telegram.Notifier
}

func NewAdvisorService(
	cfg *config.Config,
	log *logger.Logger,
	priceRepo repository.PriceRepository,
	headlineRepo repository.HeadlineRepository,
	scorer SentimentScorer,
	notifier *telegram.Notifier,
) AdvisorService {
	return &advisorService{
		cfg:          cfg,
		log:          log,
		priceRepo:    priceRepo,
		headlineRepo: headlineRepo,
		scorer:       scorer,
		notifier:     notifier,
	}
}

// Advise runs the full pipeline: price, headlines, sentiment, decision.
// A price failure aborts the run before any headline is fetched or scored.
func (s *advisorService) Advise(ctx context.Context) (*dto.Advice, error) {
	price, err := s.priceRepo.GetSpotPrice(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Aborting advisory run, price unavailable", logger.ErrorField(err))
		return nil, err
	}

	s.log.InfoContext(ctx, "Fetched spot price",
		logger.StringField("asset", s.cfg.CoinGecko.AssetID),
		logger.StringField("currency", s.cfg.CoinGecko.VsCurrency),
		logger.Float64Field("price", price),
	)

	headlines, err := s.headlineRepo.GetHeadlines(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch headlines", logger.ErrorField(err))
		return nil, err
	}

	summary, err := s.scorer.ScoreHeadlines(ctx, headlines)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to score headlines", logger.ErrorField(err))
		return nil, err
	}

	decision := strategy.Decide(summary.Aggregate)

	s.log.InfoContext(ctx, "Advisory run completed",
		logger.Float64Field("aggregate_sentiment", summary.Aggregate),
		logger.StringField("decision", string(decision)),
	)

	return &dto.Advice{
		Asset:              s.cfg.CoinGecko.AssetID,
		Currency:           s.cfg.CoinGecko.VsCurrency,
		Price:              price,
		Headlines:          headlines,
		Scores:             summary.Scores,
		AggregateSentiment: summary.Aggregate,
		Decision:           decision,
		Timestamp:          time.Now(),
	}, nil
}

// Notify pushes the advice to the configured telegram chat, if any.
func (s *advisorService) Notify(ctx context.Context, advice *dto.Advice) error {
	if !s.notifier.Enabled() {
		s.log.DebugContext(ctx, "Telegram notifier not configured, skipping notify")
		return nil
	}
	return s.notifier.SendAdvice(ctx, advice)
}
