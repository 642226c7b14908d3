package service

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"crypto-advisor/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPriceRepo struct {
	price float64
	err   error
	calls int
}

func (s *stubPriceRepo) GetSpotPrice(_ context.Context) (float64, error) {
	s.calls++
	return s.price, s.err
}

type stubHeadlineRepo struct {
	headlines []string
	calls     int
}

func (s *stubHeadlineRepo) GetHeadlines(_ context.Context) ([]string, error) {
	s.calls++
	return s.headlines, nil
}

func advisorTestConfig() *config.Config {
	return &config.Config{
		CoinGecko: config.CoinGecko{
			AssetID:    "cardano",
			VsCurrency: "usd",
		},
	}
}

func TestAdvisorService_Advise(t *testing.T) {
	log := testLogger(t)

	t.Run("all positive headlines recommend buy", func(t *testing.T) {
		headlines := []string{"h1", "h2", "h3", "h4", "h5"}
		results := make(map[string]dto.Sentiment, len(headlines))
		for _, h := range headlines {
			results[h] = dto.Sentiment{Label: dto.SentimentPositive, Score: 0.9}
		}

		priceRepo := &stubPriceRepo{price: 0.45}
		headlineRepo := &stubHeadlineRepo{headlines: headlines}
		scorer := NewSentimentService(log, &stubClassifier{results: results})
		advisor := NewAdvisorService(advisorTestConfig(), log, priceRepo, headlineRepo, scorer, nil)

		advice, err := advisor.Advise(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0.45, advice.Price)
		assert.Equal(t, "cardano", advice.Asset)
		assert.Equal(t, headlines, advice.Headlines)
		assert.InDelta(t, 0.9, advice.AggregateSentiment, 1e-9)
		assert.Equal(t, dto.DecisionBuy, advice.Decision)
		assert.False(t, advice.Timestamp.IsZero())
	})

	t.Run("mixed headlines cancel out to hold", func(t *testing.T) {
		results := map[string]dto.Sentiment{
			"h1": {Label: dto.SentimentPositive, Score: 0.5},
			"h2": {Label: dto.SentimentNegative, Score: 0.5},
			"h3": {Label: dto.SentimentPositive, Score: 0.8},
			"h4": {Label: dto.SentimentNegative, Score: 0.8},
		}

		priceRepo := &stubPriceRepo{price: 0.45}
		headlineRepo := &stubHeadlineRepo{headlines: []string{"h1", "h2", "h3", "h4"}}
		scorer := NewSentimentService(log, &stubClassifier{results: results})
		advisor := NewAdvisorService(advisorTestConfig(), log, priceRepo, headlineRepo, scorer, nil)

		advice, err := advisor.Advise(context.Background())
		assert.NoError(t, err)
		assert.InDelta(t, 0.0, advice.AggregateSentiment, 1e-9)
		assert.Equal(t, dto.DecisionHold, advice.Decision)
	})

	t.Run("price failure short-circuits the pipeline", func(t *testing.T) {
		priceRepo := &stubPriceRepo{err: repository.ErrPriceUnavailable}
		headlineRepo := &stubHeadlineRepo{headlines: []string{"h1"}}
		classifier := &stubClassifier{}
		scorer := NewSentimentService(log, classifier)
		advisor := NewAdvisorService(advisorTestConfig(), log, priceRepo, headlineRepo, scorer, nil)

		advice, err := advisor.Advise(context.Background())
		assert.ErrorIs(t, err, repository.ErrPriceUnavailable)
		assert.Nil(t, advice)
		assert.Equal(t, 0, headlineRepo.calls, "headline source must not run")
		assert.Equal(t, 0, classifier.calls, "classifier must not run")
	})

	t.Run("notify without a configured notifier is a no-op", func(t *testing.T) {
		advisor := NewAdvisorService(advisorTestConfig(), log, &stubPriceRepo{price: 1}, &stubHeadlineRepo{}, NewSentimentService(log, &stubClassifier{}), nil)
		assert.NoError(t, advisor.Notify(context.Background(), &dto.Advice{}))
	})
}
