package service

import (
	"context"
	"crypto-advisor/internal/dto"
	"crypto-advisor/internal/repository"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/utils"
	"errors"
	"fmt"
)

// ErrNoHeadlines is returned when there is nothing to score. The mean of zero
// elements is undefined, and a fabricated 0.0 would be indistinguishable from
// genuine neutrality.
var ErrNoHeadlines = errors.New("no headlines to score")

type SentimentScorer interface {
	ScoreHeadlines(ctx context.Context, headlines []string) (*dto.SentimentSummary, error)
}

type sentimentService struct {
	log        *logger.Logger
	classifier repository.SentimentClassifier
}

func NewSentimentService(log *logger.Logger, classifier repository.SentimentClassifier) SentimentScorer {
	return &sentimentService{
		log:        log,
		classifier: classifier,
	}
}

// ScoreHeadlines classifies each headline in order and aggregates the signed
// scores into an unweighted arithmetic mean. Any classifier failure fails the
// whole aggregation: skipping headlines would bias the mean toward whatever
// the classifier happened to accept.
func (s *sentimentService) ScoreHeadlines(ctx context.Context, headlines []string) (*dto.SentimentSummary, error) {
	if len(headlines) == 0 {
		return nil, ErrNoHeadlines
	}

	summary := &dto.SentimentSummary{
		Scores: make([]dto.HeadlineScore, 0, len(headlines)),
	}

	var total float64
	for _, headline := range headlines {
		if !utils.ShouldContinue(ctx, s.log) {
			return nil, ctx.Err()
		}

		sentiment, err := s.classifier.Classify(ctx, headline)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to classify headline",
				logger.StringField("headline", headline),
				logger.ErrorField(err),
			)
			return nil, fmt.Errorf("failed to classify headline %q: %w", headline, err)
		}

		signed := sentiment.SignedScore()
		total += signed

		s.log.DebugContext(ctx, "Headline classified",
			logger.StringField("headline", headline),
			logger.StringField("label", string(sentiment.Label)),
			logger.Float64Field("confidence", sentiment.Score),
		)

		summary.Scores = append(summary.Scores, dto.HeadlineScore{
			Headline:   headline,
			Label:      sentiment.Label,
			Confidence: sentiment.Score,
			Signed:     signed,
		})
	}

	summary.Aggregate = total / float64(len(summary.Scores))
	return summary, nil
}
