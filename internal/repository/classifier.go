package repository

import (
	"context"
	"crypto-advisor/internal/dto"
	"errors"
)

// ErrClassifierUnavailable wraps transport and provider failures from the
// external sentiment classifier.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// SentimentClassifier is the external text classification capability:
// text in, polarity label plus confidence out. Providers are swappable.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (dto.Sentiment, error)
}
