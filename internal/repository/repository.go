package repository

import (
	"crypto-advisor/config"
	"crypto-advisor/pkg/logger"
	"fmt"
)

type Repository struct {
	PriceRepo      PriceRepository
	HeadlineRepo   HeadlineRepository
	ClassifierRepo SentimentClassifier
}

func NewRepository(cfg *config.Config, log *logger.Logger) (*Repository, error) {
	var (
		classifier SentimentClassifier
		err        error
	)

	switch cfg.Classifier.Provider {
	case "gemini":
		classifier, err = NewGeminiClassifierRepository(cfg, log)
	case "huggingface":
		classifier = NewHuggingFaceClassifierRepository(cfg, log)
	default:
		err = fmt.Errorf("unknown classifier provider: %s", cfg.Classifier.Provider)
	}
	if err != nil {
		return nil, err
	}

	return &Repository{
		PriceRepo:      NewCoinGeckoRepository(cfg, log),
		HeadlineRepo:   NewStaticHeadlineRepository(),
		ClassifierRepo: classifier,
	}, nil
}
