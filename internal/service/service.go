package service

import (
	"crypto-advisor/config"
	"crypto-advisor/internal/repository"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/telegram"
)

type Service struct {
	AdvisorService   AdvisorService
	SentimentScorer  SentimentScorer
	SchedulerService SchedulerService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	notifier *telegram.Notifier,
) *Service {
	scorer := NewSentimentService(log, repo.ClassifierRepo)
	advisor := NewAdvisorService(cfg, log, repo.PriceRepo, repo.HeadlineRepo, scorer, notifier)
	scheduler := NewSchedulerService(cfg, log, advisor)

	return &Service{
		AdvisorService:   advisor,
		SentimentScorer:  scorer,
		SchedulerService: scheduler,
	}
}
