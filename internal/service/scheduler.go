package service

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/utils"

	"github.com/robfig/cron/v3"
)

type SchedulerService interface {
	Start() error
	Stop()
}

// schedulerService runs the advisory pipeline on a cron schedule and pushes
// the result to telegram when configured.
type schedulerService struct {
	cfg     *config.Config
	log     *logger.Logger
	advisor AdvisorService
	cron    *cron.Cron
}

func NewSchedulerService(cfg *config.Config, log *logger.Logger, advisor AdvisorService) SchedulerService {
	return &schedulerService{
		cfg:     cfg,
		log:     log,
		advisor: advisor,
		cron:    cron.New(),
	}
}

func (s *schedulerService) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Scheduler.CronExpression, s.run)
	if err != nil {
		return err
	}

	s.log.Info("Starting advisory scheduler",
		logger.StringField("cron_expression", s.cfg.Scheduler.CronExpression),
	)
	s.cron.Start()
	return nil
}

func (s *schedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Advisory scheduler stopped")
}

func (s *schedulerService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Scheduler.TimeoutDuration)
	defer cancel()

	advice, err := s.advisor.Advise(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Scheduled advisory run failed", logger.ErrorField(err))
		return
	}

	// Notification failures do not fail the run; the advice is already logged.
	utils.GoSafe(func() {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), s.cfg.Scheduler.TimeoutDuration)
		defer notifyCancel()

		if err := s.advisor.Notify(notifyCtx, advice); err != nil {
			s.log.ErrorContext(notifyCtx, "Failed to notify scheduled advice", logger.ErrorField(err))
		}
	})
}
