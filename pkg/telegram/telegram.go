package telegram

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"crypto-advisor/pkg/logger"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// Notifier broadcasts advisory results to a single configured chat. It only
// sends; there is no command handling or per-user state.
type Notifier struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	bot           *telebot.Bot
	globalLimiter *rate.Limiter
}

func NewNotifier(cfg *config.TelegramConfig, log *logger.Logger, bot *telebot.Bot) *Notifier {
	return &Notifier{
		cfg:           cfg,
		log:           log,
		bot:           bot,
		globalLimiter: rate.NewLimiter(rate.Limit(cfg.MaxGlobalRequestPerSecond), cfg.MaxGlobalRequestPerSecond),
	}
}

// Enabled reports whether a bot is configured to send to.
func (n *Notifier) Enabled() bool {
	return n != nil && n.bot != nil && n.cfg.ChatID != 0
}

// SendAdvice pushes a formatted advisory message to the configured chat.
func (n *Notifier) SendAdvice(ctx context.Context, advice *dto.Advice) error {
	if !n.Enabled() {
		return nil
	}

	if err := n.globalLimiter.Wait(ctx); err != nil {
		return err
	}

	_, err := n.bot.Send(&telebot.Chat{ID: n.cfg.ChatID}, FormatAdvice(advice), &telebot.SendOptions{
		ParseMode: telebot.ModeMarkdown,
	})
	if err != nil {
		n.log.ErrorContext(ctx, "Failed to send telegram advice", logger.ErrorField(err))
		return err
	}
	return nil
}

// FormatAdvice renders the advice as a markdown message.
func FormatAdvice(advice *dto.Advice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s Advisory*\n", strings.ToUpper(advice.Asset))
	fmt.Fprintf(&b, "Price: %.4f %s\n", advice.Price, strings.ToUpper(advice.Currency))
	fmt.Fprintf(&b, "Aggregate sentiment: %.4f\n", advice.AggregateSentiment)
	fmt.Fprintf(&b, "Recommendation: *%s*\n\n", advice.Decision)

	for _, score := range advice.Scores {
		fmt.Fprintf(&b, "- %s (%s %.2f)\n", score.Headline, score.Label, score.Confidence)
	}

	return b.String()
}
