package telegram

import (
	"crypto-advisor/internal/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAdvice(t *testing.T) {
	advice := &dto.Advice{
		Asset:              "cardano",
		Currency:           "usd",
		Price:              0.45,
		AggregateSentiment: 0.9,
		Decision:           dto.DecisionBuy,
		Scores: []dto.HeadlineScore{
			{Headline: "Cardano Surges", Label: dto.SentimentPositive, Confidence: 0.9},
		},
	}

	msg := FormatAdvice(advice)
	assert.Contains(t, msg, "CARDANO")
	assert.Contains(t, msg, "0.4500 USD")
	assert.Contains(t, msg, "*BUY*")
	assert.Contains(t, msg, "Cardano Surges (POSITIVE 0.90)")
}

func TestNotifier_Enabled(t *testing.T) {
	var nilNotifier *Notifier
	assert.False(t, nilNotifier.Enabled())
}
