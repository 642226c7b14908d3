package dto

import "time"

// SentimentLabel is the polarity emitted by the external classifier.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
)

// Sentiment is the raw classifier verdict for a single text.
type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// SignedScore maps the verdict onto [-1, +1]: sign follows the label,
// magnitude follows the confidence.
func (s Sentiment) SignedScore() float64 {
	if s.Label == SentimentNegative {
		return -s.Score
	}
	return s.Score
}

// HeadlineScore pairs a headline with its classified sentiment.
type HeadlineScore struct {
	Headline   string         `json:"headline"`
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
	Signed     float64        `json:"signed_score"`
}

// SentimentSummary aggregates the per-headline scores of one run.
type SentimentSummary struct {
	Scores    []HeadlineScore `json:"scores"`
	Aggregate float64         `json:"aggregate"`
}

type Decision string

const (
	DecisionBuy  Decision = "BUY"
	DecisionSell Decision = "SELL"
	DecisionHold Decision = "HOLD"
)

// Advice is the full output of one advisory run.
type Advice struct {
	Asset              string          `json:"asset"`
	Currency           string          `json:"currency"`
	Price              float64         `json:"price"`
	Headlines          []string        `json:"headlines"`
	Scores             []HeadlineScore `json:"scores"`
	AggregateSentiment float64         `json:"aggregate_sentiment"`
	Decision           Decision        `json:"decision"`
	Timestamp          time.Time       `json:"timestamp"`
}
