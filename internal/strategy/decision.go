package strategy

import "crypto-advisor/internal/dto"

// Fixed decision thresholds on the aggregate sentiment scale [-1, +1].
// Strict inequalities: exactly +-0.3 is a HOLD.
const (
	BuyThreshold  = 0.3
	SellThreshold = -0.3
)

// Decide maps an aggregate sentiment to a trade recommendation. Pure and
// total: every float input yields a decision.
func Decide(aggregateSentiment float64) dto.Decision {
	switch {
	case aggregateSentiment > BuyThreshold:
		return dto.DecisionBuy
	case aggregateSentiment < SellThreshold:
		return dto.DecisionSell
	default:
		return dto.DecisionHold
	}
}
