package repository

import "context"

type HeadlineRepository interface {
	GetHeadlines(ctx context.Context) ([]string, error)
}

// staticHeadlineRepository is a stand-in for a real news feed. It returns the
// same ordered headlines on every call.
type staticHeadlineRepository struct{}

func NewStaticHeadlineRepository() HeadlineRepository {
	return &staticHeadlineRepository{}
}

var cardanoHeadlines = []string{
	"Cardano Surges After Positive Development Updates",
	"Experts Warn Of Possible Correction in Cardano",
	"Major Financial Institution to Begin Holding ADA Reserves",
	"Bearish Signals Emerge Despite Cardano's Strong Performance",
	"Investors Show Growing Interest in Cardano's Future",
}

func (r *staticHeadlineRepository) GetHeadlines(_ context.Context) ([]string, error) {
	headlines := make([]string, len(cardanoHeadlines))
	copy(headlines, cardanoHeadlines)
	return headlines, nil
}
