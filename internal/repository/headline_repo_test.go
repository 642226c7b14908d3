package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticHeadlineRepository_GetHeadlines(t *testing.T) {
	repo := NewStaticHeadlineRepository()

	first, err := repo.GetHeadlines(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 5)

	// Deterministic: same ordered sequence every call, even if a caller
	// mutated the previous result.
	first[0] = "mutated"

	second, err := repo.GetHeadlines(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Cardano Surges After Positive Development Updates", second[0])
	assert.Equal(t, cardanoHeadlines, second)
}
