package repository

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func huggingFaceTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Classifier: config.Classifier{
			Provider: "huggingface",
			HuggingFace: config.HuggingFaceConfig{
				BaseURL:             baseURL,
				Model:               "distilbert-base-uncased-finetuned-sst-2-english",
				Timeout:             5 * time.Second,
				MaxRequestPerMinute: 600,
			},
		},
	}
}

func TestHuggingFaceClassifierRepository_Classify(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    dto.Sentiment
		wantErr bool
	}{
		{
			name: "positive wins",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/models/distilbert-base-uncased-finetuned-sst-2-english", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[[{"label":"POSITIVE","score":0.97},{"label":"NEGATIVE","score":0.03}]]`))
			},
			want: dto.Sentiment{Label: dto.SentimentPositive, Score: 0.97},
		},
		{
			name: "negative wins regardless of order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[[{"label":"POSITIVE","score":0.10},{"label":"NEGATIVE","score":0.90}]]`))
			},
			want: dto.Sentiment{Label: dto.SentimentNegative, Score: 0.90},
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: true,
		},
		{
			name: "empty result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[]`))
			},
			wantErr: true,
		},
		{
			name: "unexpected label",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[[{"label":"NEUTRAL","score":0.99}]]`))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			repo := NewHuggingFaceClassifierRepository(huggingFaceTestConfig(srv.URL), testLogger(t))
			got, err := repo.Classify(context.Background(), "Cardano Surges After Positive Development Updates")

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrClassifierUnavailable)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Label, got.Label)
			assert.InDelta(t, tt.want.Score, got.Score, 1e-9)
		})
	}
}
