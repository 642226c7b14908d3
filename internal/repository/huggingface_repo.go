package repository

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"crypto-advisor/pkg/httpclient"
	"crypto-advisor/pkg/logger"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// huggingFaceClassifierRepository is a SentimentClassifier backed by the
// Hugging Face inference API and a pretrained binary sentiment model.
type huggingFaceClassifierRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewHuggingFaceClassifierRepository creates a new instance of huggingFaceClassifierRepository.
func NewHuggingFaceClassifierRepository(cfg *config.Config, log *logger.Logger) SentimentClassifier {
	secondsPerRequest := time.Minute / time.Duration(cfg.Classifier.HuggingFace.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &huggingFaceClassifierRepository{
		httpClient:     httpclient.New(cfg.Classifier.HuggingFace.BaseURL, cfg.Classifier.HuggingFace.Timeout, cfg.Classifier.HuggingFace.APIKey),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *huggingFaceClassifierRepository) Classify(ctx context.Context, text string) (dto.Sentiment, error) {
	var sentiment dto.Sentiment

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return sentiment, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	endpoint := "/models/" + r.cfg.Classifier.HuggingFace.Model

	var hfResp dto.HuggingFaceResponse
	resp, err := r.httpClient.Post(ctx, endpoint, dto.HuggingFaceRequest{Inputs: text}, nil, &hfResp)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to call hugging face inference API", logger.ErrorField(err))
		return sentiment, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Hugging face inference API returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return sentiment, fmt.Errorf("%w: status %d", ErrClassifierUnavailable, resp.StatusCode)
	}

	if len(hfResp) == 0 || len(hfResp[0]) == 0 {
		return sentiment, fmt.Errorf("%w: empty classification result", ErrClassifierUnavailable)
	}

	// The model scores every candidate label; keep the most confident one.
	top := hfResp[0][0]
	for _, candidate := range hfResp[0][1:] {
		if candidate.Score > top.Score {
			top = candidate
		}
	}

	label := dto.SentimentLabel(top.Label)
	if label != dto.SentimentPositive && label != dto.SentimentNegative {
		return sentiment, fmt.Errorf("%w: unexpected label %q", ErrClassifierUnavailable, top.Label)
	}

	sentiment.Label = label
	sentiment.Score = top.Score
	return sentiment, nil
}
