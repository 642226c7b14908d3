package repository

import (
	"context"
	"crypto-advisor/config"
	"crypto-advisor/internal/dto"
	"crypto-advisor/pkg/httpclient"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/ratelimit"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const geminiSentimentPrompt = `You are a binary sentiment classifier for financial news headlines.
Classify the sentiment of the following headline as POSITIVE or NEGATIVE and
give your confidence between 0 and 1.

Headline: %q

Respond with JSON only, no prose, in this exact shape:
{"label": "POSITIVE", "score": 0.95}`

// geminiClassifierRepository is a SentimentClassifier backed by the Google
// Gemini API.
type geminiClassifierRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiClassifierRepository creates a new instance of geminiClassifierRepository.
func NewGeminiClassifierRepository(cfg *config.Config, log *logger.Logger) (SentimentClassifier, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Classifier.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Classifier.Gemini.MaxTokenPerMinute)
	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Classifier.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClassifierRepository{
		httpClient:     httpclient.New(cfg.Classifier.Gemini.BaseURL, cfg.Classifier.Gemini.Timeout, ""),
		cfg:            cfg,
		logger:         log,
		tokenLimiter:   tokenLimiter,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiClassifierRepository) Classify(ctx context.Context, text string) (dto.Sentiment, error) {
	var sentiment dto.Sentiment

	if strings.TrimSpace(text) == "" {
		return sentiment, fmt.Errorf("empty text to classify")
	}

	prompt := fmt.Sprintf(geminiSentimentPrompt, text)

	geminiAPIResponse, err := r.sendRequest(ctx, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send request to gemini", logger.ErrorField(err))
		return sentiment, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	if err := r.parseResponse(geminiAPIResponse, &sentiment); err != nil {
		r.logger.ErrorContext(ctx, "failed to parse response from gemini", logger.ErrorField(err))
		return sentiment, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	if sentiment.Label != dto.SentimentPositive && sentiment.Label != dto.SentimentNegative {
		return sentiment, fmt.Errorf("%w: unexpected label %q", ErrClassifierUnavailable, sentiment.Label)
	}
	if sentiment.Score < 0 || sentiment.Score > 1 {
		return sentiment, fmt.Errorf("%w: confidence %f out of range", ErrClassifierUnavailable, sentiment.Score)
	}

	return sentiment, nil
}

func (r *geminiClassifierRepository) sendRequest(ctx context.Context, prompt string) (*dto.GeminiAPIResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	geminiTokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Classifier.Gemini.BaseModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(geminiTokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)
	if err := r.tokenLimiter.Wait(ctx, int(geminiTokenResp.TotalTokens)); err != nil {
		return nil, fmt.Errorf("failed to wait for gemini token limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for gemini request limit: %w", err)
	}

	payload := dto.GeminiAPIRequest{
		Contents: []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
	}

	geminiAPIResponse := dto.GeminiAPIResponse{}

	apiURL := fmt.Sprintf("/%s:generateContent?key=%s", r.cfg.Classifier.Gemini.BaseModel, r.cfg.Classifier.Gemini.APIKey)

	geminiResp, err := r.httpClient.Post(ctx, apiURL, payload, nil, &geminiAPIResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to gemini: %w", err)
	}

	if geminiResp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get data from gemini", logger.IntField("status_code", geminiResp.StatusCode))
		return nil, fmt.Errorf("failed to get data: status %d", geminiResp.StatusCode)
	}

	return &geminiAPIResponse, nil
}

func (r *geminiClassifierRepository) parseResponse(response *dto.GeminiAPIResponse, dest interface{}) error {
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("invalid response from Gemini API: no content found")
	}

	jsonString := response.Candidates[0].Content.Parts[0].Text
	jsonString = strings.Trim(jsonString, "`json\n`")

	return json.Unmarshal([]byte(jsonString), dest)
}
