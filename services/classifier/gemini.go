package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecoscan/models"
	"ecoscan/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// upstreamTimeout is the ceiling applied to every classification call; the
// caller's context may shorten it but not extend it.
const upstreamTimeout = 30 * time.Second

// visionModel is the slice of *genai.GenerativeModel the classifier needs,
// kept narrow so tests can substitute a fake upstream.
type visionModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClassifier implements ClassifierService using Google Gemini.
type GeminiClassifier struct {
	client *genai.Client
	model  visionModel
	cache  *ResultCache
}

// NewGeminiClassifier creates a Gemini-backed classifier. cache may be nil to
// disable result caching.
func NewGeminiClassifier(apiKey, modelName string, cache *ResultCache) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClassifier{
		client: client,
		model:  client.GenerativeModel(modelName),
		cache:  cache,
	}, nil
}

// Classify submits the image with the fixed instruction prompt and runs the
// reply through the validation pipeline. Order matters: transport failures
// first, then parseability, then taxonomy membership, then the confidence
// clamp.
func (g *GeminiClassifier) Classify(ctx context.Context, image []byte, format string) (*models.ClassificationResult, error) {
	logger := utils.GetLogger()

	if g.cache != nil {
		if cached, ok := g.cache.Get(ctx, image); ok {
			return cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	parts := []genai.Part{
		genai.ImageData(format, image),
		genai.Text(classifyPrompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	text := responseText(resp)
	if text == "" {
		logger.Warn("Classify: empty reply from upstream")
		return nil, ErrUnparseable
	}

	raw, err := parseClassification(text)
	if err != nil {
		logger.Warn("Classify: failed to parse upstream reply", zap.String("reply", text))
		return nil, err
	}

	result, err := validateClassification(raw)
	if err != nil {
		logger.Warn("Classify: upstream reply rejected", zap.String("category", raw.Category), zap.Error(err))
		return nil, err
	}

	if g.cache != nil {
		g.cache.Put(ctx, image, result)
	}
	return result, nil
}

// Close releases the underlying Gemini client.
func (g *GeminiClassifier) Close() error {
	return g.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

// mapUpstreamError translates transport and API failures into the gateway's
// error taxonomy. Timeouts count as the upstream being unavailable, never as
// a silent success.
func mapUpstreamError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired:
			return ErrQuotaExhausted
		case http.StatusForbidden:
			// Gemini reports exhausted billing quotas as 403.
			return ErrQuotaExhausted
		}
	}
	utils.GetLogger().Warn("Classify: upstream call failed", zap.Error(err))
	return ErrUpstreamUnavailable
}
