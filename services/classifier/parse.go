package classifier

import (
	"encoding/json"
	"strings"

	"ecoscan/models"
	"ecoscan/taxonomy"
)

// Confidence bounds. The service never reports full certainty or near-zero
// confidence, both are non-actionable signal.
const (
	minConfidence     = 60
	maxConfidence     = 99
	defaultConfidence = 85
)

// rawClassification is the untrusted upstream shape. Confidence is a pointer
// so an absent field can be told apart from zero.
type rawClassification struct {
	Category      string   `json:"category"`
	Confidence    *float64 `json:"confidence"`
	ItemsDetected []string `json:"items_detected"`
	Reasoning     string   `json:"reasoning"`
}

// parseClassification extracts the JSON object from a model reply. Models
// tend to wrap the object in markdown fences or stray prose, so everything
// outside the outermost braces is discarded before unmarshaling.
func parseClassification(text string) (*rawClassification, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return nil, ErrUnparseable
	}
	text = text[startIdx : endIdx+1]

	var raw rawClassification
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, ErrUnparseable
	}
	return &raw, nil
}

// validateClassification turns the untrusted shape into a bounded result.
// The category must resolve in the taxonomy, case-folded; the confidence is
// clamped to [minConfidence, maxConfidence] with an absent value defaulting
// to defaultConfidence.
func validateClassification(raw *rawClassification) (*models.ClassificationResult, error) {
	cat, ok := taxonomy.Lookup(raw.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	confidence := float64(defaultConfidence)
	if raw.Confidence != nil {
		confidence = *raw.Confidence
	}
	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	items := raw.ItemsDetected
	if items == nil {
		items = []string{}
	}

	return &models.ClassificationResult{
		Category:      cat.ID,
		Confidence:    int(confidence),
		ItemsDetected: items,
		Reasoning:     raw.Reasoning,
	}, nil
}
