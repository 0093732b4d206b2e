package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidate(t *testing.T, reply string) (*rawClassification, error) {
	t.Helper()
	raw, err := parseClassification(reply)
	require.NoError(t, err)
	return raw, nil
}

func TestParseClassificationPlainJSON(t *testing.T) {
	raw, err := parseClassification(`{"category":"organic","confidence":72,"items_detected":["banana peel"],"reasoning":"food waste"}`)
	require.NoError(t, err)
	assert.Equal(t, "organic", raw.Category)
	require.NotNil(t, raw.Confidence)
	assert.Equal(t, 72.0, *raw.Confidence)
	assert.Equal(t, []string{"banana peel"}, raw.ItemsDetected)
}

func TestParseClassificationStripsCodeFences(t *testing.T) {
	for _, reply := range []string{
		"```json\n{\"category\":\"recyclable\",\"confidence\":80}\n```",
		"```\n{\"category\":\"recyclable\",\"confidence\":80}\n```",
		"Here is the result:\n{\"category\":\"recyclable\",\"confidence\":80}\nHope that helps!",
	} {
		raw, err := parseClassification(reply)
		require.NoError(t, err, "reply %q", reply)
		assert.Equal(t, "recyclable", raw.Category)
	}
}

func TestParseClassificationUnparseable(t *testing.T) {
	for _, reply := range []string{
		"",
		"I could not classify this image.",
		"{\"category\": \"organic\"", // truncated
		"[1, 2, 3]",
	} {
		_, err := parseClassification(reply)
		assert.ErrorIs(t, err, ErrUnparseable, "reply %q", reply)
	}
}

func TestValidateClampsOverConfidence(t *testing.T) {
	raw, _ := mustValidate(t, `{"category":"HAZARDOUS","confidence":150}`)
	result, err := validateClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, "hazardous", result.Category)
	assert.Equal(t, 99, result.Confidence)
}

func TestValidateClampsUnderConfidence(t *testing.T) {
	raw, _ := mustValidate(t, `{"category":"organic","confidence":-5000}`)
	result, err := validateClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, 60, result.Confidence)
}

func TestValidateDefaultsMissingConfidence(t *testing.T) {
	raw, _ := mustValidate(t, `{"category":"medical"}`)
	result, err := validateClassification(raw)
	require.NoError(t, err)
	assert.Equal(t, 85, result.Confidence)
	assert.NotNil(t, result.ItemsDetected)
	assert.Empty(t, result.ItemsDetected)
}

func TestValidateConfidenceAlwaysBounded(t *testing.T) {
	for _, confidence := range []float64{-1e308, -1, 0, 59.9, 60, 75, 99, 99.1, 100, 1e308} {
		c := confidence
		raw := &rawClassification{Category: "organic", Confidence: &c}
		result, err := validateClassification(raw)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Confidence, 60, "confidence %v", confidence)
		assert.LessOrEqual(t, result.Confidence, 99, "confidence %v", confidence)
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	raw, _ := mustValidate(t, `{"category":"glass"}`)
	_, err := validateClassification(raw)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestValidateNeverSubstitutesDefaultCategory(t *testing.T) {
	for _, category := range []string{"", "trash", "other", "unknown"} {
		raw := &rawClassification{Category: category}
		_, err := validateClassification(raw)
		assert.ErrorIs(t, err, ErrInvalidCategory, "category %q", category)
	}
}
