package classifier

import (
	"context"

	"ecoscan/models"
)

// ClassifierService wraps the external vision-classification capability.
// Implementations must return only validated results: a category inside the
// taxonomy and a confidence inside [60, 99], or a typed failure.
type ClassifierService interface {
	// Classify submits one image and returns the validated category result.
	// format is the image format suffix, e.g. "jpeg" or "png". The caller's
	// context bounds the upstream call; a timeout surfaces as
	// ErrUpstreamUnavailable.
	Classify(ctx context.Context, image []byte, format string) (*models.ClassificationResult, error)
}
