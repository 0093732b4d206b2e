package models

// ClassificationResult is the validated outcome of one image classification.
// Category always resolves in the taxonomy and Confidence is clamped to
// [60, 99]; nothing upstream reports can escape those bounds. The result is
// descriptive only, persistence happens separately through the ledger.
type ClassificationResult struct {
	Category      string   `json:"category"`
	Confidence    int      `json:"confidence"`
	ItemsDetected []string `json:"items_detected"`
	Reasoning     string   `json:"reasoning"`
}
