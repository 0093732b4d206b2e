package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"ecoscan/services/classifier"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassifyHandler exposes the image-classification endpoint.
type ClassifyHandler struct {
	Service classifier.ClassifierService
}

// NewClassifyHandler creates a ClassifyHandler backed by the given service.
func NewClassifyHandler(svc classifier.ClassifierService) *ClassifyHandler {
	return &ClassifyHandler{Service: svc}
}

type classifyRequest struct {
	// Image is a base64 payload, optionally wrapped as a data URL
	// (data:image/jpeg;base64,...).
	Image string `json:"image"`
}

// ClassifyWasteHandler submits the image to the classification gateway and
// returns the validated result.
func (h *ClassifyHandler) ClassifyWasteHandler(c *gin.Context) {
	logger := getLogger(c)

	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	image, format, err := decodeImagePayload(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image payload"})
		return
	}

	result, err := h.Service.Classify(c.Request.Context(), image, format)
	if err != nil {
		switch {
		case errors.Is(err, classifier.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, classifier.ErrQuotaExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, classifier.ErrUnparseable), errors.Is(err, classifier.ErrInvalidCategory):
			// The upstream violated its contract; not a caller mistake.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			logger.Error("Classification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": classifier.ErrUpstreamUnavailable.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// decodeImagePayload accepts either a bare base64 string or a data URL and
// returns the raw bytes plus the image format suffix ("jpeg" by default).
func decodeImagePayload(payload string) ([]byte, string, error) {
	format := "jpeg"
	if strings.HasPrefix(payload, "data:") {
		comma := strings.Index(payload, ",")
		if comma == -1 {
			return nil, "", errors.New("malformed data URL")
		}
		meta := payload[len("data:"):comma]
		if mime, _, found := strings.Cut(meta, ";"); found || mime != "" {
			if sub, ok := strings.CutPrefix(mime, "image/"); ok && sub != "" {
				format = sub
			}
		}
		payload = payload[comma+1:]
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return image, format, nil
}
