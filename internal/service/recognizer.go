package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Entity is a labeled span returned by an entity recognizer.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityLabelFood marks spans the recognizer considers food mentions.
const EntityLabelFood = "FOOD"

// EntityRecognizer finds labeled entities in free text. Implementations
// are optional capabilities: the pipeline works fully without one, and
// recognizer failures degrade to rule-only extraction.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// NoopRecognizer recognizes nothing. Used when no recognizer sidecar is
// configured.
type NoopRecognizer struct{}

// Recognize always returns no entities.
func (NoopRecognizer) Recognize(context.Context, string) ([]Entity, error) {
	return nil, nil
}

// HTTPRecognizer calls an external recognizer sidecar over HTTP.
type HTTPRecognizer struct {
	client *resty.Client
}

// NewHTTPRecognizer creates a recognizer client for the given base URL.
func NewHTTPRecognizer(baseURL string, timeout time.Duration) *HTTPRecognizer {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(1)
	return &HTTPRecognizer{client: client}
}

type recognizeRequest struct {
	Text string `json:"text"`
}

type recognizeResponse struct {
	Entities []Entity `json:"entities"`
}

// Recognize posts the text to the sidecar and returns its entities.
func (r *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	var out recognizeResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(recognizeRequest{Text: text}).
		SetResult(&out).
		Post("/recognize")
	if err != nil {
		return nil, fmt.Errorf("recognizer request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("recognizer returned status %d", resp.StatusCode())
	}
	return out.Entities, nil
}

// FoodNames runs the recognizer and reduces its entities to a deduped,
// normalized list of food names. Any recognizer error is logged and
// swallowed so extraction proceeds rule-only.
func FoodNames(ctx context.Context, rec EntityRecognizer, text string) []string {
	if rec == nil {
		return nil
	}
	entities, err := rec.Recognize(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("entity recognizer unavailable, continuing rule-only")
		return nil
	}

	names := make([]string, 0, len(entities))
	seen := make(map[string]bool, len(entities))
	for _, ent := range entities {
		if !strings.EqualFold(ent.Label, EntityLabelFood) {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(ent.Text))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
