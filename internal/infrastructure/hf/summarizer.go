package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// Summarizer calls the HuggingFace inference API for text summarization.
// Requests opt into waiting for a cold model instead of failing immediately.
type Summarizer struct {
	endpoint   string
	model      string
	apiKey     string
	maxRetries uint64
	httpClient *http.Client
}

var _ ports.Summarizer = (*Summarizer)(nil)

// NewSummarizer builds a client for the given model (e.g.
// "facebook/bart-large-cnn") below the inference endpoint.
func NewSummarizer(endpoint, model, apiKey string, maxRetries int) *Summarizer {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Summarizer{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		model:      model,
		apiKey:     apiKey,
		maxRetries: uint64(maxRetries),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type inferenceRequest struct {
	Inputs  string `json:"inputs"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type inferenceResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize requests a summary, retrying transient failures with exponential
// backoff. Callers map the final error to the summary sentinel.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	var summary string

	operation := func() error {
		result, err := s.request(ctx, text)
		if err != nil {
			return err
		}
		summary = result
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return summary, nil
}

func (s *Summarizer) request(ctx context.Context, text string) (string, error) {
	payload := inferenceRequest{Inputs: text}
	payload.Options.WaitForModel = true

	body, err := json.Marshal(payload)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("marshal payload: %w", err))
	}

	url := s.endpoint + "/" + s.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("new request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("inference error %s: %s", resp.Status, strings.TrimSpace(string(raw)))
		// 503 means the model is still loading; everything else client-side
		// will not improve on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	var results []inferenceResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		return "", backoff.Permanent(fmt.Errorf("empty summarization result"))
	}

	return results[0].SummaryText, nil
}
