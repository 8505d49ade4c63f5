package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"recruiting-intake/config"
	"recruiting-intake/domain"
)

// WebhookNotifier posts job data to the external analysis workflow. One
// attempt per call; any non-2xx response or transport failure surfaces as
// an upstream error. Scoring then happens out-of-band: the workflow writes
// its results straight into the record store.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

func NewWebhookNotifier(cfg *config.Config) *WebhookNotifier {
	return &WebhookNotifier{
		url: cfg.WebhookURL,
		httpClient: &http.Client{
			Timeout: cfg.OutboundTimeout,
		},
	}
}

// Ready reports whether a webhook URL is configured. The process starts
// without one; only the trigger flow requires it.
func (n *WebhookNotifier) Ready() error {
	if n.url == "" {
		return &domain.ConfigError{Missing: "ANALYSIS_WEBHOOK_URL"}
	}
	return nil
}

func (n *WebhookNotifier) NotifyAnalysis(ctx context.Context, jobID, description string) error {
	if err := n.Ready(); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{
		"job_id":          jobID,
		"description_raw": description,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Service: "analysis webhook", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.UpstreamError{
			Service: "analysis webhook",
			Status:  resp.StatusCode,
			Body:    string(body),
		}
	}

	return nil
}
