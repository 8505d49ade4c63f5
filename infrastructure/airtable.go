package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"recruiting-intake/config"
	"recruiting-intake/domain"
)

const airtableBaseURL = "https://api.airtable.com/v0"

// AirtableClient talks to the hosted record store over its REST API. One
// HTTP call per create/update; queries follow the offset cursor until the
// store stops returning one. Calls are single-attempt, no retries.
type AirtableClient struct {
	token      string
	baseID     string
	baseURL    string
	httpClient *http.Client
}

// NewAirtableClient fails fast when the credential or base id is missing,
// before any network I/O can happen.
func NewAirtableClient(cfg *config.Config) (*AirtableClient, error) {
	if cfg.AirtableToken == "" {
		return nil, &domain.ConfigError{Missing: "AIRTABLE_TOKEN"}
	}
	if cfg.AirtableBaseID == "" {
		return nil, &domain.ConfigError{Missing: "AIRTABLE_BASE_ID"}
	}

	return &AirtableClient{
		token:   cfg.AirtableToken,
		baseID:  cfg.AirtableBaseID,
		baseURL: airtableBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.OutboundTimeout,
		},
	}, nil
}

type airtableRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type airtablePage struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

func (c *AirtableClient) Create(ctx context.Context, table string, fields map[string]any) (*domain.Record, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.tableURL(table), payload)
	if err != nil {
		return nil, err
	}

	var rec airtableRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record store response: %w", err)
	}
	return &domain.Record{ID: rec.ID, Fields: rec.Fields}, nil
}

func (c *AirtableClient) Update(ctx context.Context, table, recordID string, fields map[string]any) (*domain.Record, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	reqURL := c.tableURL(table) + "/" + url.PathEscape(recordID)
	body, err := c.do(ctx, http.MethodPatch, reqURL, payload)
	if err != nil {
		return nil, err
	}

	var rec airtableRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record store response: %w", err)
	}
	return &domain.Record{ID: rec.ID, Fields: rec.Fields}, nil
}

// Query accumulates every page into memory. The cursor loop carries the
// offset to the next request and stops when the store omits it.
func (c *AirtableClient) Query(ctx context.Context, table, filterFormula string, pageSize int) ([]domain.Record, error) {
	var records []domain.Record
	offset := ""

	for {
		params := url.Values{}
		if filterFormula != "" {
			params.Set("filterByFormula", filterFormula)
		}
		if pageSize > 0 {
			params.Set("pageSize", strconv.Itoa(pageSize))
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		body, err := c.do(ctx, http.MethodGet, c.tableURL(table)+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}

		var page airtablePage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("failed to parse record store response: %w", err)
		}

		for _, rec := range page.Records {
			records = append(records, domain.Record{ID: rec.ID, Fields: rec.Fields})
		}

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	return records, nil
}

func (c *AirtableClient) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

func (c *AirtableClient) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Service: "record store", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Service: "record store", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamError{
			Service: "record store",
			Status:  resp.StatusCode,
			Body:    string(body),
		}
	}

	return body, nil
}
