// internal/analysis/client.go
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inventorypro/insights/internal/config"
)

// Analyzer is the external narrative-analysis service.
type Analyzer interface {
	AnalyzeStockAlert(ctx context.Context, items []StockItemInput) (*StockAlertResult, error)
	AnalyzeInventoryHealth(ctx context.Context, items []StockItemInput) (*HealthReportResult, error)
}

// ServiceError carries the transient/permanent classification of a failed
// analysis call. Transient failures (rate limit, temporary unavailability)
// are the only ones the runner retries.
type ServiceError struct {
	Status    int
	Code      string
	Message   string
	Transient bool
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("analysis service: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("analysis service: %s (status %d)", e.Message, e.Status)
}

// IsTransient reports whether err is a retryable analysis failure.
func IsTransient(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Transient
}

// HTTPAnalyzer posts fixed-schema JSON to the prompt service.
type HTTPAnalyzer struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPAnalyzer(cfg config.AnalysisConfig) *HTTPAnalyzer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPAnalyzer{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (a *HTTPAnalyzer) AnalyzeStockAlert(ctx context.Context, items []StockItemInput) (*StockAlertResult, error) {
	var result StockAlertResult
	if err := a.post(ctx, "/v1/analyze/stock-alert", items, &result); err != nil {
		return nil, err
	}
	result.Normalize()
	return &result, nil
}

func (a *HTTPAnalyzer) AnalyzeInventoryHealth(ctx context.Context, items []StockItemInput) (*HealthReportResult, error) {
	var result HealthReportResult
	if err := a.post(ctx, "/v1/analyze/inventory-health", items, &result); err != nil {
		return nil, err
	}
	result.Normalize()
	return &result, nil
}

type analyzeRequest struct {
	Items []StockItemInput `json:"items"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *HTTPAnalyzer) post(ctx context.Context, path string, items []StockItemInput, out any) error {
	payload, err := json.Marshal(analyzeRequest{Items: items})
	if err != nil {
		return fmt.Errorf("encode analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		// Network-level failures are indistinguishable from a down service.
		return &ServiceError{Message: err.Error(), Transient: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classify(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServiceError{Status: resp.StatusCode, Message: "malformed analysis response: " + err.Error()}
	}
	return nil
}

func classify(resp *http.Response) *ServiceError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	se := &ServiceError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Code != "" {
		se.Code = eb.Error.Code
		if eb.Error.Message != "" {
			se.Message = eb.Error.Message
		}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusServiceUnavailable,
		se.Code == "rate_limited",
		se.Code == "unavailable":
		se.Transient = true
	}
	return se
}
