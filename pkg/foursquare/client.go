package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"swarmtrack/pkg/config"
	errs "swarmtrack/pkg/errors"
	"swarmtrack/pkg/logger"
)

// Client is a Foursquare v2 API client scoped to one user's history
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userID     string
	locale     string
	version    string
	logger     logger.Logger
}

// NewClient creates a new API client from the given configuration
func NewClient(cfg *config.APIConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.OAuthToken,
		userID:     cfg.UserID,
		locale:     cfg.Locale,
		version:    cfg.Version,
		logger:     log,
	}
}

// doRequest performs an HTTP request, wrapping transport failures as
// network errors
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.Path,
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.WarnWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.Path,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
		}
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"method":   req.Method,
		"url":      req.URL.Path,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	return resp, nil
}

// HistoryPage fetches a single offset/limit window of the user's checkin
// history. Errors are typed so the retry policy can distinguish rate
// limiting and network failures from fatal conditions.
func (c *Client) HistoryPage(ctx context.Context, offset, limit int) (*CheckinPage, error) {
	url := HistorySearchURL(c.baseURL, c.userID, c.token, c.locale, c.version, offset, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
		}
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": preview(body),
		})
		return nil, &errs.Error{
			Type:    errs.ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse JSON: %v", err),
			Code:    resp.StatusCode,
		}
	}

	// The API can report failure in the envelope even on HTTP 200
	if envelope.Meta.Code != http.StatusOK {
		c.logger.ErrorWithFields("API error in response body", map[string]interface{}{
			"meta_code":    envelope.Meta.Code,
			"error_type":   envelope.Meta.ErrorType,
			"error_detail": envelope.Meta.ErrorDetail,
		})
		return nil, &errs.Error{
			Type:    errs.ErrorTypeAPI,
			Message: fmt.Sprintf("API returned code %d: %s", envelope.Meta.Code, envelope.Meta.ErrorDetail),
			Code:    envelope.Meta.Code,
		}
	}

	return &envelope.Response.Checkins, nil
}

// checkResponseStatus maps HTTP status codes to typed errors. Anything other
// than 200, 401, and 429 is fatal and gets its response body logged.
func (c *Client) checkResponseStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		c.logger.WarnWithFields("authentication error", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeAuth,
			Message: "OAuth token rejected; it may be expired",
			Code:    resp.StatusCode,
		}
	case http.StatusTooManyRequests:
		c.logger.WarnWithFields("rate limit exceeded", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeRateLimit,
			Message: "rate limit exceeded",
			Code:    resp.StatusCode,
		}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.ErrorWithFields("unexpected HTTP status", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   preview(body),
		})
		errType := errs.ErrorTypeUnknown
		if resp.StatusCode >= 500 {
			errType = errs.ErrorTypeServer
		}
		return &errs.Error{
			Type:    errType,
			Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	}
}

// preview truncates a response body for log output
func preview(body []byte) string {
	const max = 500
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
