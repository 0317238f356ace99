package foursquare

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"swarmtrack/pkg/config"
	errs "swarmtrack/pkg/errors"
	"swarmtrack/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoundTripper allows us to intercept HTTP requests
type mockRoundTripper struct {
	handler func(req *http.Request) (*http.Response, error)
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.handler(req)
}

func newResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(handler func(req *http.Request) (*http.Response, error)) *Client {
	cfg := &config.APIConfig{
		OAuthToken: "test-token",
		UserID:     "self",
		BaseURL:    BaseURL,
		Version:    "20260220",
		Locale:     "en",
		Timeout:    30 * time.Second,
	}
	client := NewClient(cfg, logger.NewTestLogger())
	client.httpClient = &http.Client{
		Transport: &mockRoundTripper{handler: handler},
		Timeout:   30 * time.Second,
	}
	return client
}

func envelopeJSON(t *testing.T, count int, items []Checkin) string {
	t.Helper()
	env := Envelope{
		Meta:     Meta{Code: 200},
		Response: Response{Checkins: CheckinPage{Count: count, Items: items}},
	}
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return string(data)
}

func TestHistoryPageSuccess(t *testing.T) {
	items := []Checkin{
		{ID: "c1", CreatedAt: 1685642400, Venue: Venue{Name: "Peet's Coffee"}},
		{ID: "c2", CreatedAt: 1685556000, Venue: Venue{Name: "In-N-Out"}},
	}

	var gotURL string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		return newResponse(http.StatusOK, envelopeJSON(t, 1234, items)), nil
	})

	page, err := client.HistoryPage(context.Background(), 100, 50)
	require.NoError(t, err)

	assert.Equal(t, 1234, page.Count)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "c1", page.Items[0].ID)

	assert.Contains(t, gotURL, "offset=100")
	assert.Contains(t, gotURL, "limit=50")
	assert.Contains(t, gotURL, "oauth_token=test-token")
	assert.Contains(t, gotURL, "/users/self/historysearch")
}

func TestHistoryPageUnauthorized(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return newResponse(http.StatusUnauthorized, `{}`), nil
	})

	_, err := client.HistoryPage(context.Background(), 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeAuth, apiErr.Type)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
	assert.False(t, errs.IsRetryable(apiErr.Type))
}

func TestHistoryPageRateLimited(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return newResponse(http.StatusTooManyRequests, `{}`), nil
	})

	_, err := client.HistoryPage(context.Background(), 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeRateLimit, apiErr.Type)
	assert.True(t, errs.IsRetryable(apiErr.Type))
}

func TestHistoryPageServerError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return newResponse(http.StatusBadGateway, `upstream exploded`), nil
	})

	_, err := client.HistoryPage(context.Background(), 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeServer, apiErr.Type)
	assert.False(t, errs.IsRetryable(apiErr.Type))
}

func TestHistoryPageNetworkError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := client.HistoryPage(context.Background(), 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeNetwork, apiErr.Type)
	assert.True(t, errs.IsRetryable(apiErr.Type))
}

func TestHistoryPageAPILevelError(t *testing.T) {
	body := `{"meta":{"code":400,"errorType":"param_error","errorDetail":"bad v param"},"response":{}}`
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return newResponse(http.StatusOK, body), nil
	})

	_, err := client.HistoryPage(context.Background(), 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeAPI, apiErr.Type)
	assert.Equal(t, 400, apiErr.Code)
	assert.Contains(t, apiErr.Message, "bad v param")
}

func TestHistoryPageMalformedJSON(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return newResponse(http.StatusOK, `{"meta": nope`), nil
	})

	_, err := client.HistoryPage(context.Background(), 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeParsing, apiErr.Type)
}
