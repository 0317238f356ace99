package fetcher

import (
	"context"
	"fmt"
	"time"

	"swarmtrack/pkg/config"
	"swarmtrack/pkg/foursquare"
	"swarmtrack/pkg/logger"
	"swarmtrack/pkg/retry"
	"swarmtrack/pkg/storage"
)

// HistoryClient fetches one offset/limit window of checkin history
type HistoryClient interface {
	HistoryPage(ctx context.Context, offset, limit int) (*foursquare.CheckinPage, error)
}

// Fetcher walks the full checkin history page by page. Retryable failures
// (rate limits, network errors) are retried on the same offset without a
// cap; anything else aborts the walk with whatever was collected so far.
type Fetcher struct {
	client    HistoryClient
	policy    *retry.Policy
	sleeper   retry.Sleeper
	limit     int
	pageDelay time.Duration
	logger    logger.Logger
}

// New creates a fetcher from the given fetch configuration
func New(client HistoryClient, cfg *config.FetchConfig, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Fetcher{
		client:    client,
		policy:    retry.NewPolicy(cfg.RateLimitWait, cfg.NetworkWait),
		sleeper:   retry.NewSleeper(),
		limit:     cfg.PageLimit,
		pageDelay: cfg.PageDelay,
		logger:    log,
	}
}

// SetSleeper replaces the sleeper used for retry and pacing delays
func (f *Fetcher) SetSleeper(s retry.Sleeper) {
	f.sleeper = s
}

// FetchAll downloads every page of the user's history. On a fatal error the
// checkins collected so far are returned alongside the error, so callers can
// persist partial results.
func (f *Fetcher) FetchAll(ctx context.Context) ([]foursquare.Checkin, error) {
	var all []foursquare.Checkin
	offset := 0
	total := -1

	for {
		page, err := f.client.HistoryPage(ctx, offset, f.limit)
		if err != nil {
			decision := f.policy.Decide(err)
			if !decision.Retry {
				f.logger.ErrorWithFields("aborting download", map[string]interface{}{
					"offset":    offset,
					"collected": len(all),
					"error":     err.Error(),
				})
				return all, err
			}

			f.logger.WarnWithFields("retrying page", map[string]interface{}{
				"offset": offset,
				"wait":   decision.Delay.String(),
				"error":  err.Error(),
			})
			if err := f.sleeper.Sleep(ctx, decision.Delay); err != nil {
				return all, err
			}
			continue
		}

		if total < 0 {
			total = page.Count
			f.logger.InfoWithFields("starting download", map[string]interface{}{
				"total_checkins": total,
			})
		}

		if len(page.Items) == 0 {
			break
		}

		all = append(all, page.Items...)
		f.logger.InfoWithFields("fetched page", map[string]interface{}{
			"offset":    offset,
			"page_size": len(page.Items),
			"collected": len(all),
		})

		// a short page means we just consumed the tail of the history
		if len(page.Items) < f.limit {
			break
		}

		offset += f.limit

		if err := f.sleeper.Sleep(ctx, f.pageDelay); err != nil {
			return all, err
		}
	}

	f.logger.InfoWithFields("download complete", map[string]interface{}{
		"collected": len(all),
	})
	return all, nil
}

// Run downloads the full history and persists both the dataset and the
// summary. Partial results are saved even when the download aborts, and the
// fetch error is returned after the save so the caller still sees it.
func (f *Fetcher) Run(ctx context.Context, store *storage.Manager, cfg *config.OutputConfig, userID string) error {
	checkins, fetchErr := f.FetchAll(ctx)
	if fetchErr != nil && len(checkins) == 0 {
		return fetchErr
	}
	if fetchErr != nil {
		f.logger.WarnWithFields("saving partial results", map[string]interface{}{
			"collected": len(checkins),
		})
	}

	ds := &storage.Dataset{
		DownloadedAt:  time.Now().UTC(),
		UserID:        userID,
		TotalCheckins: len(checkins),
		Checkins:      checkins,
	}

	if _, err := store.SaveDataset(cfg.DatasetFile, ds); err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}
	if _, err := store.SaveSummary(cfg.SummaryFile, storage.Summarize(checkins)); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	return fetchErr
}
