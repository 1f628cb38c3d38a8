package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/parsers"
)

const (
	ckPortfolioSnapshot  = "snapshot_portfolio"
	ckCollectionSnapshot = "snapshot_collection"

	DefaultCacheExpiration = 5 * time.Minute
	CacheCleanupInterval   = 10 * time.Minute
)

// SnapshotClient isolates the upstream HTTP call so the service can be tested
// with a stub feed.
type SnapshotClient interface {
	FetchSnapshot(ctx context.Context, url, payloadKey string) ([]map[string]any, error)
}

type httpSnapshotClient struct {
	httpClient *http.Client
}

// NewHTTPSnapshotClient returns a SnapshotClient backed by a plain HTTP GET.
func NewHTTPSnapshotClient(timeout time.Duration) SnapshotClient {
	return &httpSnapshotClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSnapshot pulls one feed and extracts the record array under payloadKey.
// A missing payload key is treated as an empty snapshot, not an error.
func (c *httpSnapshotClient) FetchSnapshot(ctx context.Context, url, payloadKey string) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("snapshot endpoint %s returned status %d: %s", url, resp.StatusCode, string(body))
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding snapshot envelope: %w", err)
	}

	payload, ok := envelope[payloadKey]
	if !ok {
		if logger.L != nil {
			logger.L.Warn("Snapshot payload key missing, treating as empty", "payloadKey", payloadKey, "url", url)
		}
		return nil, nil
	}

	var raw []map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot payload %q: %w", payloadKey, err)
	}
	return raw, nil
}

// snapshotServiceImpl fetches the portfolio and collection feeds, parses them
// once and serves the parsed records from cache until the TTL expires, so one
// dashboard page load costs one upstream fetch per feed instead of one per
// endpoint.
type snapshotServiceImpl struct {
	client        SnapshotClient
	portfolioURL  string
	collectionURL string
	snapshotCache *cache.Cache
	cacheTTL      time.Duration
}

func NewSnapshotService(client SnapshotClient, portfolioURL, collectionURL string, cacheTTL time.Duration, snapshotCache *cache.Cache) SnapshotService {
	return &snapshotServiceImpl{
		client:        client,
		portfolioURL:  portfolioURL,
		collectionURL: collectionURL,
		snapshotCache: snapshotCache,
		cacheTTL:      cacheTTL,
	}
}

func (s *snapshotServiceImpl) PortfolioRecords(ctx context.Context) ([]models.LoanRecord, error) {
	return s.records(ctx, ckPortfolioSnapshot, s.portfolioURL, "pr")
}

func (s *snapshotServiceImpl) CollectionRecords(ctx context.Context) ([]models.LoanRecord, error) {
	return s.records(ctx, ckCollectionSnapshot, s.collectionURL, "cwpr")
}

func (s *snapshotServiceImpl) records(ctx context.Context, cacheKey, url, payloadKey string) ([]models.LoanRecord, error) {
	if cached, found := s.snapshotCache.Get(cacheKey); found {
		if records, ok := cached.([]models.LoanRecord); ok {
			return records, nil
		}
	}

	raw, err := s.client.FetchSnapshot(ctx, url, payloadKey)
	if err != nil {
		return nil, err
	}

	records := parsers.ParseLoanRecords(raw)
	s.snapshotCache.Set(cacheKey, records, s.cacheTTL)
	if logger.L != nil {
		logger.L.Info("Refreshed loan snapshot", "payloadKey", payloadKey, "records", len(records))
	}
	return records, nil
}
