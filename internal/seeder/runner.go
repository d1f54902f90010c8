// Package seeder generates synthetic contest payloads and posts them to a
// running rating service, then reads the leaderboard back. It exists for
// manual testing of a fresh deployment.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AsMaNick/RatingCalculator/internal/domain/model"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
)

// Run executes a complete seeding pass: health check, contest submission,
// rating updates, leaderboard readback.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting seeding run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("contests", config.NumContests),
		logger.Int("rosterSize", config.RosterSize),
		logger.Int("topN", config.TopN),
	)

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	roster := generateRoster(config.RosterSize)
	contests := generateContests(roster, config.NumContests)
	stats.ContestsGenerated = len(contests)

	if err := submitPayloads(ctx, client, config, contests, stats); err != nil {
		return fmt.Errorf("contest submission failed: %w", err)
	}

	updates := generateRatingUpdates(roster)
	for _, p := range updates {
		if _, err := submitPayload(ctx, client, config, p); err != nil {
			log.Warn(ctx, "rating update rejected", logger.Error(err))
			continue
		}
		stats.RatingBatches++
	}

	entries, err := fetchLeaderboard(ctx, client, config)
	if err != nil {
		return fmt.Errorf("leaderboard readback failed: %w", err)
	}
	for i, e := range entries {
		if i >= config.TopN {
			break
		}
		log.Info(ctx, "leaderboard entry",
			logger.Int("place", e.Place),
			logger.String("name", e.Name),
			logger.Float64("total", e.Total),
		)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "seeding run completed",
		logger.Int("processed", stats.ContestsProcessed),
		logger.Int("duplicate", stats.ContestsDuplicate),
		logger.Int("failed", stats.ContestsFailed),
		logger.Int("ratingBatches", stats.RatingBatches),
		logger.String("duration", stats.Duration.String()),
	)
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if _, err := readResponseBody(resp); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %d", resp.StatusCode)
	}
	return nil
}

// submitPayloads posts contest payloads one at a time. The service holds a
// global board lock, so client-side concurrency buys nothing here.
func submitPayloads(ctx context.Context, client *HTTPClient, config *Config, payloads []model.Payload, stats *Stats) error {
	log := logger.Get()
	for _, p := range payloads {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ack, err := submitPayload(ctx, client, config, p)
		if err != nil {
			stats.ContestsFailed++
			log.Warn(ctx, "contest rejected",
				logger.String("sheet", p.SheetName),
				logger.Error(err),
			)
			continue
		}
		if ack.Duplicate {
			stats.ContestsDuplicate++
		} else {
			stats.ContestsProcessed++
		}
		if config.Verbose {
			log.Info(ctx, "contest submitted",
				logger.String("sheet", p.SheetName),
				logger.String("status", ack.Status),
			)
		}
	}
	return nil
}

func submitPayload(ctx context.Context, client *HTTPClient, config *Config, p model.Payload) (AckResponse, error) {
	resp, err := client.Post(ctx, config.BaseURL+"/webhook", p)
	if err != nil {
		return AckResponse{}, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return AckResponse{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return AckResponse{}, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	var ack AckResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		return AckResponse{}, fmt.Errorf("failed to decode acknowledgement: %w", err)
	}
	return ack, nil
}

func fetchLeaderboard(ctx context.Context, client *HTTPClient, config *Config) ([]Entry, error) {
	url := fmt.Sprintf("%s/leaderboard?limit=%d", config.BaseURL, config.TopN)
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return entries, nil
}
