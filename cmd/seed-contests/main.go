package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/AsMaNick/RatingCalculator/internal/seeder"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumContests = 9
	defaultRosterSize  = 25
	defaultTopN        = 10
	defaultTimeout     = 30 * time.Second
	defaultRunTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numContests = flag.Int("contests", defaultNumContests, "Number of contest payloads to generate and submit")
		rosterSize  = flag.Int("roster", defaultRosterSize, "Number of synthetic participants per contest")
		topN        = flag.Int("top", defaultTopN, "Number of top entries to fetch from the leaderboard")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seeder.Config{
		BaseURL:     *baseURL,
		NumContests: *numContests,
		RosterSize:  *rosterSize,
		TopN:        *topN,
		Timeout:     *timeout,
		Verbose:     *verbose,
	}

	if err := seeder.Run(ctx, config); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
