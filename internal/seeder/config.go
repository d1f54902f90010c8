package seeder

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumContests int           // Number of contest payloads to generate
	RosterSize  int           // Number of synthetic participants per contest
	TopN        int           // Number of top entries to fetch afterwards
	Timeout     time.Duration // HTTP request timeout
	Verbose     bool          // Enable verbose logging
}

// AckResponse mirrors the webhook acknowledgement body.
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// Entry mirrors a leaderboard row returned by the service.
type Entry struct {
	Place int     `json:"place"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// Stats holds seeding statistics.
type Stats struct {
	ContestsGenerated int
	ContestsProcessed int
	ContestsDuplicate int
	ContestsFailed    int
	RatingBatches     int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
