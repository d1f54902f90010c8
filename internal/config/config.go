// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; file and environment layers override them.
// - All board shape parameters live here so the engine carries no globals.
package config

// Config contains process configuration for the rating board service.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// TableName is the cumulative rating table sheet.
	TableName string `koanf:"table_name"`

	// ConfigSheetName holds the per-round-type coefficient cells (B2..).
	ConfigSheetName string `koanf:"config_sheet_name"`

	// LogSheetName receives best-effort debug log rows; empty disables it.
	LogSheetName string `koanf:"log_sheet_name"`

	// Judges fixes the judge column order of the cumulative table. Must not
	// change once a table has been created.
	Judges []string `koanf:"judges"`

	// LockTimeoutMS bounds the wait for the board lock.
	LockTimeoutMS int `koanf:"lock_timeout_ms"`

	// DeltaColorIntensity divides the rating-delta color blend factor.
	DeltaColorIntensity int `koanf:"delta_color_intensity"`

	// MinFieldSize floors the effective field size of the rating formula;
	// 1 selects the unfloored formula variant.
	MinFieldSize int `koanf:"min_field_size"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// CodeforcesListKey narrows codeforces standings links to a private
	// list when set.
	CodeforcesListKey string `koanf:"codeforces_list_key"`

	// RoundTypes are the keywords classified against a contest's sheet name
	// to select the coefficient cell; keyword i maps to config-sheet cell
	// B(2+i).
	RoundTypes []string `koanf:"round_types"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		TableName:           "Rating",
		ConfigSheetName:     "Config",
		LogSheetName:        "DebugLog",
		Judges:              []string{"codeforces", "atcoder", "tlx"},
		LockTimeoutMS:       30_000,
		DeltaColorIntensity: 800,
		MinFieldSize:        10,
		MaxLeaderboardLimit: 100,
		RoundTypes: []string{
			"AGC",
			"ARC",
			"ABC",
			"Div. 1 + Div. 2",
			"Div. 1",
			"Div. 2",
			"Div. 3",
			"TROC",
		},
	}
}
