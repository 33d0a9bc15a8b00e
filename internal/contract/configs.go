package contract

import (
	"fmt"
	"math"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/gridiron/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit     = 10
	MaxResultLimit         = 500
	DefaultPrecision       = 2
	DefaultCacheTTL        = 24 * time.Hour
	DefaultHTTPTimeout     = 15 * time.Second
	DefaultAddr            = ":5000"
	DefaultLeaderboardFile = "topFantasyPlayers.json"
	DefaultLogLevel        = "info"
	DefaultESPNCoreURL     = "https://sports.core.api.espn.com"
	DefaultESPNSiteURL     = "https://site.web.api.espn.com"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date/time format used in output.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ScoringRawInput holds per-weight overrides from the YAML config file.
// Pointers distinguish an omitted weight from an explicit zero.
type ScoringRawInput struct {
	PassingYards   *float64 `mapstructure:"passing-yards"`
	PassingTDs     *float64 `mapstructure:"passing-tds"`
	Interceptions  *float64 `mapstructure:"interceptions"`
	RushingYards   *float64 `mapstructure:"rushing-yards"`
	RushingTDs     *float64 `mapstructure:"rushing-tds"`
	Fumbles        *float64 `mapstructure:"fumbles"`
	Receptions     *float64 `mapstructure:"receptions"`
	ReceivingYards *float64 `mapstructure:"receiving-yards"`
	ReceivingTDs   *float64 `mapstructure:"receiving-tds"`
	FieldGoals     *float64 `mapstructure:"field-goals"`
	ExtraPoints    *float64 `mapstructure:"extra-points"`
}

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	ScoringPreset schema.ScoringPreset
	Scoring       schema.ScoringConfig
	Season        int // 0 = latest season in the data
	Situation     schema.SituationalFactors

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	SearchBackend   schema.DatabaseBackend
	SearchDBConnect string // Please use env var as this is plaintext

	LeaderboardFile string
	ESPNCoreURL     string
	ESPNSiteURL     string
	HTTPTimeout     time.Duration

	Addr        string
	CORSOrigins []string
	LogLevel    string
}

// Clone returns a copy that callers may modify per request.
func (c *Config) Clone() *Config {
	clone := *c
	clone.CORSOrigins = slices.Clone(c.CORSOrigins)
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	ScoringPreset   string `mapstructure:"scoring-preset"`
	Season          int    `mapstructure:"season"`
	Limit           int    `mapstructure:"limit"`
	Workers         int    `mapstructure:"workers"`
	Precision       int    `mapstructure:"precision"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Width           int    `mapstructure:"width"`
	Color           string `mapstructure:"color"`
	CacheBackend    string `mapstructure:"cache-backend"`
	CacheDBConnect  string `mapstructure:"cache-db-connect"`
	CacheTTL        string `mapstructure:"cache-ttl"`
	SearchBackend   string `mapstructure:"search-backend"`
	SearchDBConnect string `mapstructure:"search-db-connect"`
	LeaderboardFile string `mapstructure:"leaderboard-file"`
	ESPNCoreURL     string `mapstructure:"espn-core-url"`
	ESPNSiteURL     string `mapstructure:"espn-site-url"`
	HTTPTimeout     string `mapstructure:"http-timeout"`

	// --- Fields from projectCmd.Flags() ---
	Injury         bool `mapstructure:"injury"`
	NewTeam        bool `mapstructure:"new-team"`
	NewCoordinator bool `mapstructure:"new-coordinator"`

	// --- Fields from serveCmd.Flags() ---
	Addr        string `mapstructure:"addr"`
	CORSOrigins string `mapstructure:"cors-origins"`
	LogLevel    string `mapstructure:"log-level"`

	// --- Custom weights from config file ---
	Scoring ScoringRawInput `mapstructure:"scoring"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processScoring(cfg, input); err != nil {
		return err
	}
	if err := processDurations(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	processServerInputs(cfg, input)
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL, PostgreSQL and Redis backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	case schema.RedisBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.HasPrefix(connStr, "redis://") && !strings.HasPrefix(connStr, "rediss://") {
			return fmt.Errorf("Redis connection string must start with 'redis://' or 'rediss://'")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and search backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, redis, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Search Backend Validation ---
	cfg.SearchBackend = schema.DatabaseBackend(strings.ToLower(input.SearchBackend))
	if cfg.SearchBackend == "" {
		return nil
	}
	if _, ok := schema.ValidSearchBackends[cfg.SearchBackend]; !ok {
		return fmt.Errorf("invalid search backend '%s'. must be sqlite, mysql, postgresql, none", input.SearchBackend)
	}
	cfg.SearchDBConnect = input.SearchDBConnect
	if err := ValidateDatabaseConnectionString(cfg.SearchBackend, cfg.SearchDBConnect); err != nil {
		return err
	}

	// Validate that cache and search use different SQLite files
	if cfg.CacheBackend == schema.SQLiteBackend && cfg.SearchBackend == schema.SQLiteBackend {
		cacheDBPath := cfg.CacheDBConnect
		if cacheDBPath == "" {
			cacheDBPath = GetCacheDBFilePath()
		}
		searchDBPath := cfg.SearchDBConnect
		if searchDBPath == "" {
			searchDBPath = GetSearchDBFilePath()
		}
		if cacheDBPath == searchDBPath {
			return fmt.Errorf("cache and search storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
		}
	}

	return nil
}

// validateSimpleInputs processes and validates the presentation and execution fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.LeaderboardFile = input.LeaderboardFile
	if cfg.LeaderboardFile == "" {
		cfg.LeaderboardFile = DefaultLeaderboardFile
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Season < 0 {
		return fmt.Errorf("season must be a year or 0 for the latest season (received %d)", input.Season)
	}
	cfg.Season = input.Season

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	cfg.Situation = schema.SituationalFactors{
		InjuryHistory:           input.Injury,
		NewTeam:                 input.NewTeam,
		NewOffensiveCoordinator: input.NewCoordinator,
	}

	return nil
}

// processScoring resolves the preset and applies per-weight overrides.
func processScoring(cfg *Config, input *ConfigRawInput) error {
	cfg.ScoringPreset = schema.ScoringPreset(strings.ToLower(strings.TrimSpace(input.ScoringPreset)))
	if cfg.ScoringPreset == "" {
		cfg.ScoringPreset = schema.PPRPreset
	}
	scoring, err := schema.PresetScoringConfig(cfg.ScoringPreset)
	if err != nil {
		return err
	}

	overrides := []struct {
		value  *float64
		target *float64
	}{
		{input.Scoring.PassingYards, &scoring.PassingYards},
		{input.Scoring.PassingTDs, &scoring.PassingTDs},
		{input.Scoring.Interceptions, &scoring.Interceptions},
		{input.Scoring.RushingYards, &scoring.RushingYards},
		{input.Scoring.RushingTDs, &scoring.RushingTDs},
		{input.Scoring.Fumbles, &scoring.Fumbles},
		{input.Scoring.Receptions, &scoring.Receptions},
		{input.Scoring.ReceivingYards, &scoring.ReceivingYards},
		{input.Scoring.ReceivingTDs, &scoring.ReceivingTDs},
		{input.Scoring.FieldGoals, &scoring.FieldGoals},
		{input.Scoring.ExtraPoints, &scoring.ExtraPoints},
	}
	for _, o := range overrides {
		if o.value != nil {
			*o.target = *o.value
		}
	}

	if err := scoring.Validate(); err != nil {
		return err
	}
	cfg.Scoring = scoring
	return nil
}

// processDurations parses TTL and timeout strings such as "24h" or "15s".
func processDurations(cfg *Config, input *ConfigRawInput) error {
	parse := func(name, raw string, fallback time.Duration) (time.Duration, error) {
		if strings.TrimSpace(raw) == "" {
			return fallback, nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("invalid %s '%s': %w", name, raw, err)
		}
		if d < 0 {
			return 0, fmt.Errorf("%s cannot be negative (received %s)", name, raw)
		}
		return d, nil
	}

	var err error
	if cfg.CacheTTL, err = parse("cache-ttl", input.CacheTTL, DefaultCacheTTL); err != nil {
		return err
	}
	if cfg.HTTPTimeout, err = parse("http-timeout", input.HTTPTimeout, DefaultHTTPTimeout); err != nil {
		return err
	}
	return nil
}

// processServerInputs fills the provider endpoints and HTTP service settings.
func processServerInputs(cfg *Config, input *ConfigRawInput) {
	cfg.ESPNCoreURL = strings.TrimRight(cmpOr(input.ESPNCoreURL, DefaultESPNCoreURL), "/")
	cfg.ESPNSiteURL = strings.TrimRight(cmpOr(input.ESPNSiteURL, DefaultESPNSiteURL), "/")
	cfg.Addr = cmpOr(input.Addr, DefaultAddr)
	cfg.LogLevel = strings.ToLower(cmpOr(input.LogLevel, DefaultLogLevel))

	cfg.CORSOrigins = nil
	for origin := range strings.SplitSeq(input.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// FormatWeight renders a scoring weight without trailing zeros.
func FormatWeight(w float64) string {
	if w == math.Trunc(w) {
		return fmt.Sprintf("%.0f", w)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", w), "0"), ".")
}

func cmpOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
