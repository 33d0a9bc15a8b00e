package schema

// Custom string types for type safety.
type (
	// Category represents a statistic group reported by the stats provider.
	Category string

	// Position represents a roster position code.
	Position string

	// BreakdownKey represents keys used in scoring breakdowns.
	BreakdownKey string

	// ScoringPreset represents a named scoring configuration.
	ScoringPreset string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All stat categories that carry scoring formulas.
const (
	PassingCategory   Category = "passing"
	RushingCategory   Category = "rushing"
	ReceivingCategory Category = "receiving"
	KickingCategory   Category = "kicking"
)

// All positions with dedicated aging curves.
const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR" // default
	TE Position = "TE"
	K  Position = "K"
)

// Breakdown keys used in the scoring logic.
const (
	BreakdownPassingYards   BreakdownKey = "Passing Yards"
	BreakdownPassingTDs     BreakdownKey = "Passing TDs"
	BreakdownInterceptions  BreakdownKey = "Interceptions"
	BreakdownRushingYards   BreakdownKey = "Rushing Yards"
	BreakdownRushingTDs     BreakdownKey = "Rushing TDs"
	BreakdownFumbles        BreakdownKey = "Fumbles"
	BreakdownReceptions     BreakdownKey = "Receptions"
	BreakdownReceivingYards BreakdownKey = "Receiving Yards"
	BreakdownReceivingTDs   BreakdownKey = "Receiving TDs"
	BreakdownFieldGoals     BreakdownKey = "Field Goals"
	BreakdownExtraPoints    BreakdownKey = "Extra Points"
)

// All scoring presets supported.
const (
	PPRPreset     ScoringPreset = "ppr" // default
	HalfPPRPreset ScoringPreset = "half-ppr"
	NonPPRPreset  ScoringPreset = "non-ppr"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	RedisBackend      DatabaseBackend = "redis"
	NoneBackend       DatabaseBackend = "none"
)

// AllCategories lists the scored categories in display order.
var AllCategories = []Category{PassingCategory, RushingCategory, ReceivingCategory, KickingCategory}

// AllBreakdownKeys lists every breakdown key in display order.
var AllBreakdownKeys = []BreakdownKey{
	BreakdownPassingYards, BreakdownPassingTDs, BreakdownInterceptions,
	BreakdownRushingYards, BreakdownRushingTDs, BreakdownFumbles,
	BreakdownReceptions, BreakdownReceivingYards, BreakdownReceivingTDs,
	BreakdownFieldGoals, BreakdownExtraPoints,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidScoringPresets lists all valid scoring presets.
var ValidScoringPresets = map[ScoringPreset]struct{}{
	PPRPreset:     {},
	HalfPPRPreset: {},
	NonPPRPreset:  {},
}

// ValidCacheBackends lists all valid response cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	RedisBackend:      {},
	NoneBackend:       {},
}

// ValidSearchBackends lists all valid search count backends.
// Search counts need relational queries, so redis is not offered here.
var ValidSearchBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// PositionAliases maps free-text position words to position codes.
var PositionAliases = map[string]Position{
	"qb":            QB,
	"quarterback":   QB,
	"rb":            RB,
	"running back":  RB,
	"wr":            WR,
	"wide receiver": WR,
	"te":            TE,
	"tight end":     TE,
	"k":             K,
	"kicker":        K,
}
