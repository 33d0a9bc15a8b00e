package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/huangsam/gridiron/schema"
)

// gamesLabels are the provider labels that carry games played.
var gamesLabels = map[string]struct{}{"GP": {}, "G": {}, "Games Played": {}}

// fallbackGames is the divisor used when a season has no games played.
const fallbackGames = 16

// seasonLength is the pace every season is normalized to.
const seasonLength = 17

// isTotalsRow reports whether a row is a pre-aggregated career row.
func isTotalsRow(row schema.SeasonStatistic) bool {
	return strings.Contains(row.DisplayName, "Totals")
}

// statLine aligns a row's values with its category labels.
func statLine(category schema.StatCategory, row schema.SeasonStatistic) schema.CategoryStatLine {
	values := make(map[string]string, len(category.Labels))
	for i, label := range category.Labels {
		if i < len(row.Stats) {
			values[label] = string(row.Stats[i])
		}
	}
	return schema.CategoryStatLine{Category: schema.Category(category.Name), Values: values}
}

// teamName turns a slug such as "kansas-city-chiefs" into "Kansas City Chiefs".
func teamName(slug string) string {
	if slug == "" {
		return "Unknown"
	}
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CategoryLines returns the stat lines for one season, skipping Totals rows.
func CategoryLines(resp schema.StatsResponse, year int) []schema.CategoryStatLine {
	var lines []schema.CategoryStatLine
	for _, category := range resp.Categories {
		for _, row := range category.Statistics {
			if isTotalsRow(row) || row.Season.Year != year {
				continue
			}
			lines = append(lines, statLine(category, row))
		}
	}
	return lines
}

// LatestSeason returns the most recent season present, or 0 when there is none.
func LatestSeason(resp schema.StatsResponse) int {
	latest := 0
	for _, category := range resp.Categories {
		for _, row := range category.Statistics {
			if !isTotalsRow(row) && row.Season.Year > latest {
				latest = row.Season.Year
			}
		}
	}
	return latest
}

// SeasonFantasyPoints sums every category total for one season.
// A year of 0 means the latest season present.
func SeasonFantasyPoints(resp schema.StatsResponse, year int, cfg schema.ScoringConfig) float64 {
	if year == 0 {
		year = LatestSeason(resp)
	}
	var total float64
	for _, line := range CategoryLines(resp, year) {
		total += ScoreCategory(line, cfg).Total
	}
	return Round2(total)
}

// ScoreSeasons scores every season row grouped by year and team, newest first.
// Zero-valued breakdown entries are dropped.
func ScoreSeasons(resp schema.StatsResponse, cfg schema.ScoringConfig) []schema.SeasonScore {
	type seasonKey struct {
		year int
		team string
	}
	grouped := make(map[seasonKey]*schema.SeasonScore)

	for _, category := range resp.Categories {
		for _, row := range category.Statistics {
			if isTotalsRow(row) || row.Season.Year == 0 {
				continue
			}
			key := seasonKey{row.Season.Year, teamName(row.TeamSlug)}
			season, ok := grouped[key]
			if !ok {
				season = &schema.SeasonScore{
					Year:      key.year,
					Team:      key.team,
					Breakdown: make(map[schema.BreakdownKey]float64),
				}
				grouped[key] = season
			}
			score := ScoreCategory(statLine(category, row), cfg)
			season.Total += score.Total
			for k, v := range score.Breakdown {
				if v != 0 {
					season.Breakdown[k] += v
				}
			}
		}
	}

	seasons := make([]schema.SeasonScore, 0, len(grouped))
	for _, season := range grouped {
		season.Total = Round2(season.Total)
		for k, v := range season.Breakdown {
			season.Breakdown[k] = Round2(v)
		}
		seasons = append(seasons, *season)
	}
	slices.SortFunc(seasons, func(a, b schema.SeasonScore) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})
	return seasons
}

// BuildSeasonRecords turns a stats payload into one raw record per season,
// newest first. Rows for the same season on different teams are summed, so a
// traded player's season counts every team's stats and games. Games played is
// the largest per-category total for that season.
func BuildSeasonRecords(resp schema.StatsResponse, cfg schema.ScoringConfig) []schema.SeasonFantasyRecord {
	raw := make(map[int]*schema.SeasonFantasyRecord)
	games := make(map[int]map[string]float64) // year -> category -> games

	for _, category := range resp.Categories {
		for _, row := range category.Statistics {
			year := row.Season.Year
			if isTotalsRow(row) || year == 0 {
				continue
			}
			record, ok := raw[year]
			if !ok {
				record = &schema.SeasonFantasyRecord{Year: year, Stats: make(map[string]float64)}
				raw[year] = record
				games[year] = make(map[string]float64)
			}
			line := statLine(category, row)
			for label, value := range line.Values {
				v := ParseStatValue(value)
				if _, ok := gamesLabels[label]; ok {
					games[year][category.Name] += v
				}
				record.Stats[schema.StatKey(schema.Category(category.Name), label)] += v
			}
			record.FantasyPoints += ScoreCategory(line, cfg).Total
		}
	}

	records := make([]schema.SeasonFantasyRecord, 0, len(raw))
	for year, record := range raw {
		for _, g := range games[year] {
			record.GamesPlayed = max(record.GamesPlayed, g)
		}
		records = append(records, *record)
	}
	SortSeasons(records)
	return records
}

// NormalizeSeason scales a season's stats and fantasy points to a 17-game pace.
// Seasons without games played are assumed to span 16 games.
func NormalizeSeason(season schema.SeasonFantasyRecord) schema.SeasonFantasyRecord {
	games := season.GamesPlayed
	if games <= 0 {
		games = fallbackGames
	}
	scale := func(v float64) float64 {
		if games == seasonLength {
			return v
		}
		return v * seasonLength / games
	}

	out := schema.SeasonFantasyRecord{
		Year:          season.Year,
		GamesPlayed:   season.GamesPlayed,
		FantasyPoints: scale(season.FantasyPoints),
		Stats:         make(map[string]float64, len(season.Stats)),
	}
	for k, v := range season.Stats {
		out.Stats[k] = scale(v)
	}
	return out
}

// SortSeasons orders seasons newest first in place.
func SortSeasons(seasons []schema.SeasonFantasyRecord) {
	slices.SortStableFunc(seasons, func(a, b schema.SeasonFantasyRecord) int {
		return cmp.Compare(b.Year, a.Year)
	})
}
