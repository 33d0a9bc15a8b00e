package core

import "github.com/huangsam/gridiron/schema"

func row(year int, team string, stats ...string) schema.SeasonStatistic {
	values := make([]schema.StatValue, len(stats))
	for i, s := range stats {
		values[i] = schema.StatValue(s)
	}
	return schema.SeasonStatistic{Season: schema.SeasonRef{Year: year}, TeamSlug: team, Stats: values}
}

// quarterbackStats has two seasons on one team plus a career row.
//
//	2024: passing 322.88 + rushing 111.5 = 434.38
//	2023: passing 229.12 + rushing 106.1 = 335.22
func quarterbackStats() schema.StatsResponse {
	totals := row(2025, "", "33", "7,850", "65", "11")
	totals.DisplayName = "Career Totals"
	return schema.StatsResponse{Categories: []schema.StatCategory{
		{
			Name:   "passing",
			Labels: []string{"GP", "YDS", "TD", "INT"},
			Statistics: []schema.SeasonStatistic{
				row(2023, "baltimore-ravens", "16", "3,678", "24", "7"),
				row(2024, "baltimore-ravens", "17", "4,172", "41", "4"),
				totals,
			},
		},
		{
			Name:   "rushing",
			Labels: []string{"GP", "YDS", "TD", "FUM"},
			Statistics: []schema.SeasonStatistic{
				row(2023, "baltimore-ravens", "16", "821", "5", "3"),
				row(2024, "baltimore-ravens", "17", "915", "4", "2"),
			},
		},
	}}
}

// tradedStats has one season split across two teams.
func tradedStats() schema.StatsResponse {
	return schema.StatsResponse{Categories: []schema.StatCategory{
		{
			Name:   "receiving",
			Labels: []string{"GP", "REC", "YDS", "TD"},
			Statistics: []schema.SeasonStatistic{
				row(2022, "denver-broncos", "8", "30", "400", "2"),
				row(2022, "miami-dolphins", "9", "40", "500", "3"),
			},
		},
	}}
}
