package schema

import (
	"bytes"
	"encoding/json"
)

// StatValue is a raw provider stat cell. The provider mixes quoted strings
// ("1,234") and bare numbers, so both decode into the string form.
type StatValue string

// UnmarshalJSON accepts a JSON string, number or null.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = StatValue(n.String())
	return nil
}

// StatsResponse is the per-athlete stats payload.
type StatsResponse struct {
	Categories []StatCategory `json:"categories"`
}

// StatCategory holds one category's labels and per-season rows.
// Stats in each row are aligned with Labels.
type StatCategory struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName,omitempty"`
	Labels      []string          `json:"labels"`
	Statistics  []SeasonStatistic `json:"statistics"`
}

// SeasonStatistic is one row of a category, usually one season for one team.
// Career rows carry a DisplayName containing "Totals".
type SeasonStatistic struct {
	Season      SeasonRef   `json:"season"`
	TeamSlug    string      `json:"teamSlug,omitempty"`
	DisplayName string      `json:"displayName,omitempty"`
	Stats       []StatValue `json:"stats"`
}

// SeasonRef identifies the season of a stats row.
type SeasonRef struct {
	Year        int    `json:"year"`
	DisplayName string `json:"displayName,omitempty"`
}

// AthleteIndex is the athletes listing payload.
type AthleteIndex struct {
	Count int              `json:"count"`
	Items []AthleteSummary `json:"items"`
}

// AthleteSummary is one entry of the athletes listing.
type AthleteSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Jersey   string `json:"jersey,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

// AthleteProfile is the detailed athlete payload.
type AthleteProfile struct {
	ID            string      `json:"id"`
	FullName      string      `json:"fullName"`
	Jersey        string      `json:"jersey,omitempty"`
	Age           int         `json:"age,omitempty"`
	DisplayHeight string      `json:"displayHeight,omitempty"`
	DisplayWeight string      `json:"displayWeight,omitempty"`
	Position      *NamedRef   `json:"position,omitempty"`
	Team          *TeamRef    `json:"team,omitempty"`
	Experience    *Experience `json:"experience,omitempty"`
	Headshot      *Headshot   `json:"headshot,omitempty"`
}

// NamedRef is a nested object carrying an abbreviation.
type NamedRef struct {
	Abbreviation string `json:"abbreviation"`
}

// TeamRef is either an inline team or a $ref link to one.
type TeamRef struct {
	Ref         string `json:"$ref,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Experience holds the number of completed seasons.
type Experience struct {
	Years int `json:"years"`
}

// Headshot holds the athlete photo link.
type Headshot struct {
	Href string `json:"href"`
}
