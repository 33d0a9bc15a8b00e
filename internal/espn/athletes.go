package espn

import (
	"context"
	"fmt"
	"net/url"

	"github.com/huangsam/gridiron/schema"
)

// Fallbacks used when a profile omits its team or position.
const (
	FreeAgent       = "Free Agent"
	UnknownPosition = "Unknown"
)

// athleteIndexLimit is large enough to return every NFL athlete in one page.
const athleteIndexLimit = 20000

// ListAthletes fetches the full athlete index.
func (c *Client) ListAthletes(ctx context.Context) ([]schema.AthleteSummary, error) {
	endpoint := fmt.Sprintf("%s/v3/sports/football/nfl/athletes?limit=%d", c.coreURL, athleteIndexLimit)
	var index schema.AthleteIndex
	if err := c.getJSON(ctx, endpoint, &index); err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return index.Items, nil
}

// GetAthlete fetches the raw athlete profile.
func (c *Client) GetAthlete(ctx context.Context, id string) (schema.AthleteProfile, error) {
	endpoint := fmt.Sprintf("%s/v2/sports/football/leagues/nfl/athletes/%s", c.coreURL, url.PathEscape(id))
	var profile schema.AthleteProfile
	if err := c.getJSON(ctx, endpoint, &profile); err != nil {
		return schema.AthleteProfile{}, fmt.Errorf("failed to fetch athlete %s: %w", id, err)
	}
	return profile, nil
}

// GetPlayer fetches an athlete profile and resolves its team into a Player.
// A team that cannot be resolved is reported as a free agent.
func (c *Client) GetPlayer(ctx context.Context, id string) (schema.Player, error) {
	profile, err := c.GetAthlete(ctx, id)
	if err != nil {
		return schema.Player{}, err
	}

	player := schema.Player{
		ID:     cmpOr(profile.ID, id),
		Name:   profile.FullName,
		Team:   c.teamName(ctx, profile.Team),
		Jersey: profile.Jersey,
		Age:    profile.Age,
		Height: profile.DisplayHeight,
		Weight: profile.DisplayWeight,
	}
	player.Position = UnknownPosition
	if profile.Position != nil && profile.Position.Abbreviation != "" {
		player.Position = schema.NormalizePosition(profile.Position.Abbreviation)
	}
	if profile.Experience != nil {
		player.Experience = profile.Experience.Years
	}
	if profile.Headshot != nil {
		player.HeadshotURL = profile.Headshot.Href
	}
	return player, nil
}

// teamName resolves an inline team or follows its $ref link.
func (c *Client) teamName(ctx context.Context, team *schema.TeamRef) string {
	if team == nil {
		return FreeAgent
	}
	if team.Ref == "" {
		return cmpOr(cmpOr(team.DisplayName, team.Name), FreeAgent)
	}
	var resolved schema.TeamRef
	if err := c.getJSON(ctx, team.Ref, &resolved); err != nil {
		return FreeAgent
	}
	return cmpOr(cmpOr(resolved.DisplayName, resolved.Name), FreeAgent)
}

// GetStats fetches the per-category season statistics of an athlete.
func (c *Client) GetStats(ctx context.Context, id string) (schema.StatsResponse, error) {
	endpoint := fmt.Sprintf("%s/apis/common/v3/sports/football/nfl/athletes/%s/stats", c.siteURL, url.PathEscape(id))
	var stats schema.StatsResponse
	if err := c.getJSON(ctx, endpoint, &stats); err != nil {
		return schema.StatsResponse{}, fmt.Errorf("failed to fetch stats for %s: %w", id, err)
	}
	return stats, nil
}
