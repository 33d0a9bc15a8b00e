// Package assistant answers free-text fantasy football questions with keyword rules.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// Keyword rules, checked in declaration order by Respond.
var (
	recommendPattern  = regexp.MustCompile(`(?i)\b(recommend|suggest)`)
	comparePattern    = regexp.MustCompile(`(?i)\b(compare|vs\.?|versus)\b`)
	playerInfoPattern = regexp.MustCompile(`(?i)\b(who is|tell me about|info about)\b`)
	advicePattern     = regexp.MustCompile(`(?i)\b(fantasy|advice|strategy)\b`)
	rankingPattern    = regexp.MustCompile(`(?i)\b(top|best|rankings)\b`)
	helpPattern       = regexp.MustCompile(`(?i)\bhelp\b|what can you do`)
	projectionPattern = regexp.MustCompile(`(?i)\b(projections?|project|predict)\b|next season|\b20\d{2}\b`)
	yearPattern       = regexp.MustCompile(`\b(20\d{2})\b`)
)

// positionPatterns detect a position mention, checked in order.
var positionPatterns = []struct {
	position schema.Position
	pattern  *regexp.Regexp
}{
	{schema.QB, regexp.MustCompile(`(?i)\b(qb|quarterback)s?\b`)},
	{schema.RB, regexp.MustCompile(`(?i)\b(rb|running back)s?\b`)},
	{schema.WR, regexp.MustCompile(`(?i)\b(wr|wide receiver)s?\b`)},
	{schema.TE, regexp.MustCompile(`(?i)\b(te|tight end)s?\b`)},
}

// Result counts for each kind of list reply.
const (
	recommendCount    = 3
	recommendTopCount = 5
	rankingCount      = 5
	rankingTopCount   = 10
)

// Assistant dispatches chat messages to canned replies backed by a Resolver.
type Assistant struct {
	resolver *core.Resolver
}

// New creates an assistant over the given resolver.
func New(resolver *core.Resolver) *Assistant {
	return &Assistant{resolver: resolver}
}

// Respond returns the reply for one message. Only context errors are returned;
// missing players and provider failures are answered in text.
func (a *Assistant) Respond(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)

	if recommendPattern.MatchString(input) {
		if position, ok := detectPosition(input); ok {
			return a.recommendByPosition(position, recommendCount), nil
		}
		return a.recommendTop(recommendTopCount), nil
	}

	if comparePattern.MatchString(input) {
		names := a.extractNames(input, 2)
		if len(names) < 2 {
			return comparePrompt, nil
		}
		return a.compare(ctx, names[0], names[1])
	}

	if playerInfoPattern.MatchString(input) {
		if name, ok := a.extractName(input); ok {
			return a.playerInfo(ctx, name)
		}
	}

	if advicePattern.MatchString(input) {
		return a.advice(), nil
	}

	if rankingPattern.MatchString(input) {
		if position, ok := detectPosition(input); ok {
			return a.recommendByPosition(position, rankingCount), nil
		}
		return a.recommendTop(rankingTopCount), nil
	}

	if helpPattern.MatchString(input) {
		return helpMessage, nil
	}

	if projectionPattern.MatchString(input) {
		name, ok := a.extractName(input)
		if !ok {
			return missingNameMessage, nil
		}
		return a.projection(ctx, name, input)
	}

	if name, ok := a.extractName(input); ok {
		return a.playerInfo(ctx, name)
	}

	return defaultMessage, nil
}

// detectPosition returns the first position mentioned in text.
func detectPosition(text string) (schema.Position, bool) {
	for _, p := range positionPatterns {
		if p.pattern.MatchString(text) {
			return p.position, true
		}
	}
	return "", false
}

// extractNames prefers the full directory and falls back to leaderboard names.
func (a *Assistant) extractNames(text string, n int) []string {
	if a.resolver.Directory().Len() > 0 {
		return a.resolver.Directory().ExtractNames(text, n)
	}
	return a.resolver.Leaderboard().ExtractNames(text, n)
}

func (a *Assistant) extractName(text string) (string, bool) {
	names := a.extractNames(text, 1)
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// findPlayer resolves a name, reporting ok=false when nobody matches.
func (a *Assistant) findPlayer(ctx context.Context, name string) (schema.Player, bool, error) {
	player, err := a.resolver.FindPlayer(ctx, name)
	switch {
	case errors.Is(err, contract.ErrPlayerNotFound):
		return schema.Player{}, false, nil
	case err != nil:
		return schema.Player{}, false, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return schema.Player{}, false, ctxErr
	}
	return player, true, nil
}

func (a *Assistant) playerInfo(ctx context.Context, name string) (string, error) {
	player, ok, err := a.findPlayer(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("I couldn't find %q in my database. Please check the spelling and try again.", name), nil
	}
	return PlayerCard(player), nil
}

// PlayerCard renders the player summary used by the chat and the CLI.
func PlayerCard(player schema.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏈 %s\n\n", player.Name)
	b.WriteString("📊 Player Info:\n")
	fmt.Fprintf(&b, "• Position: %s\n", orNA(string(player.Position)))
	fmt.Fprintf(&b, "• Team: %s\n", orNA(player.Team))
	fmt.Fprintf(&b, "• Jersey: #%s\n", orNA(player.Jersey))
	fmt.Fprintf(&b, "• Age: %s • %s • %s\n", ageOrNA(player.Age), orNA(player.Height), orNA(player.Weight))
	fmt.Fprintf(&b, "• Experience: %d years\n", player.Experience)
	fmt.Fprintf(&b, "• Fantasy Points: %.2f\n\n", player.FantasyPoints)
	b.WriteString(recommendation(player.FantasyPoints))
	return b.String()
}

// recommendation maps season points to a start/sit line.
func recommendation(points float64) string {
	switch {
	case points >= 300:
		return "🔥 Recommendation: Must-start player!"
	case points >= 200:
		return "💪 Recommendation: Strong starter"
	case points >= 100:
		return "📊 Recommendation: Flex option"
	case points > 0:
		return "📋 Recommendation: Bench/depth player"
	default:
		return "📋 Recommendation: Deep league option"
	}
}

func (a *Assistant) compare(ctx context.Context, first, second string) (string, error) {
	p1, ok1, err := a.findPlayer(ctx, first)
	if err != nil {
		return "", err
	}
	p2, ok2, err := a.findPlayer(ctx, second)
	if err != nil {
		return "", err
	}
	if !ok1 || !ok2 {
		return "I couldn't find one or both players in my database. Please check the spelling and try again.", nil
	}

	result := core.ComparePlayers(p1, p2)
	var b strings.Builder
	fmt.Fprintf(&b, "🏈 %s vs %s\n\n", first, second)
	fmt.Fprintf(&b, "%s (%s - %s):\n• Fantasy Points: %.2f\n\n", first, p1.Position, p1.Team, p1.FantasyPoints)
	fmt.Fprintf(&b, "%s (%s - %s):\n• Fantasy Points: %.2f\n\n", second, p2.Position, p2.Team, p2.FantasyPoints)
	switch result.Winner {
	case "":
		fmt.Fprintf(&b, "🤝 Tie: Both players have %.2f fantasy points", p1.FantasyPoints)
	case p1.Name:
		fmt.Fprintf(&b, "🏆 Winner: %s (+%.2f points)", first, result.Margin)
	default:
		fmt.Fprintf(&b, "🏆 Winner: %s (+%.2f points)", second, result.Margin)
	}
	return b.String(), nil
}

func (a *Assistant) recommendByPosition(position schema.Position, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %s recommendations:\n\n", position)
	for i, e := range a.resolver.Leaderboard().TopByPosition(position, n) {
		fmt.Fprintf(&b, "%d. %s (%s)\n   Fantasy Points: %.2f\n\n", i+1, e.Name, e.Team, e.FantasyPoints)
	}
	return b.String()
}

func (a *Assistant) recommendTop(n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d fantasy players:\n\n", n)
	for i, e := range a.resolver.Leaderboard().Top(n) {
		fmt.Fprintf(&b, "%d. %s (%s - %s)\n   Fantasy Points: %.2f\n\n", i+1, e.Name, e.Position, e.Team, e.FantasyPoints)
	}
	return b.String()
}

func (a *Assistant) advice() string {
	var b strings.Builder
	b.WriteString("🏈 Fantasy Football Advice\n\n🔥 Must-Start Players:\n")
	for _, position := range []schema.Position{schema.QB, schema.RB, schema.WR} {
		top := a.resolver.Leaderboard().TopByPosition(position, 1)
		if len(top) == 0 {
			continue
		}
		fmt.Fprintf(&b, "• %s: %s (%.2f pts)\n", position, top[0].Name, top[0].FantasyPoints)
	}
	b.WriteString("\n" + strategyTips)
	return b.String()
}

func (a *Assistant) projection(ctx context.Context, name, input string) (string, error) {
	failure := fmt.Sprintf("I couldn't calculate %s projections for %s. This might be due to limited statistical data.",
		targetYearLabel(input), name)

	report, err := a.resolver.Report(ctx, name, true)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil || report.Projection == nil || report.Projection.Error != "" {
		return failure, nil
	}

	year := report.Season + 1
	if match := yearPattern.FindString(input); match != "" {
		year, _ = strconv.Atoi(match)
	}
	p := report.Projection
	return fmt.Sprintf("🔮 %d Projections for %s:\n\n"+
		"Projected Fantasy Points: %.1f\n"+
		"Confidence: %.0f%%\n"+
		"Factors:\n"+
		"• Age: %sx\n"+
		"• Trend: %sx",
		year, name, p.FantasyPoints, p.Confidence*100,
		strconv.FormatFloat(p.Factors.Age, 'f', -1, 64),
		strconv.FormatFloat(p.Factors.Trend, 'f', -1, 64)), nil
}

// targetYearLabel names the projected season for failure messages.
func targetYearLabel(input string) string {
	if match := yearPattern.FindString(input); match != "" {
		return match
	}
	return "next season"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func ageOrNA(age int) string {
	if age <= 0 {
		return "N/A"
	}
	return strconv.Itoa(age)
}
