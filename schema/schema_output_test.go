package schema_test

import (
	"testing"

	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		points   float64
		expected string
	}{
		{"Must Start Upper", 420.5, "Must-start"},
		{"Must Start Lower", 300.0, "Must-start"},
		{"Strong Upper", 299.99, "Strong starter"},
		{"Strong Lower", 200.0, "Strong starter"},
		{"Flex Upper", 199.99, "Flex option"},
		{"Flex Lower", 100.0, "Flex option"},
		{"Bench Upper", 99.99, "Bench/depth"},
		{"Bench Lower", 0.01, "Bench/depth"},
		{"Zero", 0.0, "Deep league"},
		{"Negative", -3.5, "Deep league"}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetPlainLabel(tt.points))
		})
	}
}

func TestRankEntries(t *testing.T) {
	entries := []schema.LeaderboardEntry{
		{Name: "Lamar Jackson", Position: schema.QB, FantasyPoints: 430.4},
		{Name: "Bijan Robinson", Position: schema.RB, FantasyPoints: 292.6},
		{Name: "Tyler Higbee", Position: schema.TE, FantasyPoints: 20.1},
	}

	ranked := schema.RankEntries(entries)

	assert.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Must-start", ranked[0].Label)
	assert.Equal(t, "Lamar Jackson", ranked[0].Name)

	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "Strong starter", ranked[1].Label)

	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "Bench/depth", ranked[2].Label)
}
