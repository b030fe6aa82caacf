package domain

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		input    string
		expected RatingCategory
	}{
		{"Ótimo", RatingOtimo},
		{"otimo", RatingOtimo},
		{" BOM ", RatingBom},
		{"Regular", RatingRegular},
		{"ruim", RatingRuim},
		{"4", RatingOtimo},
		{"1", RatingRuim},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rating, err := ParseRating(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rating)
		})
	}

	_, err := ParseRating("excelente")
	assert.ErrorIs(t, err, ErrInvalidVote)
}

func TestVisibleRatings(t *testing.T) {
	assert.Equal(t, AllRatings, VisibleRatings(nil))
	assert.Equal(t, AllRatings, VisibleRatings(&Company{RatingButtonCount: 4}))
	assert.NotContains(t, VisibleRatings(&Company{RatingButtonCount: 3}), RatingRuim)
}

func TestRecentLess_TieBreakByID(t *testing.T) {
	ts := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	votes := []Vote{
		{ID: "10", Timestamp: ts},
		{ID: "9", Timestamp: ts},
		{ID: "11", Timestamp: ts.Add(time.Minute)},
	}

	SortRecent(votes)

	assert.Equal(t, []string{"11", "9", "10"}, []string{votes[0].ID, votes[1].ID, votes[2].ID})
}

func TestDateRange(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	rng, err := ParseDateRange("2024-05-01", "2024-05-31", loc)
	require.NoError(t, err)
	assert.Equal(t, 31, rng.Days())

	// 02:30 UTC do dia 1 de junho ainda é 31 de maio em São Paulo
	assert.True(t, rng.Contains(time.Date(2024, 6, 1, 2, 30, 0, 0, time.UTC), loc))
	assert.False(t, rng.Contains(time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC), loc))

	_, err = ParseDateRange("2024-05-31", "2024-05-01", loc)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestQuickRange(t *testing.T) {
	now := time.Date(2024, 5, 15, 15, 0, 0, 0, time.UTC)

	week, err := QuickRange(RangeLast7, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 7, week.Days())

	month, err := QuickRange(RangeThisMonth, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, month.Start.Day())
	assert.Equal(t, 15, month.Days())

	_, err = QuickRange("90d", now, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSessionContext(t *testing.T) {
	calls := 0
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	token, err := expired.SignedString([]byte("segredo"))
	require.NoError(t, err)

	session := NewSessionContext(token, 7, func(error) { calls++ })
	assert.False(t, session.Usable(time.Now()))

	session.Invalidate(ErrAuth)
	session.Invalidate(ErrAuth)
	assert.Equal(t, 1, calls)
	assert.True(t, session.Invalidated())

	opaque := NewSessionContext("token-opaco", 1, nil)
	assert.True(t, opaque.Usable(time.Now()))
}

func TestNewRatingCounts(t *testing.T) {
	counts := NewRatingCounts()

	assert.Len(t, counts, len(AllRatings))
	for _, r := range AllRatings {
		assert.Contains(t, counts, r)
		assert.Zero(t, counts[r])
	}

	a := NewAnalytics("", nil)
	for _, r := range AllRatings {
		assert.Contains(t, a.CountsByRating, r)
	}
}
