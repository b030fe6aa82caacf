package aggregating

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

var base = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testLookups() *domain.Lookups {
	return domain.NewLookups(
		[]domain.Company{{ID: "1", Name: "Restaurante Central", RatingButtonCount: 4}},
		[]domain.ServiceInfo{
			{ID: "cafe", CompanyID: "1", Name: "Café da manhã", ExpectedMealCount: 50},
			{ID: "almoco", CompanyID: "1", Name: "Almoço", ExpectedMealCount: 120},
		},
		base,
	)
}

func vote(id string, rating domain.RatingCategory, service string, offset time.Duration) domain.Vote {
	return domain.Vote{
		ID:            id,
		CompanyID:     "1",
		ServiceTypeID: service,
		Rating:        rating,
		Timestamp:     base.Add(offset),
	}
}

func sampleVotes() []domain.Vote {
	return []domain.Vote{
		vote("1", domain.RatingOtimo, "cafe", 0),
		vote("2", domain.RatingBom, "cafe", time.Minute),
		vote("3", domain.RatingRegular, "almoco", 2*time.Minute),
		vote("4", domain.RatingRuim, "almoco", 24*time.Hour),
		vote("5", domain.RatingOtimo, "almoco", 25*time.Hour),
		vote("6", domain.RatingBom, "jantar", 26*time.Hour),
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	a := Aggregate(nil, testLookups(), Options{Location: time.UTC})

	assert.Equal(t, 0, a.TotalVotes)
	assert.Equal(t, 0.0, a.AverageRating)
	for _, r := range domain.AllRatings {
		assert.Contains(t, a.CountsByRating, r)
		assert.Contains(t, a.PercentByRating, r)
		assert.Equal(t, 0.0, a.PercentByRating[r])
	}
	assert.Empty(t, a.VotesByService)
	assert.Empty(t, a.VotesByDay)
	assert.Empty(t, a.RecentVotes)
	assert.Empty(t, a.Alerts)
}

func TestAggregate_CountsAndPartitions(t *testing.T) {
	votes := sampleVotes()
	a := Aggregate(votes, testLookups(), Options{CompanyID: "1", Location: time.UTC})

	// soma das categorias == total
	sum := 0
	for _, n := range a.CountsByRating {
		sum += n
	}
	assert.Equal(t, len(votes), a.TotalVotes)
	assert.Equal(t, a.TotalVotes, sum)

	// os grupos por serviço particionam o conjunto
	serviceTotal := 0
	for _, stats := range a.VotesByService {
		serviceTotal += stats.Total
		assert.Len(t, stats.Votes, stats.Total)
	}
	assert.Equal(t, a.TotalVotes, serviceTotal)

	dayTotal := 0
	for _, b := range a.VotesByDay {
		dayTotal += b.Total
	}
	assert.Equal(t, a.TotalVotes, dayTotal)
	require.Len(t, a.VotesByDay, 2)
	assert.True(t, a.VotesByDay[0].Date.Before(a.VotesByDay[1].Date))

	// percentuais fecham em 100 dentro do arredondamento
	pct := 0.0
	for _, p := range a.PercentByRating {
		pct += p
	}
	assert.InDelta(t, 100.0, pct, 0.05)

	// (4*2 + 3*2 + 2 + 1) / 6
	assert.Equal(t, 2.83, a.AverageRating)
	assert.True(t, a.AverageRating >= 1 && a.AverageRating <= 4)
}

func TestAggregate_UnknownServiceBucket(t *testing.T) {
	a := Aggregate(sampleVotes(), testLookups(), Options{Location: time.UTC})

	unknown, ok := a.VotesByService[domain.UnknownServiceID]
	require.True(t, ok)
	assert.Equal(t, domain.UnknownServiceName, unknown.ServiceName)
	assert.Equal(t, 1, unknown.Total)

	cafe := a.VotesByService["cafe"]
	assert.Equal(t, "Café da manhã", cafe.ServiceName)
	assert.Equal(t, 50, cafe.ExpectedMeals)
	assert.Equal(t, 3.5, cafe.AverageRating)
}

func TestAggregate_RecentOrdering(t *testing.T) {
	votes := []domain.Vote{
		vote("20", domain.RatingBom, "cafe", 0),
		vote("3", domain.RatingBom, "cafe", 0),
		vote("7", domain.RatingOtimo, "cafe", time.Hour),
	}

	a := Aggregate(votes, testLookups(), Options{Location: time.UTC})

	ids := []string{}
	for _, v := range a.RecentVotes {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"7", "3", "20"}, ids)
	for i := 1; i < len(a.RecentVotes); i++ {
		assert.False(t, a.RecentVotes[i].Timestamp.After(a.RecentVotes[i-1].Timestamp))
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	votes := sampleVotes()
	reversed := make([]domain.Vote, len(votes))
	for i, v := range votes {
		reversed[len(votes)-1-i] = v
	}

	first := Aggregate(votes, testLookups(), Options{Location: time.UTC})
	second := Aggregate(reversed, testLookups(), Options{Location: time.UTC})

	assert.Equal(t, first, second)
}

func TestAggregate_SkipsMalformedDuplicatesAndOutOfRange(t *testing.T) {
	rng := domain.DateRange{Start: base, End: base}
	votes := []domain.Vote{
		vote("1", domain.RatingOtimo, "cafe", 0),
		vote("1", domain.RatingRuim, "cafe", time.Minute),
		vote("2", domain.RatingBom, "cafe", 48*time.Hour),
		{ID: "3", Rating: domain.RatingBom},
		{ID: "", Rating: domain.RatingBom, Timestamp: base},
		{ID: "4", Rating: domain.RatingCategory(9), Timestamp: base},
	}

	a := Aggregate(votes, testLookups(), Options{Range: &rng, Location: time.UTC})

	assert.Equal(t, 1, a.TotalVotes)
	assert.Equal(t, 3, a.Skipped)
	assert.Equal(t, 1, a.CountsByRating[domain.RatingOtimo])
	assert.Equal(t, 0, a.CountsByRating[domain.RatingRuim])
}

func TestAggregate_LocalDayBucketing(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	votes := []domain.Vote{
		{ID: "1", ServiceTypeID: "cafe", Rating: domain.RatingBom, Timestamp: time.Date(2024, 5, 11, 1, 0, 0, 0, time.UTC)},
		{ID: "2", ServiceTypeID: "cafe", Rating: domain.RatingBom, Timestamp: time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)},
	}

	a := Aggregate(votes, testLookups(), Options{Location: loc})

	require.Len(t, a.VotesByDay, 1)
	assert.Equal(t, 10, a.VotesByDay[0].Date.Day())
	assert.Equal(t, 2, a.VotesByDay[0].Total)
}

func TestPercentages_RoundingClosure(t *testing.T) {
	counts := domain.RatingCounts{domain.RatingOtimo: 1, domain.RatingBom: 1, domain.RatingRegular: 1}
	percents := Percentages(counts, 3)

	sum := 0.0
	for _, p := range percents {
		sum += p
	}
	assert.True(t, math.Abs(sum-100) <= 0.05)
	assert.Equal(t, 33.33, percents[domain.RatingOtimo])
	assert.Equal(t, 0.0, percents[domain.RatingRuim])
}

func TestAggregate_EndToEndExample(t *testing.T) {
	day1 := base
	day2 := base.Add(24 * time.Hour)

	tests := []struct {
		name       string
		votes      []domain.Vote
		wantCounts domain.RatingCounts
		wantPct    domain.RatingPercents
		wantDays   []int
	}{
		{
			name: "Dois ótimos, um bom, um regular e um ruim em dois dias",
			votes: []domain.Vote{
				{ID: "1", CompanyID: "1", ServiceTypeID: "cafe", Rating: domain.RatingOtimo, Timestamp: day1},
				{ID: "2", CompanyID: "1", ServiceTypeID: "cafe", Rating: domain.RatingOtimo, Timestamp: day1.Add(time.Minute)},
				{ID: "3", CompanyID: "1", ServiceTypeID: "cafe", Rating: domain.RatingBom, Timestamp: day1.Add(2 * time.Minute)},
				{ID: "4", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingRegular, Timestamp: day2},
				{ID: "5", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingRuim, Timestamp: day2.Add(time.Minute)},
			},
			wantCounts: domain.RatingCounts{domain.RatingOtimo: 2, domain.RatingBom: 1, domain.RatingRegular: 1, domain.RatingRuim: 1},
			wantPct:    domain.RatingPercents{domain.RatingOtimo: 40, domain.RatingBom: 20, domain.RatingRegular: 20, domain.RatingRuim: 20},
			wantDays:   []int{3, 2},
		},
		{
			name: "Apenas ótimos mantém as outras categorias zeradas",
			votes: []domain.Vote{
				{ID: "1", CompanyID: "1", ServiceTypeID: "cafe", Rating: domain.RatingOtimo, Timestamp: day1},
				{ID: "2", CompanyID: "1", ServiceTypeID: "cafe", Rating: domain.RatingOtimo, Timestamp: day1.Add(time.Minute)},
			},
			wantCounts: domain.RatingCounts{domain.RatingOtimo: 2, domain.RatingBom: 0, domain.RatingRegular: 0, domain.RatingRuim: 0},
			wantPct:    domain.RatingPercents{domain.RatingOtimo: 100, domain.RatingBom: 0, domain.RatingRegular: 0, domain.RatingRuim: 0},
			wantDays:   []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Aggregate(tt.votes, testLookups(), Options{CompanyID: "1", Location: time.UTC})

			assert.Equal(t, len(tt.votes), a.TotalVotes)
			assert.Equal(t, tt.wantCounts, a.CountsByRating)
			assert.Equal(t, tt.wantPct, a.PercentByRating)

			require.Len(t, a.VotesByDay, len(tt.wantDays))
			for i, total := range tt.wantDays {
				assert.Equal(t, total, a.VotesByDay[i].Total)
			}

			for _, r := range domain.AllRatings {
				assert.Contains(t, a.CountsByRating, r)
				for _, stats := range a.VotesByService {
					assert.Contains(t, stats.CountsByRating, r)
				}
				for _, bucket := range a.VotesByDay {
					assert.Contains(t, bucket.CountsByRating, r)
				}
			}

			raw, err := json.Marshal(a.CountsByRating)
			require.NoError(t, err)
			for _, r := range domain.AllRatings {
				assert.Contains(t, string(raw), `"`+r.Label()+`"`)
			}
		})
	}
}
