package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/aggregating"
)

var brt = time.FixedZone("BRT", -3*3600)

var reportRange = domain.DateRange{
	Start: time.Date(2024, 5, 1, 0, 0, 0, 0, brt),
	End:   time.Date(2024, 5, 7, 0, 0, 0, 0, brt),
}

func lookupsWithButtons(buttons int) *domain.Lookups {
	return domain.NewLookups(
		[]domain.Company{{ID: "1", Name: "Restaurante Central", RatingButtonCount: buttons}},
		[]domain.ServiceInfo{
			{ID: "almoco", CompanyID: "1", Name: "Almoço", ExpectedMealCount: 10},
			{ID: "jantar", CompanyID: "1", Name: "Jantar", ExpectedMealCount: 5},
			{ID: "outro", CompanyID: "2", Name: "Outro", ExpectedMealCount: 50},
		},
		time.Now(),
	)
}

func comment(s string) *string {
	return &s
}

func sampleVotes() []domain.Vote {
	day1 := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 3, 15, 0, 0, 0, time.UTC)
	return []domain.Vote{
		{ID: "1", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingOtimo, Timestamp: day1},
		{ID: "2", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingOtimo, Timestamp: day1.Add(time.Minute)},
		{ID: "3", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingBom, Timestamp: day1.Add(2 * time.Minute)},
		{ID: "4", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingRegular, Timestamp: day2, Comment: comment("Comida fria")},
		{ID: "5", CompanyID: "1", ServiceTypeID: "almoco", Rating: domain.RatingRuim, Timestamp: day2.Add(time.Minute), Comment: comment("  Demorou muito  ")},
	}
}

func sampleAnalytics(t *testing.T, lookups *domain.Lookups) domain.Analytics {
	t.Helper()
	rng := reportRange
	return aggregating.Aggregate(sampleVotes(), lookups, aggregating.Options{CompanyID: "1", Range: &rng, Location: brt})
}

func labels(shares []RatingShare) []string {
	out := make([]string, 0, len(shares))
	for _, s := range shares {
		out = append(out, s.Label)
	}
	return out
}

func TestCharts_ThreeButtonCompanyHidesRuim(t *testing.T) {
	lookups := lookupsWithButtons(3)
	analytics := sampleAnalytics(t, lookups)

	set := Charts(analytics, lookups, PresentOptions{RecentLimit: 10, Location: brt})

	assert.Equal(t, []domain.RatingCategory{domain.RatingOtimo, domain.RatingBom, domain.RatingRegular}, set.Ratings)
	assert.Equal(t, []string{"Ótimo", "Bom", "Regular"}, labels(set.Distribution))
	assert.Equal(t, 4, set.DisplayTotal)
	assert.Equal(t, 50.0, set.Distribution[0].Percent)
	assert.Equal(t, 25.0, set.Distribution[2].Percent)

	for _, point := range set.Daily {
		assert.NotContains(t, point.Values, "Ruim")
	}
	assert.Equal(t, 1, set.Daily[1].Total)

	for _, service := range set.Services {
		assert.NotContains(t, labels(service.Shares), "Ruim")
	}
	for _, item := range set.Recent {
		assert.NotEqual(t, "Ruim", item.Rating)
	}
	assert.Len(t, set.Recent, 4)

	// o agregado continua com a contagem real
	assert.Equal(t, 1, analytics.CountsByRating[domain.RatingRuim])
	assert.Equal(t, 5, analytics.TotalVotes)
}

func TestCharts_FourButtonCompanyShowsEverything(t *testing.T) {
	lookups := lookupsWithButtons(4)
	analytics := sampleAnalytics(t, lookups)

	set := Charts(analytics, lookups, PresentOptions{RecentLimit: 2})

	assert.Equal(t, []string{"Ótimo", "Bom", "Regular", "Ruim"}, labels(set.Distribution))
	assert.Equal(t, 5, set.DisplayTotal)
	assert.Equal(t, []float64{40, 20, 20, 20}, []float64{
		set.Distribution[0].Percent, set.Distribution[1].Percent, set.Distribution[2].Percent, set.Distribution[3].Percent,
	})
	require.Len(t, set.Recent, 2)
	assert.Equal(t, "5", set.Recent[0].ID)
	assert.Equal(t, "Demorou muito", set.Recent[0].Comment)
	assert.Equal(t, "Restaurante Central", set.CompanyName)
	require.Len(t, set.Daily, 2)
	assert.Equal(t, "2024-05-02", set.Daily[0].Date)
	assert.Equal(t, 2, set.Daily[0].Values["Ótimo"])
}

func TestCharts_EmptyAnalytics(t *testing.T) {
	set := Charts(domain.NewAnalytics("9", nil), nil, PresentOptions{})

	assert.Equal(t, 0, set.DisplayTotal)
	assert.Len(t, set.Distribution, 4)
	for _, share := range set.Distribution {
		assert.Zero(t, share.Percent)
	}
	assert.Empty(t, set.Daily)
	assert.Empty(t, set.Recent)
}

func TestNegativeRows(t *testing.T) {
	lookups := lookupsWithButtons(4)
	analytics := sampleAnalytics(t, lookups)

	rows := NegativeRows(analytics, lookups, domain.AllRatings, brt)

	require.Len(t, rows, 2)
	assert.Equal(t, "Ruim", rows[0].Rating)
	assert.Equal(t, "Demorou muito", rows[0].Comment)
	assert.Equal(t, "Regular", rows[1].Rating)
	assert.Equal(t, "Almoço", rows[1].Service)
	assert.Equal(t, "Restaurante Central", rows[1].Company)
	assert.Equal(t, 12, rows[1].Date.Hour())

	filtered := NegativeRows(analytics, lookups, domain.VisibleRatings(&domain.Company{RatingButtonCount: 3}), brt)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Regular", filtered[0].Rating)
}

func TestServiceDeltaRows(t *testing.T) {
	lookups := lookupsWithButtons(4)
	analytics := sampleAnalytics(t, lookups)

	rows := ServiceDeltaRows(analytics, lookups, domain.AllRatings, reportRange)

	require.Len(t, rows, 2)
	assert.Equal(t, ServiceDeltaRow{ServiceID: "almoco", ServiceName: "Almoço", Expected: 70, Actual: 5, Delta: 65}, rows[0])
	assert.Equal(t, ServiceDeltaRow{ServiceID: "jantar", ServiceName: "Jantar", Expected: 35, Actual: 0, Delta: 35}, rows[1])

	threeButtons := ServiceDeltaRows(analytics, lookups, domain.VisibleRatings(&domain.Company{RatingButtonCount: 3}), reportRange)
	assert.Equal(t, 4, threeButtons[0].Actual)
}

func TestBuildReport(t *testing.T) {
	lookups := lookupsWithButtons(3)
	analytics := sampleAnalytics(t, lookups)
	now := time.Date(2024, 5, 8, 13, 30, 0, 0, time.UTC)

	report := BuildReport(analytics, lookups, reportRange, ReportOptions{Now: now, Location: brt})

	assert.Equal(t, DefaultTitle, report.Title)
	assert.Equal(t, "Restaurante Central - 01/05/2024 a 07/05/2024", report.Subtitle)
	assert.Equal(t, 10, report.GeneratedAt.Hour())
	assert.Equal(t, 4, report.TotalVotes)
	assert.Len(t, report.Summary, 3)
	for _, row := range report.Daily {
		assert.Len(t, row.Counts, 3)
	}
	assert.Len(t, report.Negatives, 1)
	assert.Equal(t, 3.25, report.AverageRating)
	for _, alert := range report.Alerts {
		assert.NotContains(t, alert.Message, "Ruim")
	}
	assert.Equal(t, "relatorio-2024-05-01-2024-05-07.pdf", Filename(reportRange, domain.ReportFormatPDF))
}

func TestCharts_ThreeButtonAlertsAndAverages(t *testing.T) {
	tests := []struct {
		name        string
		buttons     int
		wantAverage float64
		wantKinds   []domain.AlertKind
		wantRuim    bool
	}{
		{
			name:        "Totem de 4 botões usa todas as categorias",
			buttons:     4,
			wantAverage: 2.8,
			wantKinds:   []domain.AlertKind{domain.AlertLowAverage, domain.AlertLowServiceAverage, domain.AlertDecliningTrend},
			wantRuim:    true,
		},
		{
			name:        "Totem de 3 botões ignora votos Ruim em médias e alertas",
			buttons:     3,
			wantAverage: 3.25,
			wantKinds:   []domain.AlertKind{domain.AlertDecliningTrend},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookups := lookupsWithButtons(tt.buttons)
			analytics := sampleAnalytics(t, lookups)

			set := Charts(analytics, lookups, PresentOptions{RecentLimit: 10, Location: brt})

			assert.Equal(t, tt.wantAverage, set.AverageRating)
			require.Len(t, set.Services, 1)
			assert.Equal(t, tt.wantAverage, set.Services[0].AverageRating)

			kinds := make([]domain.AlertKind, 0, len(set.Alerts))
			mentionsRuim := false
			for _, alert := range set.Alerts {
				kinds = append(kinds, alert.Kind)
				if strings.Contains(alert.Message, "Ruim") {
					mentionsRuim = true
				}
			}
			assert.Equal(t, tt.wantKinds, kinds)
			assert.Equal(t, tt.wantRuim, mentionsRuim)
		})
	}
}
