package aggregating

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

func alertKinds(alerts []domain.Alert) []domain.AlertKind {
	kinds := make([]domain.AlertKind, 0, len(alerts))
	for _, a := range alerts {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}

func TestDetectAlerts(t *testing.T) {
	tests := []struct {
		name     string
		votes    []domain.Vote
		expected []domain.AlertKind
	}{
		{
			name: "Média alta não gera alertas",
			votes: []domain.Vote{
				vote("1", domain.RatingOtimo, "cafe", 0),
				vote("2", domain.RatingBom, "cafe", time.Minute),
			},
			expected: []domain.AlertKind{},
		},
		{
			name: "Média geral e do serviço abaixo de 3",
			votes: []domain.Vote{
				vote("1", domain.RatingRegular, "cafe", 0),
				vote("2", domain.RatingRegular, "cafe", time.Minute),
			},
			expected: []domain.AlertKind{domain.AlertLowAverage, domain.AlertLowServiceAverage},
		},
		{
			name: "Queda na última avaliação",
			votes: []domain.Vote{
				vote("1", domain.RatingOtimo, "cafe", 0),
				vote("2", domain.RatingOtimo, "cafe", time.Minute),
				vote("3", domain.RatingOtimo, "almoco", 2*time.Minute),
				vote("4", domain.RatingRegular, "almoco", 3*time.Minute),
			},
			expected: []domain.AlertKind{domain.AlertDecliningTrend},
		},
		{
			name: "Queda para Bom não é tendência negativa",
			votes: []domain.Vote{
				vote("1", domain.RatingOtimo, "cafe", 0),
				vote("2", domain.RatingBom, "cafe", time.Minute),
			},
			expected: []domain.AlertKind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Aggregate(tt.votes, testLookups(), Options{Location: time.UTC})
			assert.Equal(t, tt.expected, alertKinds(a.Alerts))
		})
	}
}

func TestDetectAlerts_Severity(t *testing.T) {
	a := Aggregate([]domain.Vote{
		vote("1", domain.RatingBom, "cafe", 0),
		vote("2", domain.RatingRuim, "cafe", time.Minute),
	}, testLookups(), Options{Location: time.UTC})

	require.NotEmpty(t, a.Alerts)
	last := a.Alerts[len(a.Alerts)-1]
	assert.Equal(t, domain.AlertDecliningTrend, last.Kind)
	assert.Equal(t, domain.SeverityError, last.Severity)
	assert.Equal(t, 1.0, last.Value)
}

func TestDetectAlerts_UsesUnroundedMean(t *testing.T) {
	votes := []domain.Vote{vote("regular", domain.RatingRegular, "cafe", 0)}
	for i := 0; i < 249; i++ {
		votes = append(votes, vote("bom-"+strconv.Itoa(i), domain.RatingBom, "cafe", time.Duration(i+1)*time.Minute))
	}

	a := Aggregate(votes, testLookups(), Options{Location: time.UTC})

	// 749 / 250 = 2.996, exibido como 3.00
	assert.Equal(t, 3.0, a.AverageRating)
	assert.InDelta(t, 2.996, Mean(a.CountsByRating, a.TotalVotes), 1e-9)
	assert.Equal(t, []domain.AlertKind{domain.AlertLowAverage, domain.AlertLowServiceAverage}, alertKinds(a.Alerts))
	assert.Equal(t, 2.99, a.Alerts[0].Value)
	assert.Contains(t, a.Alerts[0].Message, "2.99")
}
