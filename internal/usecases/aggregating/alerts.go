package aggregating

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

// DetectAlerts gera os alertas de satisfação a partir de uma Analytics já calculada.
// A ordem é estável: média geral, serviços por id e tendência.
func DetectAlerts(a domain.Analytics) []domain.Alert {
	alerts := []domain.Alert{}
	if a.TotalVotes == 0 {
		return alerts
	}

	if mean := Mean(a.CountsByRating, a.TotalVotes); mean < domain.AlertThreshold {
		value := belowTwoDecimals(mean)
		alerts = append(alerts, domain.Alert{
			Kind:     domain.AlertLowAverage,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Média geral de satisfação baixa: %.2f", value),
			Value:    value,
		})
	}

	keys := make([]string, 0, len(a.VotesByService))
	for key := range a.VotesByService {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		stats := a.VotesByService[key]
		mean := Mean(stats.CountsByRating, stats.Total)
		if stats.Total == 0 || mean >= domain.AlertThreshold {
			continue
		}
		value := belowTwoDecimals(mean)
		alerts = append(alerts, domain.Alert{
			Kind:      domain.AlertLowServiceAverage,
			Severity:  domain.SeverityWarning,
			ServiceID: key,
			Message:   fmt.Sprintf("Serviço %s com média baixa: %.2f", stats.ServiceName, value),
			Value:     value,
		})
	}

	if len(a.RecentVotes) >= 2 {
		latest := a.RecentVotes[0].Rating.Weight()
		previous := a.RecentVotes[1].Rating.Weight()
		if latest < previous && float64(latest) < domain.AlertThreshold {
			alerts = append(alerts, domain.Alert{
				Kind:     domain.AlertDecliningTrend,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("Tendência de queda: última avaliação %s após %s", a.RecentVotes[0].Rating.Label(), a.RecentVotes[1].Rating.Label()),
				Value:    float64(latest),
			})
		}
	}

	return alerts
}

// belowTwoDecimals trunca em duas casas para que um alerta nunca exiba o próprio limite (2.996 vira 2.99)
func belowTwoDecimals(v float64) float64 {
	return math.Floor(v*100) / 100
}
