package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

// DailyRow é uma linha da tabela diária; Counts segue a ordem das categorias visíveis
type DailyRow struct {
	Date   time.Time
	Counts []int
	Total  int
}

type NegativeRow struct {
	Date    time.Time
	Company string
	Rating  string
	Service string
	Comment string
}

// ServiceDeltaRow compara refeições esperadas com votos recebidos.
// Delta = esperado - recebido; positivo indica votos faltando.
type ServiceDeltaRow struct {
	ServiceID   string
	ServiceName string
	Expected    int
	Actual      int
	Delta       int
}

func DailyRows(a domain.Analytics, ratings []domain.RatingCategory) []DailyRow {
	rows := make([]DailyRow, 0, len(a.VotesByDay))
	for _, bucket := range a.VotesByDay {
		row := DailyRow{Date: bucket.Date, Counts: make([]int, len(ratings))}
		for i, r := range ratings {
			row.Counts[i] = bucket.CountsByRating[r]
			row.Total += bucket.CountsByRating[r]
		}
		rows = append(rows, row)
	}
	return rows
}

// NegativeRows lista os votos Regular e Ruim, do mais recente para o mais antigo
func NegativeRows(a domain.Analytics, lookups *domain.Lookups, ratings []domain.RatingCategory, loc *time.Location) []NegativeRow {
	visible := make(map[domain.RatingCategory]bool, len(ratings))
	for _, r := range ratings {
		visible[r] = true
	}

	rows := []NegativeRow{}
	for _, v := range a.RecentVotes {
		if !v.Rating.Negative() || !visible[v.Rating] {
			continue
		}
		row := NegativeRow{
			Date:    v.Timestamp,
			Company: lookups.CompanyName(v.CompanyID),
			Rating:  v.Rating.Label(),
			Service: serviceName(v, lookups),
		}
		if loc != nil {
			row.Date = v.Timestamp.In(loc)
		}
		if v.HasComment() {
			row.Comment = strings.TrimSpace(*v.Comment)
		}
		rows = append(rows, row)
	}
	return rows
}

// ServiceDeltaRows usa a contagem de dias inclusiva do intervalo. Serviços cadastrados
// para a empresa aparecem mesmo sem votos.
func ServiceDeltaRows(a domain.Analytics, lookups *domain.Lookups, ratings []domain.RatingCategory, rng domain.DateRange) []ServiceDeltaRow {
	days := rng.Days()
	byID := make(map[string]*ServiceDeltaRow)

	if a.CompanyID != "" && lookups != nil {
		for id, info := range lookups.Services {
			if info.CompanyID != a.CompanyID {
				continue
			}
			byID[id] = &ServiceDeltaRow{
				ServiceID:   id,
				ServiceName: info.Name,
				Expected:    info.ExpectedMealCount * days,
			}
		}
	}

	for id, stats := range a.VotesByService {
		row, ok := byID[id]
		if !ok {
			row = &ServiceDeltaRow{
				ServiceID:   id,
				ServiceName: stats.ServiceName,
				Expected:    stats.ExpectedMeals * days,
			}
			byID[id] = row
		}
		row.Actual = visibleTotal(stats.CountsByRating, ratings)
	}

	rows := make([]ServiceDeltaRow, 0, len(byID))
	for _, row := range byID {
		row.Delta = row.Expected - row.Actual
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ServiceName != rows[j].ServiceName {
			return rows[i].ServiceName < rows[j].ServiceName
		}
		return rows[i].ServiceID < rows[j].ServiceID
	})
	return rows
}

func sortedServices(a domain.Analytics) []domain.ServiceStats {
	services := make([]domain.ServiceStats, 0, len(a.VotesByService))
	for _, stats := range a.VotesByService {
		services = append(services, stats)
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].ServiceName != services[j].ServiceName {
			return services[i].ServiceName < services[j].ServiceName
		}
		return services[i].ServiceID < services[j].ServiceID
	})
	return services
}
