// Package aggregating transforma votos brutos nas estatísticas exibidas pelo painel
package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/utils"
)

// Options controla o recorte da agregação
type Options struct {
	CompanyID string
	Range     *domain.DateRange
	Location  *time.Location
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// Aggregate calcula as estatísticas de um conjunto de votos. É uma função pura:
// votos repetidos contam uma vez, votos fora do intervalo são ignorados e registros
// malformados são descartados e contabilizados em Skipped.
func Aggregate(votes []domain.Vote, lookups *domain.Lookups, opts Options) domain.Analytics {
	loc := opts.location()
	a := domain.NewAnalytics(opts.CompanyID, opts.Range)

	seen := make(map[string]struct{}, len(votes))
	accepted := make([]domain.Vote, 0, len(votes))

	for _, v := range votes {
		if err := v.Validate(); err != nil {
			log.L.WithError(err).Warn("aggregator: voto malformado descartado")
			a.Skipped++
			continue
		}
		if !InRange(v, opts.Range, loc) {
			continue
		}
		if _, dup := seen[v.ID]; dup {
			log.L.WithField("vote_id", v.ID).Debug("aggregator: voto duplicado ignorado")
			continue
		}
		seen[v.ID] = struct{}{}
		accepted = append(accepted, v)
	}

	domain.SortRecent(accepted)

	days := make(map[time.Time]*domain.DayBucket)
	for _, v := range accepted {
		a.TotalVotes++
		a.CountsByRating[v.Rating]++

		key := ServiceKey(v, lookups)
		stats, ok := a.VotesByService[key]
		if !ok {
			stats = NewServiceStats(key, lookups)
		}
		stats.Votes = append(stats.Votes, v)
		stats.Total++
		stats.CountsByRating[v.Rating]++
		a.VotesByService[key] = stats

		day := domain.DayOf(v.Timestamp, loc)
		bucket, ok := days[day]
		if !ok {
			bucket = &domain.DayBucket{Date: day, CountsByRating: domain.NewRatingCounts()}
			days[day] = bucket
		}
		bucket.Total++
		bucket.CountsByRating[v.Rating]++
	}

	for _, bucket := range days {
		a.VotesByDay = append(a.VotesByDay, *bucket)
	}
	sort.Slice(a.VotesByDay, func(i, j int) bool {
		return a.VotesByDay[i].Date.Before(a.VotesByDay[j].Date)
	})

	for key, stats := range a.VotesByService {
		a.VotesByService[key] = FinalizeService(stats)
	}

	a.RecentVotes = accepted
	a.PercentByRating = Percentages(a.CountsByRating, a.TotalVotes)
	a.AverageRating = AverageRating(a.CountsByRating, a.TotalVotes)
	a.Alerts = DetectAlerts(a)

	return a
}

// InRange aplica o filtro de intervalo quando existir
func InRange(v domain.Vote, rng *domain.DateRange, loc *time.Location) bool {
	if rng == nil {
		return true
	}
	return rng.Contains(v.Timestamp, loc)
}

// ServiceKey escolhe o grupo do voto; serviços ausentes dos lookups vão para o grupo desconhecido
func ServiceKey(v domain.Vote, lookups *domain.Lookups) string {
	if _, ok := lookups.Service(v.ServiceTypeID); ok {
		return v.ServiceTypeID
	}
	return domain.UnknownServiceID
}

func NewServiceStats(key string, lookups *domain.Lookups) domain.ServiceStats {
	stats := domain.ServiceStats{
		ServiceID:       key,
		ServiceName:     domain.UnknownServiceName,
		CountsByRating:  domain.NewRatingCounts(),
		PercentByRating: domain.RatingPercents{},
		Votes:           []domain.Vote{},
	}
	if info, ok := lookups.Service(key); ok {
		stats.ServiceName = info.Name
		stats.ExpectedMeals = info.ExpectedMealCount
	}
	return stats
}

// FinalizeService recalcula os campos derivados de um grupo
func FinalizeService(stats domain.ServiceStats) domain.ServiceStats {
	stats.PercentByRating = Percentages(stats.CountsByRating, stats.Total)
	stats.AverageRating = AverageRating(stats.CountsByRating, stats.Total)
	return stats
}

// Percentages calcula o percentual de cada categoria; com total zero tudo é zero
func Percentages(counts domain.RatingCounts, total int) domain.RatingPercents {
	percents := make(domain.RatingPercents, len(domain.AllRatings))
	for _, r := range domain.AllRatings {
		if total == 0 {
			percents[r] = 0
			continue
		}
		percents[r] = utils.RoundWithTwoDecimalPlace(float64(counts[r]) * 100 / float64(total))
	}
	return percents
}

// AverageRating é a média ponderada pelos pesos das categorias, arredondada para exibição
func AverageRating(counts domain.RatingCounts, total int) float64 {
	return utils.RoundWithTwoDecimalPlace(Mean(counts, total))
}

// Mean é a média ponderada sem arredondamento; os limites de alerta comparam contra ela
func Mean(counts domain.RatingCounts, total int) float64 {
	if total == 0 {
		return 0
	}
	sum := 0
	for r, n := range counts {
		sum += r.Weight() * n
	}
	return float64(sum) / float64(total)
}
