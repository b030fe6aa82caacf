// Package monitoring mantém as visões ao vivo do painel de satisfação
package monitoring

import (
	"sort"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/aggregating"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
)

// Apply incorpora um voto novo sem reagregar tudo. O resultado é sempre igual ao de
// aggregating.Aggregate sobre os votos já contabilizados mais o novo.
// O valor recebido não é alterado.
func Apply(a domain.Analytics, lookups *domain.Lookups, v domain.Vote, loc *time.Location) domain.Analytics {
	if loc == nil {
		loc = time.Local
	}

	if err := v.Validate(); err != nil {
		log.L.WithError(err).Warn("monitor: voto malformado descartado")
		out := a.Clone()
		out.Skipped++
		return out
	}
	if !aggregating.InRange(v, a.Range, loc) {
		return a
	}
	for _, existing := range a.RecentVotes {
		if existing.ID == v.ID {
			return a
		}
	}

	out := a.Clone()

	out.RecentVotes = insertVote(out.RecentVotes, v)
	out.TotalVotes++
	out.CountsByRating[v.Rating]++

	key := aggregating.ServiceKey(v, lookups)
	stats, ok := out.VotesByService[key]
	if !ok {
		stats = aggregating.NewServiceStats(key, lookups)
	}
	stats.Votes = insertVote(stats.Votes, v)
	stats.Total++
	stats.CountsByRating[v.Rating]++
	out.VotesByService[key] = aggregating.FinalizeService(stats)

	day := domain.DayOf(v.Timestamp, loc)
	i := sort.Search(len(out.VotesByDay), func(i int) bool {
		return !out.VotesByDay[i].Date.Before(day)
	})
	if i == len(out.VotesByDay) || !out.VotesByDay[i].Date.Equal(day) {
		out.VotesByDay = append(out.VotesByDay, domain.DayBucket{})
		copy(out.VotesByDay[i+1:], out.VotesByDay[i:])
		out.VotesByDay[i] = domain.DayBucket{Date: day, CountsByRating: domain.NewRatingCounts()}
	}
	out.VotesByDay[i].Total++
	out.VotesByDay[i].CountsByRating[v.Rating]++

	out.PercentByRating = aggregating.Percentages(out.CountsByRating, out.TotalVotes)
	out.AverageRating = aggregating.AverageRating(out.CountsByRating, out.TotalVotes)
	out.Alerts = aggregating.DetectAlerts(out)

	return out
}

// insertVote mantém a ordem de RecentLess; o slice recebido já é uma cópia
func insertVote(votes []domain.Vote, v domain.Vote) []domain.Vote {
	i := sort.Search(len(votes), func(i int) bool {
		return domain.RecentLess(v, votes[i])
	})
	votes = append(votes, domain.Vote{})
	copy(votes[i+1:], votes[i:])
	votes[i] = v
	return votes
}
