package domain

import "time"

const (
	// UnknownServiceID agrupa votos cujo serviço não existe nos lookups
	UnknownServiceID   = "desconhecido"
	UnknownServiceName = "Serviço desconhecido"
)

type RatingCounts map[RatingCategory]int

type RatingPercents map[RatingCategory]float64

// NewRatingCounts devolve o mapa com as quatro categorias presentes, todas em zero
func NewRatingCounts() RatingCounts {
	counts := make(RatingCounts, len(AllRatings))
	for _, r := range AllRatings {
		counts[r] = 0
	}
	return counts
}

func (c RatingCounts) Clone() RatingCounts {
	out := make(RatingCounts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ServiceStats é o recorte das avaliações de um único serviço
type ServiceStats struct {
	ServiceID       string         `json:"service_id"`
	ServiceName     string         `json:"service_name"`
	ExpectedMeals   int            `json:"expected_meals"`
	Total           int            `json:"total"`
	CountsByRating  RatingCounts   `json:"counts_by_rating"`
	PercentByRating RatingPercents `json:"percent_by_rating"`
	AverageRating   float64        `json:"average_rating"`
	Votes           []Vote         `json:"votes"`
}

// DayBucket agrupa votos de um dia local (meia-noite no fuso configurado)
type DayBucket struct {
	Date           time.Time    `json:"date"`
	CountsByRating RatingCounts `json:"counts_by_rating"`
	Total          int          `json:"total"`
}

// Analytics é o resultado derivado de um conjunto de votos
type Analytics struct {
	CompanyID       string                  `json:"company_id,omitempty"`
	Range           *DateRange              `json:"range,omitempty"`
	TotalVotes      int                     `json:"total_votes"`
	CountsByRating  RatingCounts            `json:"counts_by_rating"`
	PercentByRating RatingPercents          `json:"percent_by_rating"`
	AverageRating   float64                 `json:"average_rating"`
	VotesByService  map[string]ServiceStats `json:"votes_by_service"`
	VotesByDay      []DayBucket             `json:"votes_by_day"`
	RecentVotes     []Vote                  `json:"recent_votes"`
	Alerts          []Alert                 `json:"alerts"`
	Skipped         int                     `json:"skipped"`
}

// NewAnalytics cria o valor vazio com todas as coleções inicializadas
func NewAnalytics(companyID string, rng *DateRange) Analytics {
	return Analytics{
		CompanyID:       companyID,
		Range:           rng,
		CountsByRating:  NewRatingCounts(),
		PercentByRating: RatingPercents{},
		VotesByService:  map[string]ServiceStats{},
		VotesByDay:      []DayBucket{},
		RecentVotes:     []Vote{},
		Alerts:          []Alert{},
	}
}

// Clone copia as coleções para que o resultado possa ser alterado sem afetar o original
func (a Analytics) Clone() Analytics {
	out := a
	out.CountsByRating = a.CountsByRating.Clone()
	out.PercentByRating = make(RatingPercents, len(a.PercentByRating))
	for k, v := range a.PercentByRating {
		out.PercentByRating[k] = v
	}
	out.VotesByService = make(map[string]ServiceStats, len(a.VotesByService))
	for k, s := range a.VotesByService {
		s.CountsByRating = s.CountsByRating.Clone()
		percents := make(RatingPercents, len(s.PercentByRating))
		for r, p := range s.PercentByRating {
			percents[r] = p
		}
		s.PercentByRating = percents
		s.Votes = append([]Vote(nil), s.Votes...)
		out.VotesByService[k] = s
	}
	out.VotesByDay = make([]DayBucket, len(a.VotesByDay))
	for i, b := range a.VotesByDay {
		b.CountsByRating = b.CountsByRating.Clone()
		out.VotesByDay[i] = b
	}
	out.RecentVotes = append(make([]Vote, 0, len(a.RecentVotes)+1), a.RecentVotes...)
	out.Alerts = append(make([]Alert, 0, len(a.Alerts)), a.Alerts...)
	return out
}

// AnalyticsSnapshot é o agregado pronto que o backend envia pelo canal de push
type AnalyticsSnapshot struct {
	CompanyID      string       `json:"company_id"`
	TotalVotes     int          `json:"total_votes"`
	CountsByRating RatingCounts `json:"counts_by_rating"`
	AverageRating  float64      `json:"average_rating"`
}

// Matches compara o snapshot do backend com a visão local
func (s AnalyticsSnapshot) Matches(a Analytics) bool {
	if s.TotalVotes != a.TotalVotes {
		return false
	}
	for _, r := range AllRatings {
		if s.CountsByRating[r] != a.CountsByRating[r] {
			return false
		}
	}
	return true
}
