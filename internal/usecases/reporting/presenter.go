// Package reporting projeta o Analytics em séries de gráfico, tabelas e documentos exportáveis.
//
// Todo recorte passa pela mesma regra de exibição: empresas com totem de 3 botões não
// mostram a categoria "Ruim" em lugar nenhum, nem nos totais usados para os percentuais
// exibidos. O Analytics de origem continua com as contagens reais.
package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/aggregating"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/utils"
)

// RatingShare é uma fatia da distribuição, já com rótulo e cor para o gráfico
type RatingShare struct {
	Rating  domain.RatingCategory `json:"rating"`
	Label   string                `json:"label"`
	Color   string                `json:"color"`
	Count   int                   `json:"count"`
	Percent float64               `json:"percent"`
}

// DailyPoint é um ponto da série diária empilhada; Values é indexado pelo rótulo da categoria
type DailyPoint struct {
	Date   string         `json:"date"`
	Values map[string]int `json:"values"`
	Total  int            `json:"total"`
}

type ServiceBreakdown struct {
	ServiceID     string        `json:"service_id"`
	ServiceName   string        `json:"service_name"`
	Total         int           `json:"total"`
	AverageRating float64       `json:"average_rating"`
	Shares        []RatingShare `json:"shares"`
}

type RecentItem struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Rating      string    `json:"rating"`
	Color       string    `json:"color"`
	ServiceName string    `json:"service_name"`
	CompanyName string    `json:"company_name"`
	Comment     string    `json:"comment,omitempty"`
}

// ChartSet reúne tudo o que o painel precisa para desenhar uma empresa
type ChartSet struct {
	CompanyID     string                  `json:"company_id,omitempty"`
	CompanyName   string                  `json:"company_name,omitempty"`
	Ratings       []domain.RatingCategory `json:"ratings"`
	DisplayTotal  int                     `json:"display_total"`
	AverageRating float64                 `json:"average_rating"`
	Distribution  []RatingShare           `json:"distribution"`
	Daily         []DailyPoint            `json:"daily"`
	Services      []ServiceBreakdown      `json:"services"`
	Recent        []RecentItem            `json:"recent"`
	Alerts        []domain.Alert          `json:"alerts"`
}

type PresentOptions struct {
	RecentLimit int
	Location    *time.Location
}

// Charts monta as projeções do painel aplicando o filtro de exibição da empresa
func Charts(a domain.Analytics, lookups *domain.Lookups, opts PresentOptions) ChartSet {
	ratings := visibleRatings(a.CompanyID, lookups)
	shown := displayed(a, lookups, ratings)

	set := ChartSet{
		CompanyID:     a.CompanyID,
		Ratings:       ratings,
		AverageRating: shown.AverageRating,
		Distribution:  Shares(a.CountsByRating, ratings),
		Daily:         make([]DailyPoint, 0, len(a.VotesByDay)),
		Services:      make([]ServiceBreakdown, 0, len(a.VotesByService)),
		Recent:        []RecentItem{},
		Alerts:        shown.Alerts,
	}
	if a.CompanyID != "" {
		set.CompanyName = lookups.CompanyName(a.CompanyID)
	}
	set.DisplayTotal = visibleTotal(a.CountsByRating, ratings)

	for _, row := range DailyRows(a, ratings) {
		point := DailyPoint{
			Date:   row.Date.Format(domain.DateLayout),
			Values: make(map[string]int, len(ratings)),
			Total:  row.Total,
		}
		for i, r := range ratings {
			point.Values[r.Label()] = row.Counts[i]
		}
		set.Daily = append(set.Daily, point)
	}

	for _, stats := range sortedServices(a) {
		set.Services = append(set.Services, ServiceBreakdown{
			ServiceID:     stats.ServiceID,
			ServiceName:   stats.ServiceName,
			Total:         visibleTotal(stats.CountsByRating, ratings),
			AverageRating: shown.VotesByService[stats.ServiceID].AverageRating,
			Shares:        Shares(stats.CountsByRating, ratings),
		})
	}

	visible := make(map[domain.RatingCategory]bool, len(ratings))
	for _, r := range ratings {
		visible[r] = true
	}
	for _, v := range a.RecentVotes {
		if opts.RecentLimit > 0 && len(set.Recent) >= opts.RecentLimit {
			break
		}
		if !visible[v.Rating] {
			continue
		}
		item := RecentItem{
			ID:          v.ID,
			Timestamp:   v.Timestamp,
			Rating:      v.Rating.Label(),
			Color:       v.Rating.Color(),
			ServiceName: serviceName(v, lookups),
			CompanyName: lookups.CompanyName(v.CompanyID),
		}
		if opts.Location != nil {
			item.Timestamp = v.Timestamp.In(opts.Location)
		}
		if v.HasComment() {
			item.Comment = strings.TrimSpace(*v.Comment)
		}
		set.Recent = append(set.Recent, item)
	}

	return set
}

// Shares calcula a distribuição exibida; o total é recalculado só com as categorias visíveis
func Shares(counts domain.RatingCounts, ratings []domain.RatingCategory) []RatingShare {
	total := visibleTotal(counts, ratings)
	shares := make([]RatingShare, 0, len(ratings))
	for _, r := range ratings {
		share := RatingShare{
			Rating: r,
			Label:  r.Label(),
			Color:  r.Color(),
			Count:  counts[r],
		}
		if total > 0 {
			share.Percent = utils.RoundWithTwoDecimalPlace(float64(counts[r]) * 100 / float64(total))
		}
		shares = append(shares, share)
	}
	return shares
}

// displayed reagrega só os votos das categorias visíveis, para que médias e alertas
// exibidos não considerem a categoria oculta. Com as quatro categorias visíveis devolve a própria Analytics.
func displayed(a domain.Analytics, lookups *domain.Lookups, ratings []domain.RatingCategory) domain.Analytics {
	if len(ratings) == len(domain.AllRatings) {
		return a
	}

	visible := make(map[domain.RatingCategory]bool, len(ratings))
	for _, r := range ratings {
		visible[r] = true
	}
	votes := make([]domain.Vote, 0, len(a.RecentVotes))
	for _, v := range a.RecentVotes {
		if visible[v.Rating] {
			votes = append(votes, v)
		}
	}

	// os votos já passaram pelo filtro de intervalo na agregação original
	return aggregating.Aggregate(votes, lookups, aggregating.Options{CompanyID: a.CompanyID})
}

// visibleRatings aplica a regra do totem de 3 botões. A visão de todas as empresas
// mistura configurações e mostra as quatro categorias.
func visibleRatings(companyID string, lookups *domain.Lookups) []domain.RatingCategory {
	if companyID == "" {
		return domain.AllRatings
	}
	company, ok := lookups.Company(companyID)
	if !ok {
		return domain.AllRatings
	}
	return domain.VisibleRatings(&company)
}

func visibleTotal(counts domain.RatingCounts, ratings []domain.RatingCategory) int {
	total := 0
	for _, r := range ratings {
		total += counts[r]
	}
	return total
}

func serviceName(v domain.Vote, lookups *domain.Lookups) string {
	if info, ok := lookups.Service(v.ServiceTypeID); ok {
		return info.Name
	}
	if v.ServiceTypeName != "" {
		return v.ServiceTypeName
	}
	return domain.UnknownServiceName
}
