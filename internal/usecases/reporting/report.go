package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

const DefaultTitle = "Relatório de Satisfação"

// Report é o conteúdo de uma exportação, independente do formato
type Report struct {
	Title         string
	Subtitle      string
	GeneratedAt   time.Time
	CompanyID     string
	CompanyName   string
	Range         domain.DateRange
	Ratings       []domain.RatingCategory
	Summary       []RatingShare
	TotalVotes    int
	AverageRating float64
	Daily         []DailyRow
	Negatives     []NegativeRow
	Services      []ServiceDeltaRow
	Alerts        []domain.Alert
}

type ReportOptions struct {
	Title    string
	Now      time.Time
	Location *time.Location
}

func BuildReport(a domain.Analytics, lookups *domain.Lookups, rng domain.DateRange, opts ReportOptions) Report {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Location != nil {
		opts.Now = opts.Now.In(opts.Location)
	}

	ratings := visibleRatings(a.CompanyID, lookups)
	shown := displayed(a, lookups, ratings)

	companyName := "Todas as empresas"
	if a.CompanyID != "" {
		companyName = lookups.CompanyName(a.CompanyID)
	}

	return Report{
		Title:         opts.Title,
		Subtitle:      fmt.Sprintf("%s - %s a %s", companyName, rng.Start.Format("02/01/2006"), rng.End.Format("02/01/2006")),
		GeneratedAt:   opts.Now,
		CompanyID:     a.CompanyID,
		CompanyName:   companyName,
		Range:         rng,
		Ratings:       ratings,
		Summary:       Shares(a.CountsByRating, ratings),
		TotalVotes:    visibleTotal(a.CountsByRating, ratings),
		AverageRating: shown.AverageRating,
		Daily:         DailyRows(a, ratings),
		Negatives:     NegativeRows(a, lookups, ratings, opts.Location),
		Services:      ServiceDeltaRows(a, lookups, ratings, rng),
		Alerts:        shown.Alerts,
	}
}

// Filename segue o padrão relatorio-<inicio>-<fim>.<formato>
func Filename(rng domain.DateRange, format domain.ReportFormat) string {
	return fmt.Sprintf("relatorio-%s-%s.%s", rng.StartDate(), rng.EndDate(), format)
}
