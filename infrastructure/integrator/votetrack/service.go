package votetrack

import (
	"context"
	"time"

	"github.com/pkg/errors"
	votetrackdomain "github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/domain"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/votetrackclient"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
)

// VoteTrackIntegrator entrega os dados do backend já no modelo de domínio
type VoteTrackIntegrator interface {
	GetVotes(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) ([]domain.Vote, error)
	GetCompanies(ctx context.Context, session *domain.SessionContext) ([]domain.Company, error)
	GetServices(ctx context.Context, session *domain.SessionContext) ([]domain.ServiceInfo, error)
	GetAnalyticsSnapshot(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*domain.AnalyticsSnapshot, error)
}

type VoteTrackService struct {
	Client votetrackclient.Client
	now    func() time.Time
}

func New(client votetrackclient.Client) VoteTrackIntegrator {
	return &VoteTrackService{
		Client: client,
		now:    time.Now,
	}
}

func (s *VoteTrackService) GetVotes(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) ([]domain.Vote, error) {
	if err := s.checkSession(session, "list_votes"); err != nil {
		return nil, err
	}

	resp, err := s.Client.ListVotes(ctx, session.Token, votetrackclient.VotesParams{
		CompanyID: companyID,
		StartDate: rng.StartDate(),
		EndDate:   rng.EndDate(),
	})
	if err != nil {
		return nil, s.handleError(session, err)
	}

	votes := make([]domain.Vote, 0, len(resp))
	for _, raw := range resp {
		v := NormalizeVote(raw)
		if v.CompanyID == "" {
			v.CompanyID = companyID
		}
		votes = append(votes, v)
	}

	return votes, nil
}

func (s *VoteTrackService) GetCompanies(ctx context.Context, session *domain.SessionContext) ([]domain.Company, error) {
	if err := s.checkSession(session, "list_companies"); err != nil {
		return nil, err
	}

	resp, err := s.Client.ListCompanies(ctx, session.Token)
	if err != nil {
		return nil, s.handleError(session, err)
	}

	companies := make([]domain.Company, 0, len(resp))
	for _, c := range resp {
		companies = append(companies, domain.Company{
			ID:                c.ID.String(),
			Name:              c.Name,
			LegalName:         c.LegalName,
			CNPJ:              c.CNPJ,
			Email:             c.Email,
			Phone:             c.Phone,
			Address:           c.Address,
			EmployeeCount:     c.EmployeeCount,
			RatingButtonCount: c.RatingButtons,
		})
	}

	return companies, nil
}

func (s *VoteTrackService) GetServices(ctx context.Context, session *domain.SessionContext) ([]domain.ServiceInfo, error) {
	if err := s.checkSession(session, "list_service_types"); err != nil {
		return nil, err
	}

	resp, err := s.Client.ListServiceTypes(ctx, session.Token)
	if err != nil {
		return nil, s.handleError(session, err)
	}

	services := make([]domain.ServiceInfo, 0, len(resp))
	for _, st := range resp {
		services = append(services, domain.ServiceInfo{
			ID:                st.ID.String(),
			CompanyID:         st.CompanyID.String(),
			Name:              st.Name,
			StartTime:         st.StartTime,
			EndTime:           st.EndTime,
			ExpectedMealCount: st.ExpectedMeals,
		})
	}

	return services, nil
}

func (s *VoteTrackService) GetAnalyticsSnapshot(ctx context.Context, session *domain.SessionContext, companyID string, rng domain.DateRange) (*domain.AnalyticsSnapshot, error) {
	if err := s.checkSession(session, "company_analytics"); err != nil {
		return nil, err
	}

	resp, err := s.Client.GetCompanyAnalytics(ctx, session.Token, votetrackclient.VotesParams{
		CompanyID: companyID,
		StartDate: rng.StartDate(),
		EndDate:   rng.EndDate(),
	})
	if err != nil {
		return nil, s.handleError(session, err)
	}

	snapshot := NormalizeSnapshot(*resp)
	if snapshot.CompanyID == "" {
		snapshot.CompanyID = companyID
	}
	return &snapshot, nil
}

// checkSession falha cedo quando o token já expirou, sem chamar o backend
func (s *VoteTrackService) checkSession(session *domain.SessionContext, op string) error {
	if session.Usable(s.now()) {
		return nil
	}
	err := domain.NewFetchError(domain.ErrAuth, op, 0, "token ausente ou expirado")
	session.Invalidate(err)
	return err
}

func (s *VoteTrackService) handleError(session *domain.SessionContext, err error) error {
	if errors.Is(err, domain.ErrAuth) {
		log.L.WithField("user_id", session.UserID).Warn("votetrack: credencial rejeitada pelo backend")
		session.Invalidate(err)
	}
	return err
}

// NormalizeVote converte o voto do backend; campos inválidos ficam zerados para o agregador descartar
func NormalizeVote(raw votetrackdomain.Vote) domain.Vote {
	v := domain.Vote{
		ID:            raw.ID.String(),
		CompanyID:     raw.CompanyID.String(),
		ServiceTypeID: raw.ServiceTypeID.String(),
		Comment:       raw.Comment,
	}
	if raw.ServiceType != nil {
		v.ServiceTypeName = raw.ServiceType.Name
	}
	if rating, err := domain.ParseRating(raw.Rating); err == nil {
		v.Rating = rating
	}
	if ts, err := time.Parse(time.RFC3339, raw.CreatedAt); err == nil {
		v.Timestamp = ts
	}
	return v
}

func NormalizeSnapshot(raw votetrackdomain.Analytics) domain.AnalyticsSnapshot {
	snapshot := domain.AnalyticsSnapshot{
		CompanyID:      raw.CompanyID.String(),
		TotalVotes:     raw.TotalVotes,
		CountsByRating: domain.NewRatingCounts(),
		AverageRating:  raw.AverageRating,
	}
	for label, count := range raw.VotesByRating {
		if rating, err := domain.ParseRating(label); err == nil {
			snapshot.CountsByRating[rating] += count
		}
	}
	return snapshot
}
