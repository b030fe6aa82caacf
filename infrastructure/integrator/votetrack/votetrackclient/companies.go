package votetrackclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	votetrackdomain "github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

func (c *VoteTrackClient) ListCompanies(ctx context.Context, token string) ([]votetrackdomain.Company, error) {
	var response []votetrackdomain.Company

	err := c.get(ctx, "list_companies", token, "/companies", url.Values{}, &response)
	if errors.Is(err, errNotFound) {
		return nil, domain.NewFetchError(domain.ErrNetwork, "list_companies", 404, "endpoint de empresas indisponível")
	}
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (c *VoteTrackClient) ListServiceTypes(ctx context.Context, token string) ([]votetrackdomain.ServiceType, error) {
	var response []votetrackdomain.ServiceType

	err := c.get(ctx, "list_service_types", token, "/service-types", url.Values{}, &response)
	if errors.Is(err, errNotFound) {
		return nil, domain.NewFetchError(domain.ErrNetwork, "list_service_types", 404, "endpoint de serviços indisponível")
	}
	if err != nil {
		return nil, err
	}

	return response, nil
}

// GetCompanyAnalytics busca o agregado pronto do backend para conferência
func (c *VoteTrackClient) GetCompanyAnalytics(ctx context.Context, token string, params VotesParams) (*votetrackdomain.Analytics, error) {
	var response votetrackdomain.Analytics

	query := params.query()
	query.Del("companyId")

	err := c.get(ctx, "company_analytics", token, "/companies/"+params.CompanyID+"/analytics", query, &response)
	if errors.Is(err, errNotFound) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}

	return &response, nil
}
