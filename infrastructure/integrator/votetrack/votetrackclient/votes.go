package votetrackclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	votetrackdomain "github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/domain"
)

type VotesParams struct {
	CompanyID string
	StartDate string
	EndDate   string
}

func (p VotesParams) query() url.Values {
	query := url.Values{}
	if p.CompanyID != "" {
		query.Set("companyId", p.CompanyID)
	}
	if p.StartDate != "" {
		query.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		query.Set("endDate", p.EndDate)
	}
	return query
}

// ListVotes busca os votos brutos; 404 significa que não há votos no período
func (c *VoteTrackClient) ListVotes(ctx context.Context, token string, params VotesParams) ([]votetrackdomain.Vote, error) {
	var response []votetrackdomain.Vote

	err := c.get(ctx, "list_votes", token, "/votes", params.query(), &response)
	if errors.Is(err, errNotFound) {
		return []votetrackdomain.Vote{}, nil
	}
	if err != nil {
		return nil, err
	}

	return response, nil
}
