package votetrackclient

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	votetrackdomain "github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/config"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotFound = errors.New("recurso não encontrado")

// Client é o cliente REST da API do VoteTrack
type Client interface {
	ListVotes(ctx context.Context, token string, params VotesParams) ([]votetrackdomain.Vote, error)
	ListCompanies(ctx context.Context, token string) ([]votetrackdomain.Company, error)
	ListServiceTypes(ctx context.Context, token string) ([]votetrackdomain.ServiceType, error)
	GetCompanyAnalytics(ctx context.Context, token string, params VotesParams) (*votetrackdomain.Analytics, error)
}

type VoteTrackClient struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &VoteTrackClient{
		httpClient: &http.Client{},
		baseURL:    cfg.VoteTrack.URL,
		timeout:    cfg.VoteTrack.Timeout,
	}
}

// get executa a requisição com uma nova tentativa apenas para falhas de rede
func (c *VoteTrackClient) get(ctx context.Context, op, token, resource string, query url.Values, out any) error {
	err := c.doGet(ctx, op, token, resource, query, out)
	if err == nil || !errors.Is(err, domain.ErrNetwork) || ctx.Err() != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"operation": op,
		"error":     err.Error(),
	}).Warn("votetrack: falha de rede, tentando novamente")

	return c.doGet(ctx, op, token, resource, query, out)
}

func (c *VoteTrackClient) doGet(ctx context.Context, op, token, resource string, query url.Values, out any) error {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(op, classifyTransportError(reqCtx, err), 0, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return c.fail(op, domain.ErrAuth, resp.StatusCode, readErrorDetail(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		metrics.BackendRequests.WithLabelValues(op, "not_found").Inc()
		return errNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return c.fail(op, domain.ErrNetwork, resp.StatusCode, readErrorDetail(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(op, classifyTransportError(reqCtx, err), resp.StatusCode, "erro ao decodificar a resposta: "+err.Error())
	}

	metrics.BackendRequests.WithLabelValues(op, "ok").Inc()
	return nil
}

func (c *VoteTrackClient) fail(op string, kind error, status int, details string) error {
	result := "network"
	switch {
	case errors.Is(kind, domain.ErrAuth):
		result = "auth"
	case errors.Is(kind, domain.ErrTimeout):
		result = "timeout"
	}
	metrics.BackendRequests.WithLabelValues(op, result).Inc()
	return domain.NewFetchError(kind, op, status, details)
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrTimeout
	}
	return domain.ErrNetwork
}

func readErrorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var resp votetrackdomain.ErrorResponse
	if err := json.Unmarshal(data, &resp); err == nil && resp.Detail() != "" {
		return resp.Detail()
	}
	return string(data)
}
