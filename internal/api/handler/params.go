package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/middleware"
)

// parseRange lê start_date/end_date (2006-01-02) ou o filtro rápido range=today|7d|30d|month.
// Sem nenhum parâmetro o intervalo é o dia de hoje.
func parseRange(r *http.Request, loc *time.Location, now time.Time) (domain.DateRange, error) {
	query := r.URL.Query()
	start, end := query.Get("start_date"), query.Get("end_date")

	if start != "" || end != "" {
		if start == "" {
			start = end
		}
		if end == "" {
			end = start
		}
		return domain.ParseDateRange(start, end, loc)
	}

	return domain.QuickRange(domain.QuickRangeKind(query.Get("range")), now, loc)
}

func isManager(claims *domain.Claims) bool {
	return claims.UserRoleID == middleware.RoleAdmin || claims.UserRoleID == middleware.RoleSupervisor
}

// authorizeCompany restringe clientes à própria empresa. companyID vazio significa todas as empresas.
func authorizeCompany(w http.ResponseWriter, r *http.Request, companyID string) (*domain.Claims, *domain.SessionContext, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, nil, false
	}
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão ausente", nil)
		return nil, nil, false
	}

	if !isManager(claims) && (companyID == "" || companyID != claims.CompanyID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a esta empresa", nil)
		return nil, nil, false
	}

	return claims, session, true
}
