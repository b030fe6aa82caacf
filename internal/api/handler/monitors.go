package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/middleware"
)

type OpenMonitorRequest struct {
	CompanyID string `json:"company_id"`
	Range     string `json:"range"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SwitchCompanyRequest struct {
	CompanyID string `json:"company_id"`
}

type MonitorResponse struct {
	monitoring.Snapshot
	Charts *reporting.ChartSet `json:"charts,omitempty"`
}

// MonitorOptions agrupa o que os handlers de monitor precisam além do registro
type MonitorOptions struct {
	Lookups     LookupSource
	Location    *time.Location
	RecentLimit int
}

func newMonitorResponse(view *monitoring.View, opts MonitorOptions) MonitorResponse {
	snap := view.Snapshot()
	resp := MonitorResponse{Snapshot: snap}
	if snap.Analytics != nil && opts.Lookups != nil {
		charts := reporting.Charts(*snap.Analytics, opts.Lookups.Lookups(), reporting.PresentOptions{
			RecentLimit: opts.RecentLimit,
			Location:    opts.Location,
		})
		resp.Charts = &charts
	}
	return resp
}

// ownedView só devolve a visão ao dono ou a um administrador; para os demais ela não existe
func ownedView(registry MonitorRegistry, r *http.Request) (*monitoring.View, error) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	view, err := registry.Get(id)
	if err != nil {
		return nil, err
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || (view.OwnerID() != claims.UserID && claims.UserRoleID != middleware.RoleAdmin) {
		return nil, domain.ErrMonitorNotFound
	}
	return view, nil
}

func OpenMonitor(registry MonitorRegistry, opts MonitorOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body OpenMonitorRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		_, session, ok := authorizeCompany(w, r, body.CompanyID)
		if !ok {
			return
		}

		req := monitoring.OpenRequest{
			CompanyID: body.CompanyID,
			RangeKind: domain.QuickRangeKind(body.Range),
		}
		if body.StartDate != "" || body.EndDate != "" {
			rng, err := domain.ParseDateRange(body.StartDate, body.EndDate, opts.Location)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			req.Range = &rng
		}

		view, err := registry.Open(session, req)
		if err != nil {
			logger.WithField("company_id", body.CompanyID).WithError(err).Error("monitor: falha ao abrir visão")
			writeDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"monitor_id": view.ID(),
			"company_id": body.CompanyID,
		}).Info("monitor: visão aberta")

		writeJSON(w, http.StatusCreated, newMonitorResponse(view, opts))
	})
}

func GetMonitor(registry MonitorRegistry, opts MonitorOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := ownedView(registry, r)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newMonitorResponse(view, opts))
	})
}

func SwitchMonitorCompany(registry MonitorRegistry, opts MonitorOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := ownedView(registry, r)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		var body SwitchCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if _, _, ok := authorizeCompany(w, r, body.CompanyID); !ok {
			return
		}

		if err := view.SwitchCompany(r.Context(), body.CompanyID); err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newMonitorResponse(view, opts))
	})
}

func CloseMonitor(registry MonitorRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := ownedView(registry, r)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		if err := registry.Close(view.ID()); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
