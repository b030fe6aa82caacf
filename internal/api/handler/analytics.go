package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/middleware"
)

func GetCompanyAnalytics(service insighting.Insighter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		_, session, ok := authorizeCompany(w, r, id)
		if !ok {
			return
		}

		rng, err := parseRange(r, loc, time.Now())
		if err != nil {
			logger.WithField("company_id", id).WithError(err).Warn("insights: intervalo inválido")
			writeDomainError(w, err)
			return
		}

		resp, err := service.CompanyAnalytics(r.Context(), session, id, rng)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"start_date": rng.StartDate(),
				"end_date":   rng.EndDate(),
				"error":      err.Error(),
			}).Error("insights: falha ao agregar votos da empresa")
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func GetCompanyCharts(service insighting.Insighter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		_, session, ok := authorizeCompany(w, r, id)
		if !ok {
			return
		}

		rng, err := parseRange(r, loc, time.Now())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp, err := service.CompanyCharts(r.Context(), session, id, rng)
		if err != nil {
			log.ForContext(r.Context()).WithField("company_id", id).WithError(err).Error("insights: falha ao montar gráficos")
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func GetAllCompaniesAnalytics(service insighting.Insighter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão ausente", nil)
			return
		}

		rng, err := parseRange(r, loc, time.Now())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp, err := service.AllCompaniesAnalytics(r.Context(), session, rng)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("insights: falha ao agregar todas as empresas")
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func RefreshLookups(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão ausente", nil)
			return
		}

		lookups, err := service.RefreshLookups(r.Context(), session)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"companies":    len(lookups.Companies),
			"services":     len(lookups.Services),
			"refreshed_at": lookups.RefreshedAt,
		})
	})
}
