package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/middleware"
)

// ExportReport gera o documento e o devolve como anexo.
// Clientes sem company_id recebem o relatório da própria empresa.
func ExportReport(service ReportExporter, format domain.ReportFormat, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companyID := r.URL.Query().Get("company_id")
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && companyID == "" && !isManager(claims) {
			companyID = claims.CompanyID
		}

		_, session, ok := authorizeCompany(w, r, companyID)
		if !ok {
			return
		}

		rng, err := parseRange(r, loc, time.Now())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		doc, err := service.Export(r.Context(), session, reporting.ExportRequest{
			CompanyID: companyID,
			Range:     rng,
			Format:    format,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"format":     format,
				"error":      err.Error(),
			}).Error("reports: falha ao exportar relatório")
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", doc.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
		w.Header().Set("X-Report-Id", doc.ID)
		w.Header().Set("X-Report-Pages", strconv.Itoa(doc.Pages))
		if doc.Truncated {
			w.Header().Set("X-Report-Truncated", "true")
		}
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(doc.Data); err != nil {
			logger.WithError(err).Warn("reports: conexão encerrada durante o envio do relatório")
		}
	})
}

func GetReportHistory(service ReportExporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit := 0
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		records, err := service.History(r.Context(), query.Get("company_id"), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: falha ao listar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Falha ao listar histórico de relatórios", nil)
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}
