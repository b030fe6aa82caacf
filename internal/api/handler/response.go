package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Warn("erro ao serializar resposta")
	}
}

// errorCode traduz os erros de domínio para o envelope da API
func errorCode(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrAuth):
		return apiErrors.ErrInvalidToken, "Sessão rejeitada pelo backend de votos"
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrExternalTimeout, "O backend de votos não respondeu a tempo"
	case errors.Is(err, domain.ErrNetwork):
		return apiErrors.ErrExternalService, "Falha ao consultar o backend de votos"
	case errors.Is(err, domain.ErrRender):
		return apiErrors.ErrRenderFailure, "Falha ao gerar o relatório"
	case errors.Is(err, domain.ErrInvalidRange):
		return apiErrors.ErrInvalidDateRange, err.Error()
	case errors.Is(err, reporting.ErrUnsupportedFormat):
		return apiErrors.ErrInvalidFormat, err.Error()
	case errors.Is(err, domain.ErrCompanyNotFound):
		return apiErrors.ErrResourceNotFound, "Empresa não encontrada"
	case errors.Is(err, domain.ErrMonitorNotFound), errors.Is(err, monitoring.ErrViewClosed):
		return apiErrors.ErrResourceNotFound, "Monitor não encontrado"
	case errors.Is(err, monitoring.ErrTooManyViews):
		return apiErrors.ErrTooManyMonitors, "Limite de monitores abertos atingido"
	}
	return apiErrors.ErrInternalServer, "Erro interno do servidor"
}

func writeDomainError(w http.ResponseWriter, err error) {
	code, message := errorCode(err)
	apiErrors.WriteError(w, code, message, nil)
}
