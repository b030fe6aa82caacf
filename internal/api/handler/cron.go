package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
)

const (
	CronJobTypeLookups = "lookups"
	CronJobTypeAll     = "all"
)

// CronJobServices agrupa os jobs que podem ser disparados pela API
type CronJobServices struct {
	LookupRefreshService CronJob
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: execução manual solicitada")

		switch cronType {
		case CronJobTypeLookups, CronJobTypeAll:
			if services.LookupRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de lookups não disponível", nil)
				return
			}
			services.LookupRefreshService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: lookups, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus devolve o estado de cada job indexado pelo tipo
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.LookupRefreshService != nil {
			status[CronJobTypeLookups] = services.LookupRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
