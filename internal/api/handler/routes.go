package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/satisfaction-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Analytics(service insighting.Insighter, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/analytics",
			Method:      http.MethodGet,
			Handler:     GetCompanyAnalytics(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/charts",
			Method:      http.MethodGet,
			Handler:     GetCompanyCharts(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics",
			Method:      http.MethodGet,
			Handler:     GetAllCompaniesAnalytics(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/lookups/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshLookups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service ReportExporter, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/pdf",
			Method:      http.MethodGet,
			Handler:     ExportReport(service, domain.ReportFormatPDF, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/xlsx",
			Method:      http.MethodGet,
			Handler:     ExportReport(service, domain.ReportFormatXLSX, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/history",
			Method:      http.MethodGet,
			Handler:     GetReportHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Monitors(registry MonitorRegistry, opts MonitorOptions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/monitors",
			Method:      http.MethodPost,
			Handler:     OpenMonitor(registry, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monitors/:id",
			Method:      http.MethodGet,
			Handler:     GetMonitor(registry, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monitors/:id/company",
			Method:      http.MethodPut,
			Handler:     SwitchMonitorCompany(registry, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monitors/:id",
			Method:      http.MethodDelete,
			Handler:     CloseMonitor(registry),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
