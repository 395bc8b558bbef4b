package handler

import (
	"net/http"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/api/handler/router"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/alerting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/authenticating"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/export",
			Method:      http.MethodGet,
			Handler:     ExportActivities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Goals(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals/:contractor/progress",
			Method:      http.MethodGet,
			Handler:     GetGoalProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:contractor",
			Method:      http.MethodPut,
			Handler:     SaveGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
		{
			Path:        "/v1/goals-refresh",
			Method:      http.MethodPost,
			Handler:     RefreshGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
	}
}

func Alerts(service alerting.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     ListAlerts(service),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
