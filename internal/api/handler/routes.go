package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func Healthcheck(datasets DatasetStatus) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(datasets),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Datasets(service dataset.DatasetService, maxUploadMB int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets",
			Method:      http.MethodPost,
			Handler:     UploadDataset(service, maxUploadMB),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/datasets/current",
			Method:      http.MethodGet,
			Handler:     GetCurrentDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/filters/options",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/kpis",
			Method:      http.MethodGet,
			Handler:     GetKPIs(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/aggregates/:key",
			Method:      http.MethodGet,
			Handler:     GetAggregates(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/ranking/:key",
			Method:      http.MethodGet,
			Handler:     GetRanking(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/abc",
			Method:      http.MethodGet,
			Handler:     GetABCAll(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/abc/:key",
			Method:      http.MethodGet,
			Handler:     GetABC(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/crosstab/seller-month",
			Method:      http.MethodGet,
			Handler:     GetSellerMonthCrosstab(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/discounts",
			Method:      http.MethodGet,
			Handler:     GetDiscounts(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/abc-snapshots",
			Method:      http.MethodGet,
			Handler:     GetABCSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
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
