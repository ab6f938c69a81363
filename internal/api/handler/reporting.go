package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// writeAnalysisError converte o erro da análise no código da API
func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	code := reporting.ErrorCode(err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"code":  code,
		"error": err.Error(),
	})
	if code == apiErrors.ErrInternalServer {
		logger.Error("reporting: falha ao calcular análise")
	} else {
		logger.Warn("reporting: análise rejeitada")
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}

func GetFilterOptions(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions()
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, options)
	}
}

func GetKPIs(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		annotateAnalysis(r, "dashboard", "", criteria)

		report, err := service.Dashboard(criteria)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetAggregates agrupa pela chave da URL. O parâmetro sort ordena pela medida,
// sem ele as linhas seguem a ordem da primeira ocorrência.
func GetAggregates(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := analytics.ParseAggregationKey(httprouter.ParamsFromContext(r.Context()).ByName("key"))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		measure, err := analytics.ParseMeasure(r.URL.Query().Get("measure"))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		var direction domain.Direction
		if sort := r.URL.Query().Get("sort"); sort != "" {
			if direction, err = analytics.ParseDirection(sort); err != nil {
				writeAnalysisError(w, r, err)
				return
			}
		}

		annotateAnalysis(r, "aggregate", key, criteria)

		report, err := service.Aggregates(criteria, key, measure, direction)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetRanking(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := analytics.ParseAggregationKey(httprouter.ParamsFromContext(r.Context()).ByName("key"))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		n, err := optionalInt(r, "n")
		if err != nil {
			writeParamError(w, err)
			return
		}

		measure, err := analytics.ParseMeasure(r.URL.Query().Get("measure"))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		direction, err := analytics.ParseDirection(r.URL.Query().Get("direction"))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		annotateAnalysis(r, "ranking", key, criteria)

		report, err := service.Ranking(criteria, key, n, measure, direction)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetABC(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := analytics.ParseAggregationKey(httprouter.ParamsFromContext(r.Context()).ByName("key"))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		limit, err := optionalInt(r, "limit")
		if err != nil {
			writeParamError(w, err)
			return
		}

		annotateAnalysis(r, "abc", key, criteria)

		report, err := service.ABC(criteria, key, limit)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetABCAll classifica clientes, produtos e vendedores em paralelo
func GetABCAll(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		limit, err := optionalInt(r, "limit")
		if err != nil {
			writeParamError(w, err)
			return
		}

		annotateAnalysis(r, "abc_all", "", criteria)

		report, err := service.ABCAll(r.Context(), criteria, limit)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetSellerMonthCrosstab(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		annotateAnalysis(r, "crosstab", "", criteria)

		report, err := service.Crosstab(criteria)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetDiscounts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseCriteria(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		annotateAnalysis(r, "discounts", "", criteria)

		report, err := service.Discounts(criteria)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetABCSnapshots(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dimension := r.URL.Query().Get("dimension")
		if dimension == "" {
			dimension = "client"
		}

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period (yyyy-mm) obrigatório", nil)
			return
		}

		log.Annotate(r.Context(), log.Fields{
			log.FieldAnalysis: "abc_snapshot",
			log.FieldKey:      dimension,
			"period":          period,
		})

		snapshot, err := service.Snapshot(dimension, period)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
