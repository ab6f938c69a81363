package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// parseCriteria lê os filtros da query string. Datas ausentes ficam zeradas e o
// serviço assume os limites do dataset.
func parseCriteria(r *http.Request) (domain.FilterCriteria, error) {
	query := r.URL.Query()

	criteria := domain.FilterCriteria{
		Locality:         query.Get("locality"),
		Client:           query.Get("client"),
		Seller:           query.Get("seller"),
		PaymentCondition: query.Get("payment_condition"),
		Month:            query.Get("month"),
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return criteria, errors.Wrapf(err, "start_date inválido")
	}
	if startDate != nil {
		criteria.DateRange.Start = *startDate
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return criteria, errors.Wrapf(err, "end_date inválido")
	}
	if endDate != nil {
		criteria.DateRange.End = *endDate
	}

	return criteria, nil
}

// annotateAnalysis registra no log da requisição a análise pedida e os filtros enviados
func annotateAnalysis(r *http.Request, analysis string, key domain.AggregationKey, criteria domain.FilterCriteria) {
	fields := log.Fields{
		log.FieldAnalysis: analysis,
		log.FieldFilters:  filterFields(criteria),
	}
	if key != "" {
		fields[log.FieldKey] = key
	}
	log.Annotate(r.Context(), fields)
}

// filterFields mantém só os filtros que restringem o recorte
func filterFields(criteria domain.FilterCriteria) map[string]string {
	out := make(map[string]string)
	for _, dim := range domain.FilterDimensions {
		if value := criteria.Value(dim); !domain.IsAll(value) {
			out[string(dim)] = value
		}
	}
	if criteria.Month != "" {
		out["month"] = criteria.Month
	}
	if !criteria.DateRange.Start.IsZero() {
		out["start_date"] = criteria.DateRange.Start.Format(time.DateOnly)
	}
	if !criteria.DateRange.End.IsZero() {
		out["end_date"] = criteria.DateRange.End.Format(time.DateOnly)
	}
	return out
}

// optionalInt retorna nil quando o parâmetro não foi enviado
func optionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "%s deve ser um número inteiro", name)
	}
	return &value, nil
}

func writeParamError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}
