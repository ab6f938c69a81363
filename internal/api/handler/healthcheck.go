package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/store"
)

// DatasetStatus é a visão mínima usada pelo healthcheck
type DatasetStatus interface {
	Current() (*store.Dataset, error)
}

func HealthcheckHandler(datasets DatasetStatus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"status":         "ok",
			"time":           time.Now().Format(time.RFC3339),
			"dataset_loaded": false,
		}

		if dataset, err := datasets.Current(); err == nil {
			status["dataset_loaded"] = true
			status["dataset_id"] = dataset.Info.ID
			status["records"] = dataset.Info.Records
		}

		writeJSON(w, http.StatusOK, status)
	})
}
