package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// UploadDataset recebe o arquivo de vendas no campo multipart "file"
func UploadDataset(service dataset.DatasetService, maxUploadMB int64) http.HandlerFunc {
	maxBytes := maxUploadMB << 20

	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo acima do limite de upload", map[string]int64{
					"max_upload_mb": maxUploadMB,
				})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file obrigatório", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"file_name": header.Filename,
			"size":      header.Size,
		}).Info("dataset: upload recebido")

		info, err := service.Upload(r.Context(), header.Filename, file)
		if err != nil {
			handleDatasetError(w, err)
			return
		}
		log.Annotate(r.Context(), log.Fields{
			log.FieldDatasetID: info.ID,
			"records":          info.Records,
		})

		writeJSON(w, http.StatusCreated, info)
	}
}

func GetCurrentDataset(service dataset.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := service.Current()
		if err != nil {
			handleDatasetError(w, err)
			return
		}
		log.Annotate(r.Context(), log.Fields{log.FieldDatasetID: current.Info.ID})

		writeJSON(w, http.StatusOK, current.Info)
	}
}

func handleDatasetError(w http.ResponseWriter, err error) {
	var datasetErr *dataset.DatasetError
	if errors.As(err, &datasetErr) {
		apiErrors.WriteError(w, datasetErr.Code, datasetErr.Error(), map[string]string{
			"file_name": datasetErr.FileName,
		})
		return
	}

	if errors.Is(err, store.ErrNoDataset) {
		apiErrors.WriteError(w, apiErrors.ErrNoDataset, err.Error(), nil)
		return
	}

	log.L.WithError(err).Error("dataset: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar dataset", nil)
}
