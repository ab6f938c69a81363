package dataset

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de datasets
var (
	ErrInvalidFile      = errors.New("arquivo de vendas inválido")
	ErrPersistDataset   = errors.New("erro ao gravar dataset")
	ErrRestoreDataset   = errors.New("erro ao restaurar dataset")
	ErrGenerateID       = errors.New("erro ao gerar ID do dataset")
	ErrPersistenceOff   = errors.New("persistência de dataset desabilitada")
	ErrDatasetNotStored = errors.New("nenhum dataset gravado no banco")
)

// DatasetError é um erro com contexto adicional para datasets
type DatasetError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	FileName string // Arquivo envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DatasetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError cria um novo erro de dataset
func NewDatasetError(baseErr error, code string, fileName string, details string) *DatasetError {
	return &DatasetError{
		Err:      baseErr,
		Code:     code,
		FileName: fileName,
		Details:  details,
	}
}
