package analytics

import (
	"errors"
	"fmt"
)

// Erros do motor de análise
var (
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPrecondition      = errors.New("precondition violated")
	ErrDivisionUndefined = errors.New("division undefined")
)

// AnalyticsError é um erro com contexto da operação que falhou
type AnalyticsError struct {
	Err     error  // Erro base
	Op      string // Operação (filter, aggregate, topn, classify...)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func newError(err error, op string, format string, args ...any) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Op:      op,
		Details: fmt.Sprintf(format, args...),
	}
}
