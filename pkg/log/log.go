// Package log concentra o logger da API. Cada requisição carrega um registro com o
// correlation id e os dados da análise atendida (tipo, chave, filtros, dataset), que
// os handlers completam e o middleware de logging publica ao final.
package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Campos do registro da requisição
const (
	FieldCorrelationID = "correlation_id"
	FieldAnalysis      = "analysis"
	FieldKey           = "key"
	FieldFilters       = "filters"
	FieldDatasetID     = "dataset_id"
)

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

type entryLogger struct {
	entry *logrus.Entry
}

// L é o logger global, sobre o logger padrão do logrus
var L Logger = New(logrus.StandardLogger())

// New embrulha um logger do logrus
func New(base *logrus.Logger) Logger {
	return &entryLogger{entry: logrus.NewEntry(base)}
}

// IsDevelopment indica ambiente de desenvolvimento (APP_ENV vazio, development ou dev)
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger descarta a saída e mantém o nível debug para exercitar todos os caminhos
func SetupTestLogger() {
	logrus.SetOutput(io.Discard)
	logrus.SetLevel(logrus.DebugLevel)
	L = New(logrus.StandardLogger())
}

func (l *entryLogger) WithField(key string, value any) Logger {
	return &entryLogger{entry: l.entry.WithField(key, value)}
}

func (l *entryLogger) WithFields(fields Fields) Logger {
	return &entryLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *entryLogger) WithError(err error) Logger {
	return &entryLogger{entry: l.entry.WithError(err)}
}

func (l *entryLogger) Debug(args ...any) { l.entry.Debug(args...) }

func (l *entryLogger) Info(args ...any) { l.entry.Info(args...) }

func (l *entryLogger) Warn(args ...any) { l.entry.Warn(args...) }

func (l *entryLogger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }

func (l *entryLogger) Error(args ...any) { l.entry.Error(args...) }

// request acumula os campos da requisição
type request struct {
	mu     sync.Mutex
	fields Fields
}

type contextKey struct{}

// WithRequest abre o registro da requisição com um novo correlation id
func WithRequest(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	req := &request{fields: Fields{FieldCorrelationID: correlationID}}
	return context.WithValue(ctx, contextKey{}, req), correlationID
}

// Annotate acrescenta campos ao registro da requisição. Sem registro no contexto não faz nada.
func Annotate(ctx context.Context, fields Fields) {
	req, ok := ctx.Value(contextKey{}).(*request)
	if !ok {
		return
	}

	req.mu.Lock()
	defer req.mu.Unlock()
	for k, v := range fields {
		req.fields[k] = v
	}
}

// RequestFields retorna uma cópia dos campos acumulados na requisição
func RequestFields(ctx context.Context) Fields {
	req, ok := ctx.Value(contextKey{}).(*request)
	if !ok {
		return Fields{}
	}

	req.mu.Lock()
	defer req.mu.Unlock()
	out := make(Fields, len(req.fields))
	for k, v := range req.fields {
		out[k] = v
	}
	return out
}

// CorrelationID retorna o id da requisição ou vazio fora de uma requisição
func CorrelationID(ctx context.Context) string {
	id, _ := RequestFields(ctx)[FieldCorrelationID].(string)
	return id
}

// ForContext cria um logger com os campos já anotados na requisição
func ForContext(ctx context.Context) Logger {
	fields := RequestFields(ctx)
	if len(fields) == 0 {
		return L
	}
	return L.WithFields(fields)
}
