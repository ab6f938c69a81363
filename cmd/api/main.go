package main

import (
	"context"
	"errors"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	holder := store.NewHolder()

	var (
		userRepo        repository.UserRepository
		salesRecordRepo repository.SalesRecordRepository
		snapshotRepo    repository.ABCSnapshotRepository
		cronServices    handler.CronJobServices
	)

	pgConn := pgconn(ctx, cfg.Database)
	if pgConn != nil {
		defer pgConn.Close()

		if err := migration.Run(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}

		userRepo = repository.NewUserRepository(pgConn)
		snapshotRepo = repository.NewABCSnapshotRepository(pgConn)
		if cfg.Dataset.PersistEnabled {
			salesRecordRepo = repository.NewSalesRecordRepository(pgConn)
		}
	} else {
		userRepo = repository.NewMemoryUserRepository(configuredAdmin(cfg.Auth)...)
	}

	authenticator := authenticating.NewService(userRepo, cfg)
	datasetService := dataset.NewService(holder, salesRecordRepo)
	reportingService := reporting.NewService(holder, snapshotRepo, reporting.OptionsFromConfig(cfg))

	preloadDataset(ctx, cfg, datasetService)

	// O agendador de snapshots depende do banco
	if snapshotRepo != nil {
		abcSnapshotService := scheduler.NewAbcSnapshotService(holder, snapshotRepo, cfg)
		if err := abcSnapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots ABC")
		} else {
			logrus.Info("Agendador de snapshots ABC iniciado com sucesso")
		}
		cronServices.AbcSnapshotService = abcSnapshotService
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Datasets:      datasetService,
		Reporter:      reportingService,
		CronJobs:      cronServices,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados. Retorna nil quando o banco está desabilitado.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if errors.Is(err, postgres.ErrDatabaseDisabled) {
		logrus.Info("Banco de dados desabilitado, usando apenas o dataset em memória")
		return nil
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// configuredAdmin monta o administrador das variáveis de ambiente, se houver senha configurada
func configuredAdmin(auth config.Auth) []domain.User {
	if auth.AdminPasswordHash == "" {
		logrus.Warn("AUTH_ADMIN_PASSWORD_HASH vazio, nenhum usuário poderá fazer login")
		return nil
	}

	return []domain.User{{
		ID:           1,
		Name:         "Administrador",
		Email:        auth.AdminEmail,
		PasswordHash: auth.AdminPasswordHash,
		Active:       true,
		RoleID:       middleware.RoleAdmin,
	}}
}

// preloadDataset restaura o último dataset gravado ou carrega DATASET_PATH
func preloadDataset(ctx context.Context, cfg *config.Config, service dataset.DatasetService) {
	if cfg.Dataset.PersistEnabled {
		info, err := service.Restore(ctx)
		if err == nil {
			logrus.WithField("dataset_id", info.ID).Info("Dataset restaurado do banco")
			return
		}
		logrus.WithError(err).Info("Nenhum dataset restaurado do banco")
	}

	if cfg.Dataset.Path == "" {
		logrus.Info("Nenhum dataset inicial configurado, aguardando upload")
		return
	}

	info, err := service.LoadFile(ctx, cfg.Dataset.Path)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar o dataset inicial")
		return
	}
	logrus.WithFields(logrus.Fields{
		"dataset_id": info.ID,
		"records":    info.Records,
	}).Info("Dataset inicial carregado")
}
