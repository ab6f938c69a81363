package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Dataset         Dataset         `mapstructure:",squash"`
	Analytics       Analytics       `mapstructure:",squash"`
	AbcSnapshotSync AbcSnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
	// Usuário administrador usado quando o banco está desabilitado
	AdminEmail        string `mapstructure:"auth_admin_email"`
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
}

type Dataset struct {
	Path           string `mapstructure:"dataset_path"` // Arquivo carregado na inicialização (opcional)
	MaxUploadMB    int64  `mapstructure:"dataset_max_upload_mb"`
	PersistEnabled bool   `mapstructure:"dataset_persist_enabled"`
}

type Analytics struct {
	ThresholdA float64 `mapstructure:"analytics_abc_threshold_a"`
	ThresholdB float64 `mapstructure:"analytics_abc_threshold_b"`
	ABCLimit   int     `mapstructure:"analytics_abc_limit"`
	TopN       int     `mapstructure:"analytics_top_n"`
}

type AbcSnapshotSync struct {
	CronSchedule string   `mapstructure:"abc_snapshot_sync_cron"`
	SyncEnabled  bool     `mapstructure:"abc_snapshot_sync_enabled"`
	Dimensions   []string `mapstructure:"abc_snapshot_sync_dimensions"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", false) // Sem banco a API funciona só com o dataset em memória

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@sales.local")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("DATASET_PATH", "")
	viper.SetDefault("DATASET_MAX_UPLOAD_MB", 50)
	viper.SetDefault("DATASET_PERSIST_ENABLED", false)

	viper.SetDefault("ANALYTICS_ABC_THRESHOLD_A", 80)
	viper.SetDefault("ANALYTICS_ABC_THRESHOLD_B", 95)
	viper.SetDefault("ANALYTICS_ABC_LIMIT", 30) // Classifica os 30 maiores grupos
	viper.SetDefault("ANALYTICS_TOP_N", 10)

	viper.SetDefault("ABC_SNAPSHOT_SYNC_CRON", "0 6 1 * *") // No primeiro dia de cada mês às 6h da manhã
	viper.SetDefault("ABC_SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("ABC_SNAPSHOT_SYNC_DIMENSIONS", "client")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Analytics.ThresholdA <= 0 || config.Analytics.ThresholdA > config.Analytics.ThresholdB || config.Analytics.ThresholdB > 100 {
		return nil, fmt.Errorf("limites ABC inválidos: A=%.2f B=%.2f", config.Analytics.ThresholdA, config.Analytics.ThresholdB)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
