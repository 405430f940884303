package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	FakeStore   FakeStore   `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
	Analytics   Analytics   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

type FakeStore struct {
	URL            string `mapstructure:"fakestore_url"`
	TimeoutSeconds int    `mapstructure:"fakestore_timeout_seconds"`
}

type CatalogSync struct {
	CronSchedule  string `mapstructure:"catalog_sync_cron"`
	Enabled       bool   `mapstructure:"catalog_sync_enabled"`
	RetentionDays int    `mapstructure:"catalog_sync_retention_days"`
}

// Analytics define o intervalo de datas padrão usado quando o cliente não
// informa start_date/end_date. A Fake Store API só tem pedidos de 2020,
// então o padrão cobre uma janela larga ao redor.
type Analytics struct {
	DefaultStartDate string `mapstructure:"analytics_default_start_date"`
	DefaultEndDate   string `mapstructure:"analytics_default_end_date"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/beautybiz")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", false)

	viper.SetDefault("FAKESTORE_URL", "https://fakestoreapi.com")
	viper.SetDefault("FAKESTORE_TIMEOUT_SECONDS", 30)

	// Defaults para a sincronização de snapshot do catálogo
	viper.SetDefault("CATALOG_SYNC_CRON", "0 3 * * *")  // Todos os dias às 3h da manhã
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)     // Habilitar sincronização do catálogo
	viper.SetDefault("CATALOG_SYNC_RETENTION_DAYS", 30) // Snapshots mais antigos são removidos

	viper.SetDefault("ANALYTICS_DEFAULT_START_DATE", "2019-01-01")
	viper.SetDefault("ANALYTICS_DEFAULT_END_DATE", "2022-12-31")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
