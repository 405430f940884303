package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/database/postgres"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/fakestoreclient"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/repository"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/api"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/scheduler"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/advising"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/usecases/analyzing"
	"github.com/sirupsen/logrus"
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

	fakeStoreClient := fakestoreclient.NewClient(cfg)
	catalogService := fakestore.New(cfg, fakeStoreClient)

	analyzerService := analyzing.NewService(cfg, catalogService)
	adviserService := advising.NewService()

	var catalogSyncService *scheduler.CatalogSyncService

	// O banco é opcional: sem ele o serviço responde direto da fonte externa,
	// sem snapshot de contingência e sem agendador de sincronização
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo := repository.NewCatalogSnapshotRepository(pgConn)

		analyzerService = analyzerService.(*analyzing.Service).WithSnapshotFallback(snapshotRepo)

		catalogSyncService = scheduler.NewCatalogSyncService(catalogService, snapshotRepo, cfg)
		if err := catalogSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do catálogo")
		} else {
			logrus.Info("Agendador de snapshot do catálogo iniciado com sucesso")
		}
	} else {
		logrus.Info("Banco de dados desabilitado, seguindo sem snapshot de contingência")
	}

	server, err := api.New(
		cfg,
		analyzerService,
		adviserService,
		catalogSyncService,
	)
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
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
