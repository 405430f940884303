// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore"
	"github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/repository"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/config"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/utils"
)

// CatalogSyncConfig representa a configuração do agendador de snapshot do catálogo
type CatalogSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// CatalogSyncService gerencia o agendamento e execução da sincronização do
// snapshot do catálogo externo (produtos + carrinhos) no banco
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              CatalogSyncConfig
	catalogService      fakestore.CatalogIntegrator
	snapshotRepo        repository.CatalogSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCatalogSyncService cria uma nova instância do serviço de sincronização do catálogo
func NewCatalogSyncService(
	catalogService fakestore.CatalogIntegrator,
	snapshotRepo repository.CatalogSnapshotRepository,
	appConfig *config.Config,
) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule:  appConfig.CatalogSync.CronSchedule,
		RetentionDays: appConfig.CatalogSync.RetentionDays,
		SyncEnabled:   appConfig.CatalogSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot do catálogo carregada")

	return &CatalogSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		catalogService: catalogService,
		snapshotRepo:   snapshotRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshot do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshot do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalogSnapshot(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do snapshot do catálogo: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshot do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCatalogSnapshot busca o catálogo completo da fonte externa e grava o
// snapshot do dia no banco
func (s *CatalogSyncService) syncCatalogSnapshot(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do snapshot do catálogo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	// Identificador curto para correlacionar os logs desta execução
	syncID, err := utils.GenerateID()
	if err != nil {
		syncID = "unknown"
	}

	logrus.WithField("sync_id", syncID).Info("Iniciando sincronização do snapshot do catálogo")

	products, err := s.catalogService.GetProducts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter produtos da fonte externa")
		return
	}

	carts, err := s.catalogService.GetCarts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter carrinhos da fonte externa")
		return
	}

	totalCatalogValue := 0.0
	for _, p := range products {
		totalCatalogValue += p.Price
	}

	snapshot := &domain.CatalogSnapshot{
		Day:      time.Now(),
		Products: products,
		Carts:    carts,
	}

	// Se o dia já tem snapshot, o SaveOrUpdate vai sobrescrevê-lo
	existing, err := s.snapshotRepo.GetByDay(snapshot.Day)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar o snapshot existente do dia")
	}
	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"sync_id":     syncID,
			"snapshot_id": existing.ID,
		}).Info("Snapshot do dia já existe, atualizando")
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot do catálogo no banco de dados")
		return
	}

	// Remover snapshots fora da janela de retenção
	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover snapshots antigos do catálogo")
	}

	logrus.WithFields(logrus.Fields{
		"sync_id":             syncID,
		"products":            utils.FormatNumber(len(products)),
		"carts":               utils.FormatNumber(len(carts)),
		"total_catalog_value": utils.FormatCurrency(totalCatalogValue),
		"snapshots_removed":   removed,
		"duration":            time.Since(startTime).String(),
	}).Info("Sincronização do snapshot do catálogo concluída")
}

// TriggerManualSync inicia manualmente uma sincronização do snapshot do catálogo
func (s *CatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do snapshot do catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do snapshot do catálogo")
	go s.syncCatalogSnapshot(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
