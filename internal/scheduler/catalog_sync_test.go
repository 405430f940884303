package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	fakestoremocks "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/integrator/fakestore/mocks"
	repomocks "github.com/brcanuto/beautybiz-insights-dashboard/infrastructure/repository/mocks"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCatalogSyncServiceSyncCatalogSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := []*domain.Product{
		{ID: 1, Title: "Shampoo", Price: 10.0, Category: "Cabelo"},
		{ID: 2, Title: "Base", Price: 42.9, Category: "Maquiagem"},
	}
	carts := []*domain.Cart{
		{ID: 1, Timestamp: time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name  string
		setup func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository)
	}{
		{
			name: "Sincronização completa salva o snapshot e remove os antigos",
			setup: func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository) {
				integrator.EXPECT().GetProducts(gomock.Any()).Return(products, nil)
				integrator.EXPECT().GetCarts(gomock.Any()).Return(carts, nil)

				// Primeira execução do dia: nenhum snapshot prévio
				repo.EXPECT().GetByDay(gomock.Any()).Return(nil, nil)

				repo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.CatalogSnapshot) error {
						assert.Equal(t, products, snapshot.Products)
						assert.Equal(t, carts, snapshot.Carts)
						assert.False(t, snapshot.Day.IsZero())
						return nil
					})

				repo.EXPECT().DeleteOlderThan(30).Return(int64(2), nil)
			},
		},
		{
			name: "Erro ao buscar produtos aborta sem tocar no banco",
			setup: func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository) {
				integrator.EXPECT().GetProducts(gomock.Any()).Return(nil, errors.New("fonte fora do ar"))
			},
		},
		{
			name: "Erro ao buscar carrinhos aborta sem tocar no banco",
			setup: func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository) {
				integrator.EXPECT().GetProducts(gomock.Any()).Return(products, nil)
				integrator.EXPECT().GetCarts(gomock.Any()).Return(nil, errors.New("fonte fora do ar"))
			},
		},
		{
			name: "Reexecução no mesmo dia sobrescreve o snapshot existente",
			setup: func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository) {
				integrator.EXPECT().GetProducts(gomock.Any()).Return(products, nil)
				integrator.EXPECT().GetCarts(gomock.Any()).Return(carts, nil)
				repo.EXPECT().GetByDay(gomock.Any()).Return(&domain.CatalogSnapshot{ID: 42}, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				repo.EXPECT().DeleteOlderThan(30).Return(int64(0), nil)
			},
		},
		{
			name: "Erro ao consultar o snapshot do dia não impede a gravação",
			setup: func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository) {
				integrator.EXPECT().GetProducts(gomock.Any()).Return(products, nil)
				integrator.EXPECT().GetCarts(gomock.Any()).Return(carts, nil)
				repo.EXPECT().GetByDay(gomock.Any()).Return(nil, errors.New("banco indisponível"))
				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				repo.EXPECT().DeleteOlderThan(30).Return(int64(0), nil)
			},
		},
		{
			name: "Falha na limpeza de snapshots antigos não invalida a sincronização",
			setup: func(integrator *fakestoremocks.MockCatalogIntegrator, repo *repomocks.MockCatalogSnapshotRepository) {
				integrator.EXPECT().GetProducts(gomock.Any()).Return(products, nil)
				integrator.EXPECT().GetCarts(gomock.Any()).Return(carts, nil)
				repo.EXPECT().GetByDay(gomock.Any()).Return(nil, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
				repo.EXPECT().DeleteOlderThan(30).Return(int64(0), errors.New("banco indisponível"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIntegrator := fakestoremocks.NewMockCatalogIntegrator(ctrl)
			mockRepo := repomocks.NewMockCatalogSnapshotRepository(ctrl)
			tt.setup(mockIntegrator, mockRepo)

			service := &CatalogSyncService{
				config: CatalogSyncConfig{
					CronSchedule:  "0 3 * * *",
					RetentionDays: 30,
					SyncEnabled:   true,
				},
				catalogService: mockIntegrator,
				snapshotRepo:   mockRepo,
			}

			service.syncCatalogSnapshot(context.Background())

			// A execução libera o estado de corrida ao terminar
			assert.False(t, service.syncRunning)
			assert.False(t, service.lastSyncCompletedAt.IsZero())
		})
	}
}

func TestCatalogSyncServiceSkipsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := fakestoremocks.NewMockCatalogIntegrator(ctrl)
	mockRepo := repomocks.NewMockCatalogSnapshotRepository(ctrl)

	service := &CatalogSyncService{
		config: CatalogSyncConfig{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 30,
			SyncEnabled:   true,
		},
		catalogService: mockIntegrator,
		snapshotRepo:   mockRepo,
		syncRunning:    true,
	}

	// Com uma execução em andamento, nada é buscado nem persistido
	service.syncCatalogSnapshot(context.Background())

	assert.True(t, service.syncRunning)
}

func TestCatalogSyncServiceGetStatus(t *testing.T) {
	startedAt := time.Date(2022, 6, 1, 3, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(12 * time.Second)

	service := &CatalogSyncService{
		config: CatalogSyncConfig{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 30,
			SyncEnabled:   true,
		},
		lastSyncStartedAt:   startedAt,
		lastSyncCompletedAt: completedAt,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 30, status["retention_days"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
	assert.Equal(t, completedAt, status["last_sync_completed_at"])
}
