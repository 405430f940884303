package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/brcanuto/beautybiz-insights-dashboard/internal/scheduler"
	"github.com/brcanuto/beautybiz-insights-dashboard/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	CatalogSyncService *scheduler.CatalogSyncService
}

// RunCatalogSync dispara manualmente a sincronização do snapshot do catálogo
func RunCatalogSync(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCatalogSync")

		if services.CatalogSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do catálogo não disponível", nil)
			return
		}

		services.CatalogSyncService.TriggerManualSync()

		response := map[string]any{
			"message": "Sincronização do catálogo iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

// GetCatalogSyncStatus retorna o status do agendador de snapshot do catálogo
func GetCatalogSyncStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCatalogSyncStatus")

		if services.CatalogSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do catálogo não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.CatalogSyncService.GetStatus())
	})
}
