package main

import (
	"context"

	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/services"
	"github.com/terraincognita07/utero/internal/storage"
	"go.uber.org/zap"
)

func openTracker(ctx context.Context, config appConfig, observer services.TrackerObserver, logger *zap.Logger) (*services.TrackerService, func() error, error) {
	store, closeStore, err := storage.Open(ctx, config.Store, logger)
	if err != nil {
		return nil, nil, err
	}

	cycleState := storage.NewPersistentState[[]models.StoredCycle](store, services.CyclesStateKey, logger)
	logState := storage.NewPersistentState[models.DailyLogs](store, services.LogsStateKey, logger)
	tracker := services.NewTrackerService(ctx, cycleState, logState, observer, logger)
	return tracker, closeStore, nil
}
