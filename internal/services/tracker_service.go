package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/utero/internal/models"
	"go.uber.org/zap"
)

const (
	CyclesStateKey = "utero-cycles"
	LogsStateKey   = "utero-logs"
)

type CycleState interface {
	Load(ctx context.Context, initial []models.StoredCycle) []models.StoredCycle
	Save(ctx context.Context, value []models.StoredCycle) bool
}

type LogState interface {
	Load(ctx context.Context, initial models.DailyLogs) models.DailyLogs
	Save(ctx context.Context, value models.DailyLogs) bool
}

type TrackerObserver interface {
	PredictionComputed()
	PeriodSaved(replaced bool)
	SymptomToggled()
	StorageFailed(key string)
	CycleRecordsSkipped(count int)
}

// TrackerService owns the in-memory cycle history and symptom log. Every
// change is written through to persisted state; when that write fails the
// in-memory copy stays authoritative for the rest of the process.
type TrackerService struct {
	mu       sync.RWMutex
	cycles   []models.Cycle
	logs     models.DailyLogs
	cycleDB  CycleState
	logDB    LogState
	observer TrackerObserver
	logger   *zap.Logger
	newID    func() string
}

func NewTrackerService(ctx context.Context, cycleState CycleState, logState LogState, observer TrackerObserver, logger *zap.Logger) *TrackerService {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	service := &TrackerService{
		cycleDB:  cycleState,
		logDB:    logState,
		observer: observer,
		logger:   logger,
		newID:    newCycleID,
	}

	stored := cycleState.Load(ctx, []models.StoredCycle{})
	cycles, skipped := decodeStoredCycles(stored, logger)
	observer.CycleRecordsSkipped(skipped)
	service.cycles = SortCycles(cycles)

	service.logs = logState.Load(ctx, models.DailyLogs{})
	if service.logs == nil {
		service.logs = models.DailyLogs{}
	}
	return service
}

func (service *TrackerService) Cycles() []models.Cycle {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return append([]models.Cycle{}, service.cycles...)
}

func (service *TrackerService) DayLog(day time.Time) models.DailyLog {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return DayLog(service.logs, day)
}

func (service *TrackerService) Prediction(today time.Time) CyclePrediction {
	service.mu.RLock()
	cycles := service.cycles
	service.mu.RUnlock()

	prediction := CalculatePredictions(cycles, today)
	service.observer.PredictionComputed()
	return prediction
}

func (service *TrackerService) Calendar(month time.Time, today time.Time) ([]CalendarDay, CyclePrediction) {
	service.mu.RLock()
	cycles := service.cycles
	logs := service.logs
	service.mu.RUnlock()

	prediction := CalculatePredictions(cycles, today)
	service.observer.PredictionComputed()
	return BuildCalendarMonth(month, cycles, prediction, logs, today), prediction
}

func (service *TrackerService) FormDefaults(today time.Time) (time.Time, time.Time) {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return PeriodFormDefaults(service.cycles, today)
}

func (service *TrackerService) Export(from *time.Time, to *time.Time) []ExportEntry {
	service.mu.RLock()
	defer service.mu.RUnlock()
	return BuildExportEntries(service.cycles, service.logs, from, to)
}

// LogPeriod validates the entry and applies the save policy. The bool reports
// whether the latest cycle was replaced rather than a new one appended.
func (service *TrackerService) LogPeriod(ctx context.Context, start time.Time, end time.Time) ([]models.Cycle, bool, error) {
	entry, err := NewPeriodCycle(service.newID(), start, end)
	if err != nil {
		return nil, false, err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	merged, replaced := MergePeriod(service.cycles, entry)
	service.cycles = merged
	if !service.cycleDB.Save(ctx, encodeCycles(merged)) {
		service.observer.StorageFailed(CyclesStateKey)
	}
	service.observer.PeriodSaved(replaced)

	service.logger.Info("period saved",
		zap.String("cycle_id", entry.ID),
		zap.String("start", DayKey(entry.StartDate)),
		zap.String("end", DayKey(entry.EndDate)),
		zap.Bool("replaced", replaced),
	)
	return append([]models.Cycle{}, merged...), replaced, nil
}

func (service *TrackerService) ToggleSymptom(ctx context.Context, day time.Time, symptom models.Symptom) (models.DailyLog, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	updated, err := ToggleSymptom(service.logs, day, symptom)
	if err != nil {
		return models.DailyLog{}, err
	}
	service.logs = updated
	if !service.logDB.Save(ctx, updated) {
		service.observer.StorageFailed(LogsStateKey)
	}
	service.observer.SymptomToggled()
	return DayLog(updated, day), nil
}

func decodeStoredCycles(stored []models.StoredCycle, logger *zap.Logger) ([]models.Cycle, int) {
	cycles := make([]models.Cycle, 0, len(stored))
	skipped := 0
	for _, record := range stored {
		start, startErr := ParseDayKey(record.StartDate)
		end, endErr := ParseDayKey(record.EndDate)
		if startErr != nil || endErr != nil {
			skipped++
			logger.Warn("skipping stored cycle with invalid dates",
				zap.String("cycle_id", record.ID),
				zap.String("start", record.StartDate),
				zap.String("end", record.EndDate),
			)
			continue
		}
		cycles = append(cycles, models.Cycle{ID: record.ID, StartDate: start, EndDate: end})
	}
	return cycles, skipped
}

func encodeCycles(cycles []models.Cycle) []models.StoredCycle {
	stored := make([]models.StoredCycle, 0, len(cycles))
	for _, cycle := range cycles {
		stored = append(stored, models.StoredCycle{
			ID:        cycle.ID,
			StartDate: DayKey(cycle.StartDate),
			EndDate:   DayKey(cycle.EndDate),
		})
	}
	return stored
}

// Cycle ids are time ordered so they still sort by creation.
func newCycleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type noopObserver struct{}

func (noopObserver) PredictionComputed()     {}
func (noopObserver) PeriodSaved(bool)        {}
func (noopObserver) SymptomToggled()         {}
func (noopObserver) StorageFailed(string)    {}
func (noopObserver) CycleRecordsSkipped(int) {}
