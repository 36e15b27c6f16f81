package services

import (
	"math"
	"sort"
	"time"

	"github.com/terraincognita07/utero/internal/models"
)

const (
	lutealPhaseDays   = 14
	fertileWindowDays = 6
)

type Phase struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	PhaseNoData = Phase{
		Key:         "no_data",
		Name:        "No Data",
		Description: "Log your first period to get started.",
	}
	PhaseFollicular = Phase{
		Key:         "follicular",
		Name:        "Follicular Phase",
		Description: "Your body is preparing for ovulation. Estrogen levels rise.",
	}
	PhaseFertile = Phase{
		Key:         "fertile",
		Name:        "Fertile Window",
		Description: "The best time to conceive. You may feel more energetic.",
	}
	PhaseOvulation = Phase{
		Key:         "ovulation",
		Name:        "Ovulation",
		Description: "Your ovary releases an egg. Peak fertility.",
	}
	PhaseLuteal = Phase{
		Key:         "luteal",
		Name:        "Luteal Phase",
		Description: "Progesterone levels rise. You might experience PMS symptoms.",
	}
	PhaseMenstruation = Phase{
		Key:         "menstruation",
		Name:        "Menstruation",
		Description: "Your period. The uterine lining is shedding. Rest and take it easy.",
	}
)

// CyclePrediction is recomputed from the full history on every call and never
// mutated afterwards.
type CyclePrediction struct {
	AverageCycleLength  int
	AveragePeriodLength int
	PredictedPeriod     []time.Time
	FertileWindow       []time.Time
	OvulationDay        *time.Time
	CurrentPhase        Phase
	DayOfCycle          *int
}

// NextPeriodStart is the first predicted period day, if any.
func (prediction CyclePrediction) NextPeriodStart() (time.Time, bool) {
	if len(prediction.PredictedPeriod) == 0 {
		return time.Time{}, false
	}
	return prediction.PredictedPeriod[0], true
}

// CalculatePredictions maps a cycle history to a forward prediction relative
// to today. Input order does not matter and the input slice is not modified.
func CalculatePredictions(cycles []models.Cycle, today time.Time) CyclePrediction {
	if len(cycles) == 0 {
		return CyclePrediction{
			AverageCycleLength:  models.DefaultCycleLength,
			AveragePeriodLength: models.DefaultPeriodLength,
			PredictedPeriod:     []time.Time{},
			FertileWindow:       []time.Time{},
			CurrentPhase:        PhaseNoData,
		}
	}

	sorted := SortCycles(cycles)
	averageCycleLength := averageCycleLength(sorted)
	averagePeriodLength := averagePeriodLength(sorted)

	lastPeriodStart := sorted[len(sorted)-1].StartDate
	nextPeriodStart := AddDays(lastPeriodStart, averageCycleLength)
	predictedPeriod := consecutiveDays(nextPeriodStart, averagePeriodLength)

	// The luteal offset is fixed and does not follow the average cycle length.
	ovulationDay := AddDays(nextPeriodStart, -lutealPhaseDays)
	fertileWindow := consecutiveDays(AddDays(ovulationDay, -(fertileWindowDays-1)), fertileWindowDays)

	day := CalendarDate(today)
	dayOfCycle := DifferenceInDays(lastPeriodStart, day) + 1

	phase := derivePhase(phaseInput{
		today:           day,
		cycles:          sorted,
		fertileWindow:   fertileWindow,
		ovulationDay:    ovulationDay,
		nextPeriodStart: nextPeriodStart,
	})

	return CyclePrediction{
		AverageCycleLength:  averageCycleLength,
		AveragePeriodLength: averagePeriodLength,
		PredictedPeriod:     predictedPeriod,
		FertileWindow:       fertileWindow,
		OvulationDay:        &ovulationDay,
		CurrentPhase:        phase,
		DayOfCycle:          &dayOfCycle,
	}
}

// SortCycles returns a copy ordered by start date with dates reduced to
// calendar days. Ties fall back to end date and id so the order is stable
// across input permutations.
func SortCycles(cycles []models.Cycle) []models.Cycle {
	sorted := make([]models.Cycle, 0, len(cycles))
	for _, cycle := range cycles {
		sorted = append(sorted, models.Cycle{
			ID:        cycle.ID,
			StartDate: CalendarDate(cycle.StartDate),
			EndDate:   CalendarDate(cycle.EndDate),
		})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		}
		if !sorted[i].EndDate.Equal(sorted[j].EndDate) {
			return sorted[i].EndDate.Before(sorted[j].EndDate)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// PeriodLength counts both endpoints.
func PeriodLength(cycle models.Cycle) int {
	return DifferenceInDays(cycle.StartDate, cycle.EndDate) + 1
}

func averageCycleLength(sorted []models.Cycle) int {
	if len(sorted) < 2 {
		return models.DefaultCycleLength
	}
	total := 0
	for i := 0; i < len(sorted)-1; i++ {
		total += DifferenceInDays(sorted[i].StartDate, sorted[i+1].StartDate)
	}
	return roundAverage(total, len(sorted)-1)
}

func averagePeriodLength(sorted []models.Cycle) int {
	total := 0
	for _, cycle := range sorted {
		total += PeriodLength(cycle)
	}
	return roundAverage(total, len(sorted))
}

func roundAverage(total int, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}

func consecutiveDays(start time.Time, count int) []time.Time {
	if count < 0 {
		count = 0
	}
	days := make([]time.Time, 0, count)
	for offset := 0; offset < count; offset++ {
		days = append(days, AddDays(start, offset))
	}
	return days
}

func containsDay(days []time.Time, day time.Time) bool {
	for _, candidate := range days {
		if candidate.Equal(day) {
			return true
		}
	}
	return false
}

func inAnyCycle(cycles []models.Cycle, day time.Time) bool {
	for _, cycle := range cycles {
		if betweenInclusive(day, cycle.StartDate, cycle.EndDate) {
			return true
		}
	}
	return false
}
