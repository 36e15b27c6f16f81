package services

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terraincognita07/utero/internal/models"
)

func TestCalculatePredictionsIsOrderIndependent(t *testing.T) {
	history := []models.Cycle{
		makeCycle("c1", "2024-01-02", "2024-01-06"),
		makeCycle("c2", "2024-01-31", "2024-02-03"),
		makeCycle("c3", "2024-02-27", "2024-03-03"),
		makeCycle("c4", "2024-03-27", "2024-03-31"),
		makeCycle("c5", "2024-04-24", "2024-04-29"),
		makeCycle("dup", "2024-04-24", "2024-04-26"),
	}
	today := mustParseDay("2024-05-10")

	want := CalculatePredictions(history, today)
	random := rand.New(rand.NewPCG(7, 11))

	for attempt := 0; attempt < 25; attempt++ {
		shuffled := append([]models.Cycle(nil), history...)
		random.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := CalculatePredictions(shuffled, today)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("attempt %d: prediction changed with input order (-want +got):\n%s", attempt, diff)
		}
	}
}

func TestCalculatePredictionsIsIdempotent(t *testing.T) {
	history := []models.Cycle{
		makeCycle("b", "2024-02-01", "2024-02-04"),
		makeCycle("a", "2024-01-03", "2024-01-07"),
	}
	today := mustParseDay("2024-02-20")

	first := CalculatePredictions(history, today)
	second := CalculatePredictions(history, today)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated call changed the prediction (-first +second):\n%s", diff)
	}

	sorted := SortCycles(history)
	if diff := cmp.Diff(first, CalculatePredictions(sorted, today)); diff != "" {
		t.Fatalf("pre-sorted input changed the prediction (-unsorted +sorted):\n%s", diff)
	}
}

func TestCalculatePredictionsReturnsFreshSlices(t *testing.T) {
	history := []models.Cycle{makeCycle("a", "2024-01-01", "2024-01-05")}
	today := mustParseDay("2024-01-08")

	first := CalculatePredictions(history, today)
	first.PredictedPeriod[0] = mustParseDay("1999-01-01")
	*first.OvulationDay = mustParseDay("1999-01-01")

	second := CalculatePredictions(history, today)
	if got := DayKey(second.PredictedPeriod[0]); got != "2024-01-29" {
		t.Fatalf("expected predicted period to start 2024-01-29, got %s", got)
	}
	if got := DayKey(*second.OvulationDay); got != "2024-01-15" {
		t.Fatalf("expected ovulation on 2024-01-15, got %s", got)
	}
}

func TestSortCyclesBreaksTiesDeterministically(t *testing.T) {
	history := []models.Cycle{
		makeCycle("z", "2024-01-01", "2024-01-05"),
		makeCycle("y", "2024-01-01", "2024-01-03"),
		makeCycle("x", "2024-01-01", "2024-01-05"),
	}

	sorted := SortCycles(history)

	ids := make([]string, 0, len(sorted))
	for _, cycle := range sorted {
		ids = append(ids, cycle.ID)
	}
	if diff := cmp.Diff([]string{"y", "x", "z"}, ids); diff != "" {
		t.Fatalf("unexpected tie order (-want +got):\n%s", diff)
	}
	if history[0].ID != "z" {
		t.Fatalf("expected input left untouched, got %s first", history[0].ID)
	}
}

func TestFertileWindowAlwaysEndsOnOvulation(t *testing.T) {
	histories := [][]models.Cycle{
		{makeCycle("a", "2024-01-01", "2024-01-01")},
		{makeCycle("a", "2024-01-01", "2024-01-10"), makeCycle("b", "2024-01-22", "2024-01-25")},
		{makeCycle("a", "2023-12-15", "2023-12-19"), makeCycle("b", "2024-02-20", "2024-02-24")},
	}

	for index, history := range histories {
		prediction := CalculatePredictions(history, mustParseDay("2024-03-01"))
		if len(prediction.FertileWindow) != 6 || prediction.OvulationDay == nil {
			t.Fatalf("history %d: expected 6 fertile days and an ovulation day, got %+v", index, prediction)
		}
		if !prediction.FertileWindow[5].Equal(*prediction.OvulationDay) {
			t.Fatalf("history %d: fertile window ends %s, ovulation %s", index, DayKey(prediction.FertileWindow[5]), DayKey(*prediction.OvulationDay))
		}
		if len(prediction.PredictedPeriod) != prediction.AveragePeriodLength {
			t.Fatalf("history %d: expected %d predicted days, got %d", index, prediction.AveragePeriodLength, len(prediction.PredictedPeriod))
		}

		next, ok := prediction.NextPeriodStart()
		if !ok {
			t.Fatalf("history %d: expected a next period start", index)
		}
		if gap := DifferenceInDays(*prediction.OvulationDay, next); gap != 14 {
			t.Fatalf("history %d: expected ovulation 14 days before next period, got %d", index, gap)
		}
	}
}
