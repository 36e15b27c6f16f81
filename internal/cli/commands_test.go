package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/utero/internal/api"
	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/services"
	"github.com/terraincognita07/utero/internal/storage"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, time.February, 12, 23, 30, 0, 0, time.UTC)

func newTestRuntime(t *testing.T) (Runtime, *bytes.Buffer) {
	t.Helper()

	store := storage.NewMemoryStore()
	tracker := services.NewTrackerService(
		context.Background(),
		storage.NewPersistentState[[]models.StoredCycle](store, services.CyclesStateKey, zap.NewNop()),
		storage.NewPersistentState[models.DailyLogs](store, services.LogsStateKey, zap.NewNop()),
		nil,
		zap.NewNop(),
	)

	out := &bytes.Buffer{}
	return Runtime{
		Tracker:  tracker,
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
		Out:      out,
	}, out
}

func TestRunPredictCommandWithoutHistory(t *testing.T) {
	runtime, out := newTestRuntime(t)

	if err := RunPredictCommand(runtime, ""); err != nil {
		t.Fatalf("RunPredictCommand returned error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Today:          2024-02-12", "Phase:          No Data", "Cycle day:      -", "Next period:    N/A"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestRunPredictCommandUsesLocationForToday(t *testing.T) {
	runtime, out := newTestRuntime(t)
	location, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	runtime.Location = location

	if err := RunPredictCommand(runtime, ""); err != nil {
		t.Fatalf("RunPredictCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Today:          2024-02-13") {
		t.Fatalf("expected Tokyo calendar date, got:\n%s", out.String())
	}
}

func TestRunLogPeriodThenPredict(t *testing.T) {
	runtime, out := newTestRuntime(t)
	ctx := context.Background()

	if err := RunLogPeriodCommand(ctx, runtime, "2024-01-01", "2024-01-05"); err != nil {
		t.Fatalf("log first period: %v", err)
	}
	if err := RunLogPeriodCommand(ctx, runtime, "2024-01-29", "2024-02-02"); err != nil {
		t.Fatalf("log second period: %v", err)
	}
	if !strings.Contains(out.String(), "✅ Period logged") {
		t.Fatalf("expected append confirmation, got:\n%s", out.String())
	}

	out.Reset()
	if err := RunLogPeriodCommand(ctx, runtime, "2024-02-01", "2024-02-04"); err != nil {
		t.Fatalf("replace latest period: %v", err)
	}
	if !strings.Contains(out.String(), "✅ Latest period updated") || !strings.Contains(out.String(), "2024-02-01 .. 2024-02-04 (4 days)") {
		t.Fatalf("unexpected replace output:\n%s", out.String())
	}

	out.Reset()
	if err := RunPredictCommand(runtime, "2024-02-10"); err != nil {
		t.Fatalf("RunPredictCommand returned error: %v", err)
	}
	for _, want := range []string{"Cycle length:   31 days", "Next period:    2024-03-03", "Ovulation:      2024-02-18"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRunLogPeriodCommandRejectsInvalidInput(t *testing.T) {
	runtime, _ := newTestRuntime(t)
	ctx := context.Background()

	if err := RunLogPeriodCommand(ctx, runtime, "yesterday", "2024-01-05"); err == nil {
		t.Fatal("expected error for malformed start date")
	}
	if err := RunLogPeriodCommand(ctx, runtime, "2024-01-06", "2024-01-05"); !errors.Is(err, services.ErrPeriodStartAfterEnd) {
		t.Fatalf("expected ErrPeriodStartAfterEnd, got %v", err)
	}
}

func TestRunToggleSymptomCommand(t *testing.T) {
	runtime, out := newTestRuntime(t)
	ctx := context.Background()

	if err := RunToggleSymptomCommand(ctx, runtime, "2024-02-10", "Fatigue"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if got := out.String(); got != "2024-02-10: Fatigue\n" {
		t.Fatalf("unexpected output %q", got)
	}

	out.Reset()
	if err := RunToggleSymptomCommand(ctx, runtime, "2024-02-10", "Fatigue"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if got := out.String(); got != "2024-02-10: no symptoms\n" {
		t.Fatalf("unexpected output %q", got)
	}

	err := RunToggleSymptomCommand(ctx, runtime, "2024-02-10", "Sneezing")
	if !errors.Is(err, services.ErrUnknownSymptom) || !strings.Contains(err.Error(), "Tender Breasts") {
		t.Fatalf("expected unknown symptom error listing the catalog, got %v", err)
	}
}

func TestRunTokenCommand(t *testing.T) {
	out := &bytes.Buffer{}
	secret := "0123456789abcdef0123456789abcdef"

	if err := RunTokenCommand(out, "short", time.Hour, fixedNow); err == nil {
		t.Fatal("expected weak secret to be rejected")
	}
	if err := RunTokenCommand(out, secret, time.Hour, fixedNow); err != nil {
		t.Fatalf("RunTokenCommand returned error: %v", err)
	}

	token := strings.TrimSpace(out.String())
	if err := api.ValidateToken([]byte(secret), token, fixedNow.Add(30*time.Minute)); err != nil {
		t.Fatalf("minted token rejected: %v", err)
	}
}

func TestRunSecretCommand(t *testing.T) {
	out := &bytes.Buffer{}
	if err := RunSecretCommand(out, 48); err != nil {
		t.Fatalf("RunSecretCommand returned error: %v", err)
	}
	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, "SECRET_KEY=") || len(line) != len("SECRET_KEY=")+48 {
		t.Fatalf("unexpected secret output %q", line)
	}
}
