package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terraincognita07/utero/internal/api"
	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/security"
	"github.com/terraincognita07/utero/internal/services"
)

// Runtime is what the offline commands need from the process: the tracker
// backed by the configured store and the clock used to resolve "today".
type Runtime struct {
	Tracker  *services.TrackerService
	Location *time.Location
	Now      func() time.Time
	Out      io.Writer
}

func (runtime Runtime) today(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) != "" {
		day, err := services.ParseDayKey(raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		return day, nil
	}
	now := time.Now
	if runtime.Now != nil {
		now = runtime.Now
	}
	return services.LocalToday(now(), runtime.Location), nil
}

func RunPredictCommand(runtime Runtime, todayRaw string) error {
	today, err := runtime.today(todayRaw)
	if err != nil {
		return err
	}

	prediction := runtime.Tracker.Prediction(today)
	out := runtime.Out

	fmt.Fprintf(out, "Today:          %s\n", services.DayKey(today))
	fmt.Fprintf(out, "Phase:          %s\n", prediction.CurrentPhase.Name)
	fmt.Fprintf(out, "                %s\n", prediction.CurrentPhase.Description)
	if prediction.DayOfCycle != nil {
		fmt.Fprintf(out, "Cycle day:      %d\n", *prediction.DayOfCycle)
	} else {
		fmt.Fprintln(out, "Cycle day:      -")
	}
	fmt.Fprintf(out, "Cycle length:   %d days\n", prediction.AverageCycleLength)
	fmt.Fprintf(out, "Period length:  %d days\n", prediction.AveragePeriodLength)
	if next, ok := prediction.NextPeriodStart(); ok {
		fmt.Fprintf(out, "Next period:    %s\n", services.DayKey(next))
	} else {
		fmt.Fprintln(out, "Next period:    N/A")
	}
	if prediction.OvulationDay != nil {
		fmt.Fprintf(out, "Ovulation:      %s\n", services.DayKey(*prediction.OvulationDay))
	}
	if len(prediction.FertileWindow) > 0 {
		first := prediction.FertileWindow[0]
		last := prediction.FertileWindow[len(prediction.FertileWindow)-1]
		fmt.Fprintf(out, "Fertile window: %s .. %s\n", services.DayKey(first), services.DayKey(last))
	}
	return nil
}

func RunLogPeriodCommand(ctx context.Context, runtime Runtime, startRaw string, endRaw string) error {
	start, err := services.ParseDayKey(startRaw)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startRaw, err)
	}
	end, err := services.ParseDayKey(endRaw)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endRaw, err)
	}

	cycles, replaced, err := runtime.Tracker.LogPeriod(ctx, start, end)
	if err != nil {
		return err
	}

	if replaced {
		fmt.Fprintln(runtime.Out, "✅ Latest period updated")
	} else {
		fmt.Fprintln(runtime.Out, "✅ Period logged")
	}
	for _, cycle := range cycles {
		fmt.Fprintf(runtime.Out, "  %s .. %s (%d days)\n", services.DayKey(cycle.StartDate), services.DayKey(cycle.EndDate), services.PeriodLength(cycle))
	}
	return nil
}

func RunToggleSymptomCommand(ctx context.Context, runtime Runtime, dayRaw string, symptom string) error {
	day, err := services.ParseDayKey(dayRaw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dayRaw, err)
	}

	entry, err := runtime.Tracker.ToggleSymptom(ctx, day, models.Symptom(strings.TrimSpace(symptom)))
	if errors.Is(err, services.ErrUnknownSymptom) {
		return fmt.Errorf("%w %q (known: %s)", err, symptom, strings.Join(knownSymptomNames(), ", "))
	}
	if err != nil {
		return err
	}

	if len(entry.Symptoms) == 0 {
		fmt.Fprintf(runtime.Out, "%s: no symptoms\n", services.DayKey(day))
		return nil
	}
	names := make([]string, 0, len(entry.Symptoms))
	for _, logged := range entry.Symptoms {
		names = append(names, string(logged))
	}
	fmt.Fprintf(runtime.Out, "%s: %s\n", services.DayKey(day), strings.Join(names, ", "))
	return nil
}

func RunTokenCommand(out io.Writer, secretKey string, ttl time.Duration, now time.Time) error {
	if err := security.ValidateSecretKey(secretKey); err != nil {
		return err
	}
	token, err := api.BuildToken([]byte(secretKey), ttl, now)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(out, token)
	return nil
}

func RunSecretCommand(out io.Writer, length int) error {
	secret, err := security.GenerateSecretKey(length)
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}
	fmt.Fprintf(out, "SECRET_KEY=%s\n", secret)
	return nil
}

func knownSymptomNames() []string {
	builtins := models.DefaultBuiltinSymptoms()
	names := make([]string, 0, len(builtins))
	for _, builtin := range builtins {
		names = append(names, string(builtin.Name))
	}
	return names
}
