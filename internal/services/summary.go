package services

import "time"

// Summary holds the raw values behind the dashboard cards. Labels and
// formatting are left to the caller so they can be localized.
type Summary struct {
	DayOfCycle          *int
	AveragePeriodLength int
	NextPeriodStart     *time.Time
	AverageCycleLength  int
	Phase               Phase
}

func BuildSummary(prediction CyclePrediction) Summary {
	summary := Summary{
		AveragePeriodLength: prediction.AveragePeriodLength,
		AverageCycleLength:  prediction.AverageCycleLength,
		Phase:               prediction.CurrentPhase,
	}
	if prediction.DayOfCycle != nil {
		day := *prediction.DayOfCycle
		summary.DayOfCycle = &day
	}
	if next, ok := prediction.NextPeriodStart(); ok {
		summary.NextPeriodStart = &next
	}
	return summary
}
