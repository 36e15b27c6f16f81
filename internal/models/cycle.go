package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// Cycle is one logged period. StartDate and EndDate are calendar dates at
// UTC midnight; time-of-day is never meaningful.
type Cycle struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
}

// StoredCycle is the persisted shape of a Cycle, dates as YYYY-MM-DD keys.
type StoredCycle struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
