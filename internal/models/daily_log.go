package models

// DailyLog holds the symptom tags logged for one calendar day.
type DailyLog struct {
	Symptoms []Symptom `json:"symptoms"`
}

// DailyLogs is keyed by YYYY-MM-DD.
type DailyLogs map[string]DailyLog
