package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/utero/internal/models"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ExportEntry is one day that carries data: a logged period day, a day with
// symptoms, or both.
type ExportEntry struct {
	Date     string           `json:"date"`
	Period   bool             `json:"period"`
	Symptoms []models.Symptom `json:"symptoms"`
}

// ExportCSVHeaders lists the fixed columns followed by one column per
// catalog symptom, in catalog order.
func ExportCSVHeaders() []string {
	headers := []string{"Date", "Period"}
	for _, builtin := range models.DefaultBuiltinSymptoms() {
		headers = append(headers, string(builtin.Name))
	}
	return headers
}

func (entry ExportEntry) CSVColumns() []string {
	logged := make(map[models.Symptom]struct{}, len(entry.Symptoms))
	for _, symptom := range entry.Symptoms {
		logged[symptom] = struct{}{}
	}

	columns := []string{entry.Date, csvYesNo(entry.Period)}
	for _, builtin := range models.DefaultBuiltinSymptoms() {
		_, ok := logged[builtin.Name]
		columns = append(columns, csvYesNo(ok))
	}
	return columns
}

// ParseExportRange reads optional YYYY-MM-DD bounds. A nil bound is open.
func ParseExportRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	var from *time.Time
	if fromRaw := strings.TrimSpace(rawFrom); fromRaw != "" {
		parsed, err := ParseDayKey(fromRaw)
		if err != nil {
			return nil, nil, ErrExportFromDateInvalid
		}
		from = &parsed
	}

	var to *time.Time
	if toRaw := strings.TrimSpace(rawTo); toRaw != "" {
		parsed, err := ParseDayKey(toRaw)
		if err != nil {
			return nil, nil, ErrExportToDateInvalid
		}
		to = &parsed
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}

// BuildExportEntries merges period days and symptom logs into one row per
// day, oldest first, limited to the inclusive range.
func BuildExportEntries(cycles []models.Cycle, logs models.DailyLogs, from *time.Time, to *time.Time) []ExportEntry {
	byDay := make(map[string]*ExportEntry)
	entryFor := func(key string) *ExportEntry {
		entry, ok := byDay[key]
		if !ok {
			entry = &ExportEntry{Date: key, Symptoms: []models.Symptom{}}
			byDay[key] = entry
		}
		return entry
	}
	inRange := func(day time.Time) bool {
		if from != nil && day.Before(CalendarDate(*from)) {
			return false
		}
		if to != nil && day.After(CalendarDate(*to)) {
			return false
		}
		return true
	}

	for _, cycle := range SortCycles(cycles) {
		first, last := cycle.StartDate, cycle.EndDate
		if from != nil && first.Before(CalendarDate(*from)) {
			first = CalendarDate(*from)
		}
		if to != nil && last.After(CalendarDate(*to)) {
			last = CalendarDate(*to)
		}
		for day := first; !day.After(last); day = AddDays(day, 1) {
			entryFor(DayKey(day)).Period = true
		}
	}

	for key, entry := range logs {
		day, err := ParseDayKey(key)
		if err != nil || len(entry.Symptoms) == 0 || !inRange(day) {
			continue
		}
		exported := entryFor(DayKey(day))
		exported.Symptoms = append(exported.Symptoms, entry.Symptoms...)
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]ExportEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, *byDay[key])
	}
	return entries
}

func csvYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
