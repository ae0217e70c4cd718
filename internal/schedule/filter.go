package schedule

import (
	"time"

	"github.com/JonWolf1234/current-rms-schedule/pkg/models"
)

const dateLayout = "2006-01-02"

// timestampLayouts are the formats Current RMS has been observed to use
// for opportunity timestamps, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05",
	dateLayout,
}

// FilterJobsByRange keeps jobs whose start timestamp falls within the
// inclusive [start, end] calendar-date window, widened to full UTC days
// (start 00:00:00Z through end 23:59:59Z). Jobs whose start timestamp is
// missing or unparseable are excluded. An end date before the start date
// yields an empty result, not an error.
func FilterJobsByRange(jobs []models.Job, start, end string) []models.Job {
	startDay, startErr := time.Parse(dateLayout, start)
	endDay, endErr := time.Parse(dateLayout, end)
	if startErr != nil || endErr != nil {
		return []models.Job{}
	}

	windowStart := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, time.UTC)

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		startsAt, ok := parseTimestamp(job.StartsAt)
		if !ok {
			continue
		}
		startsAt = startsAt.UTC()
		if startsAt.Before(windowStart) || startsAt.After(windowEnd) {
			continue
		}
		filtered = append(filtered, job)
	}

	return filtered
}

// parseTimestamp attempts best-effort parsing of a remote timestamp.
func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
