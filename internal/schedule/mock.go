package schedule

import "github.com/JonWolf1234/current-rms-schedule/pkg/models"

// MockSchedule returns the fixed demo payload served when live data is
// unavailable or the service runs in mock mode. The payload is
// hand-authored and deterministic so the front-end calendar always has
// something sensible to render. The source discriminator tells callers
// why they got fallback data.
func MockSchedule(source string) *models.ScheduleResponse {
	jobs := []models.Job{
		{ID: "9001", Name: "Warehouse Prep — Arena Show", StartsAt: "2024-01-02T08:00:00Z", EndsAt: "2024-01-02T17:00:00Z"},
		{ID: "9002", Name: "Load-in — Riverside Festival", StartsAt: "2024-01-03T06:30:00Z", EndsAt: "2024-01-03T14:00:00Z"},
		{ID: "9003", Name: "Corporate AV — Harbour Hotel", StartsAt: "2024-01-04T09:00:00Z", EndsAt: "2024-01-04T18:00:00Z"},
		{ID: "9004", Name: "Load-out — Riverside Festival", StartsAt: "2024-01-05T22:00:00Z", EndsAt: "2024-01-06T02:00:00Z"},
	}

	staff := []models.StaffMember{
		{ID: "501", Name: "Ava Mitchell"},
		{ID: "502", Name: "Ben Okafor"},
		{ID: "503", Name: "Chloe Tan"},
		{ID: "504", Name: "Daniel Reyes"},
	}

	assignments := models.Assignments{
		"9001": {"501", "502"},
		"9002": {"502", "503", "504"},
		"9003": {"501"},
		"9004": {"503", "504"},
	}

	return &models.ScheduleResponse{
		Jobs:        jobs,
		Staff:       staff,
		Assignments: assignments,
		Source:      source,
	}
}
