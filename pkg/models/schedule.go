package models

// Schedule data sources reported in the response `source` field so the
// front-end can tell live data apart from fallback data.
const (
	SourceCurrentRMS = "current-rms"
	SourceMock       = "mock"
	SourceMockError  = "mock-error"
)

// Job is the calendar-facing shape of a Current RMS opportunity.
// Timestamps are passed through as the remote supplied them; a missing
// timestamp is an empty string, never an error.
type Job struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

// StaffMember is the calendar-facing shape of a Current RMS member.
type StaffMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Assignments maps a job ID to the staff member IDs booked on it. Every
// job in a schedule response has an entry, possibly empty.
type Assignments map[string][]string

// ScheduleResponse is the payload of GET /api/schedule.
type ScheduleResponse struct {
	Jobs        []Job         `json:"jobs"`
	Staff       []StaffMember `json:"staff"`
	Assignments Assignments   `json:"assignments"`
	Source      string        `json:"source"`
}
