package schedule

import (
	"testing"

	"github.com/JonWolf1234/current-rms-schedule/pkg/models"
)

func TestJobNameCandidates(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "name preferred over subject",
			raw:  map[string]interface{}{"id": 1.0, "name": "Arena Show", "subject": "ignored"},
			want: "Arena Show",
		},
		{
			name: "subject used when name absent",
			raw:  map[string]interface{}{"id": 55.0, "subject": "Load-in"},
			want: "Load-in",
		},
		{
			name: "empty name falls through to subject",
			raw:  map[string]interface{}{"id": 55.0, "name": "", "subject": "Load-in"},
			want: "Load-in",
		},
		{
			name: "label synthesized when both absent",
			raw:  map[string]interface{}{"id": 55.0},
			want: "Opportunity #55",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Job(tt.raw).Name; got != tt.want {
				t.Errorf("Job().Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobTimestampVariants(t *testing.T) {
	n := NewNormalizer()

	variants := []string{"starts_at", "starts_at_date", "start_at", "starts_at_on"}
	for _, field := range variants {
		raw := map[string]interface{}{"id": 1.0, field: "2024-01-03T10:00:00Z"}
		if got := n.Job(raw).StartsAt; got != "2024-01-03T10:00:00Z" {
			t.Errorf("field %s: StartsAt = %q, want the raw timestamp", field, got)
		}
	}

	// Missing timestamps normalize to empty, never an error.
	job := n.Job(map[string]interface{}{"id": 1.0})
	if job.StartsAt != "" || job.EndsAt != "" {
		t.Errorf("missing timestamps should be empty, got starts=%q ends=%q", job.StartsAt, job.EndsAt)
	}
}

func TestJobIDCanonicalization(t *testing.T) {
	n := NewNormalizer()

	if got := n.Job(map[string]interface{}{"id": 55.0}).ID; got != "55" {
		t.Errorf("numeric id normalized to %q, want %q", got, "55")
	}
	if got := n.Job(map[string]interface{}{"id": "opp-7"}).ID; got != "opp-7" {
		t.Errorf("string id normalized to %q, want %q", got, "opp-7")
	}
}

func TestStaffMemberNameFallbacks(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "first and last joined",
			raw:  map[string]interface{}{"id": 1.0, "first_name": "Ava", "last_name": "Mitchell", "name": "ignored"},
			want: "Ava Mitchell",
		},
		{
			name: "first name only",
			raw:  map[string]interface{}{"id": 1.0, "first_name": "Ava"},
			want: "Ava",
		},
		{
			name: "name field",
			raw:  map[string]interface{}{"id": 1.0, "name": "Ben Okafor"},
			want: "Ben Okafor",
		},
		{
			name: "full_name fallback",
			raw:  map[string]interface{}{"id": 1.0, "full_name": "Chloe Tan"},
			want: "Chloe Tan",
		},
		{
			name: "display_name fallback",
			raw:  map[string]interface{}{"id": 1.0, "display_name": "D. Reyes"},
			want: "D. Reyes",
		},
		{
			name: "company_name fallback",
			raw:  map[string]interface{}{"id": 1.0, "company_name": "Stage Crew Ltd"},
			want: "Stage Crew Ltd",
		},
		{
			name: "label synthesized when nothing present",
			raw:  map[string]interface{}{"id": 9.0},
			want: "Member #9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.StaffMember(tt.raw).Name; got != tt.want {
				t.Errorf("StaffMember().Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()

	rich := map[string]interface{}{
		"id":             55.0,
		"subject":        "Load-in",
		"starts_at_date": "2024-01-03T10:00:00Z",
		"ends_at_date":   "2024-01-03T18:00:00Z",
	}
	first := n.Job(rich)

	// Re-normalizing the canonical form must yield the same output.
	canonical := map[string]interface{}{
		"id":        first.ID,
		"name":      first.Name,
		"starts_at": first.StartsAt,
		"ends_at":   first.EndsAt,
	}
	second := n.Job(canonical)

	if first != second {
		t.Errorf("normalization not idempotent: first %+v, second %+v", first, second)
	}

	want := models.Job{ID: "55", Name: "Load-in", StartsAt: "2024-01-03T10:00:00Z", EndsAt: "2024-01-03T18:00:00Z"}
	if first != want {
		t.Errorf("Job() = %+v, want %+v", first, want)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n := NewNormalizer()
	raw := map[string]interface{}{"id": 3.0, "first_name": "Ava", "last_name": "Mitchell"}

	a := n.StaffMember(raw)
	b := n.StaffMember(raw)
	if a != b {
		t.Errorf("identical input produced different output: %+v vs %+v", a, b)
	}
}
