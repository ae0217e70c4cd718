package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JonWolf1234/current-rms-schedule/pkg/models"
)

// Normalizer maps raw Current RMS records into the calendar-facing
// shapes. The remote schema has drifted over time, so each logical
// attribute carries an ordered list of candidate field names; the first
// present non-empty value wins. The lists are plain data so callers and
// tests can substitute their own.
//
// Normalization is pure and deterministic. Missing values degrade to
// empty strings or synthesized labels, never errors.
type Normalizer struct {
	JobNameFields   []string
	JobStartFields  []string
	JobEndFields    []string
	StaffNameFields []string
}

// NewNormalizer returns a Normalizer with the known Current RMS field
// variants.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		JobNameFields:   []string{"name", "subject"},
		JobStartFields:  []string{"starts_at", "starts_at_date", "start_at", "starts_at_on"},
		JobEndFields:    []string{"ends_at", "ends_at_date", "end_at", "ends_at_on"},
		StaffNameFields: []string{"name", "full_name", "display_name", "company_name"},
	}
}

// Job normalizes a raw opportunity record.
func (n *Normalizer) Job(raw map[string]interface{}) models.Job {
	id := canonicalID(raw["id"])

	name := firstNonEmpty(raw, n.JobNameFields)
	if name == "" {
		name = fmt.Sprintf("Opportunity #%s", id)
	}

	return models.Job{
		ID:       id,
		Name:     name,
		StartsAt: firstNonEmpty(raw, n.JobStartFields),
		EndsAt:   firstNonEmpty(raw, n.JobEndFields),
	}
}

// StaffMember normalizes a raw member record.
func (n *Normalizer) StaffMember(raw map[string]interface{}) models.StaffMember {
	id := canonicalID(raw["id"])

	name := joinName(stringValue(raw["first_name"]), stringValue(raw["last_name"]))
	if name == "" {
		name = firstNonEmpty(raw, n.StaffNameFields)
	}
	if name == "" {
		name = fmt.Sprintf("Member #%s", id)
	}

	return models.StaffMember{ID: id, Name: name}
}

// firstNonEmpty tries candidate keys in order and returns the first
// present non-empty string value.
func firstNonEmpty(raw map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if value := stringValue(raw[key]); value != "" {
			return value
		}
	}
	return ""
}

// canonicalID renders a remote-assigned identifier as an opaque string.
// Current RMS sends numeric IDs, which decode from JSON as float64.
func canonicalID(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
