package prescribe

import (
	"strings"
	"time"

	"digital-prescription-server/internal/ai"
	"digital-prescription-server/internal/models"
)

// Defaults applied to pre-filled draft lines. The extractor has no
// source value for these, so the merge fills in the common case and the
// user edits from there.
const (
	DefaultRoute        = "Oral"
	DefaultInstructions = "After Food"
	DefaultSeverity     = "Moderate"
)

// DraftComplaint is one editable complaint row on a prescription draft.
type DraftComplaint struct {
	Complaint string `json:"complaint"`
	Duration  string `json:"duration"`
	Severity  string `json:"severity"`
}

// DraftMedicine is one editable medicine row on a prescription draft.
type DraftMedicine struct {
	Name         string `json:"name"`
	Strength     string `json:"strength"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Route        string `json:"route"`
	Instructions string `json:"instructions"`
}

// DraftInvestigation is one recommended test row on a prescription draft.
type DraftInvestigation struct {
	TestName string `json:"testName"`
	Notes    string `json:"notes"`
}

// Draft is the editable form state for a prescription before submission.
// Rows may be freely added or removed; the data model places no minimum.
type Draft struct {
	Vitals         models.Vitals        `json:"vitals"`
	Complaints     []DraftComplaint     `json:"complaints"`
	Medicines      []DraftMedicine      `json:"medicines"`
	Diagnosis      string               `json:"diagnosis"`
	Advice         string               `json:"advice"`
	Investigations []DraftInvestigation `json:"investigations"`
	FollowUpDate   *time.Time           `json:"followUpDate,omitempty"`
}

// NewEmptyDraft returns the starting form state when no extraction
// result is supplied: one empty complaint row, one empty medicine row,
// empty vitals.
func NewEmptyDraft() Draft {
	return Draft{
		Complaints: []DraftComplaint{{}},
		Medicines:  []DraftMedicine{{}},
	}
}

// BuildDraft pre-fills a prescription draft from an extraction result.
// Extracted values are copied verbatim; fields the extractor cannot
// source get their defaults. A nil result yields the empty draft.
func BuildDraft(result *ai.ExtractionResult) Draft {
	if result == nil {
		return NewEmptyDraft()
	}

	draft := Draft{
		Vitals: models.Vitals{
			BP:          result.Vitals.BP.Value,
			Pulse:       result.Vitals.Pulse.Value,
			Temperature: result.Vitals.Temperature.Value,
		},
	}

	for _, c := range result.Complaints {
		complaint, duration := splitComplaint(c.Value)
		draft.Complaints = append(draft.Complaints, DraftComplaint{
			Complaint: complaint,
			Duration:  duration,
			Severity:  DefaultSeverity,
		})
	}

	for _, m := range result.Medicines {
		draft.Medicines = append(draft.Medicines, DraftMedicine{
			Name:         m.Name.Value,
			Strength:     m.Strength.Value,
			Frequency:    m.Frequency.Value,
			Duration:     m.Duration.Value,
			Route:        DefaultRoute,
			Instructions: DefaultInstructions,
		})
	}

	return draft
}

// splitComplaint splits an extracted complaint value on its first hyphen
// into the complaint text and the embedded duration. A value without a
// hyphen is all complaint with an empty duration.
func splitComplaint(value string) (complaint, duration string) {
	before, after, found := strings.Cut(value, "-")
	if !found {
		return strings.TrimSpace(value), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
