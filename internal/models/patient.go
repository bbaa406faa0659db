package models

import (
	"time"
)

// Patient represents a registered patient.
// MedicalID is the externally assigned identifier, distinct from the
// internal record ID, and must be unique across the registry.
type Patient struct {
	BaseModel
	MedicalID         string     `gorm:"uniqueIndex;size:50;not null" json:"medicalId"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	Age               uint       `gorm:"not null" json:"age"`
	Gender            string     `gorm:"size:20;not null" json:"gender"`
	Mobile            string     `gorm:"size:20;not null" json:"mobile"`
	BloodGroup        string     `gorm:"size:10" json:"bloodGroup,omitempty"`
	DOB               *time.Time `json:"dob,omitempty"`
	Allergies         string     `gorm:"type:text" json:"allergies,omitempty"`
	ChronicConditions string     `gorm:"type:text" json:"chronicConditions,omitempty"`

	// Relations
	History []MedicalHistoryEntry `gorm:"foreignKey:PatientID" json:"medicalHistory,omitempty"`
}

// MedicalHistoryEntry represents one entry of a patient's medical history
type MedicalHistoryEntry struct {
	BaseModel
	PatientID string     `gorm:"size:36;index" json:"patientId"`
	Condition string     `gorm:"size:255" json:"condition"`
	Date      *time.Time `json:"date,omitempty"`
	Notes     string     `gorm:"type:text" json:"notes,omitempty"`
	Position  int        `gorm:"default:0" json:"-"` // preserves entry order
}
