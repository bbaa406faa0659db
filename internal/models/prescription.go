package models

import (
	"time"
)

// Vitals holds a patient's point-in-time measurements attached to one
// prescription. All fields are free text.
type Vitals struct {
	BP          string `gorm:"size:50" json:"bp,omitempty"`
	Pulse       string `gorm:"size:50" json:"pulse,omitempty"`
	Temperature string `gorm:"size:50" json:"temperature,omitempty"`
	SpO2        string `gorm:"size:50" json:"spo2,omitempty"`
	Weight      string `gorm:"size:50" json:"weight,omitempty"`
	Height      string `gorm:"size:50" json:"height,omitempty"`
}

// Prescription represents a finalized prescription authored by a doctor
// for a patient. The record is created without a PDFPath; the path is
// backfilled once rendering succeeds, so a persisted row with an empty
// PDFPath means the PDF is not yet available, not that an error occurred.
type Prescription struct {
	BaseModel
	DoctorID     string     `gorm:"size:36;index;not null" json:"doctorId"`
	PatientID    string     `gorm:"size:36;index;not null" json:"patientId"`
	ClinicID     *string    `gorm:"size:36" json:"clinicId,omitempty"`
	Date         time.Time  `json:"date"`
	Vitals       Vitals     `gorm:"embedded;embeddedPrefix:vitals_" json:"vitals"`
	Diagnosis    string     `gorm:"type:text" json:"diagnosis,omitempty"`
	Advice       string     `gorm:"type:text" json:"advice,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
	PDFPath      string     `gorm:"size:255" json:"pdfPath,omitempty"`

	// Relations
	Doctor         DoctorProfile           `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient        Patient                 `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Clinic         *Clinic                 `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Complaints     []PrescriptionComplaint `gorm:"foreignKey:PrescriptionID" json:"complaints"`
	Medicines      []PrescriptionMedicine  `gorm:"foreignKey:PrescriptionID" json:"medicines"`
	Investigations []Investigation         `gorm:"foreignKey:PrescriptionID" json:"investigations"`
}

// PrescriptionComplaint represents one presenting complaint line
type PrescriptionComplaint struct {
	BaseModel
	PrescriptionID string `gorm:"size:36;index" json:"-"`
	Complaint      string `gorm:"size:255" json:"complaint"`
	Duration       string `gorm:"size:100" json:"duration,omitempty"`
	Severity       string `gorm:"size:50" json:"severity,omitempty"`
	Position       int    `gorm:"default:0" json:"-"`
}

// PrescriptionMedicine represents one prescribed medicine line
type PrescriptionMedicine struct {
	BaseModel
	PrescriptionID string `gorm:"size:36;index" json:"-"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Strength       string `gorm:"size:100" json:"strength,omitempty"`
	Frequency      string `gorm:"size:100" json:"frequency,omitempty"` // e.g. 1-0-1
	Duration       string `gorm:"size:100" json:"duration,omitempty"`
	Route          string `gorm:"size:50" json:"route,omitempty"`        // Oral, IV
	Instructions   string `gorm:"size:255" json:"instructions,omitempty"` // After Food, etc.
	Position       int    `gorm:"default:0" json:"-"`
}

// Investigation represents one recommended test on a prescription
type Investigation struct {
	BaseModel
	PrescriptionID string `gorm:"size:36;index" json:"-"`
	TestName       string `gorm:"size:255" json:"testName"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`
	Position       int    `gorm:"default:0" json:"-"`
}
