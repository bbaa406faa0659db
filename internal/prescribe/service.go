package prescribe

import (
	"errors"
	"fmt"
	"time"

	"digital-prescription-server/internal/models"
	"digital-prescription-server/internal/pdf"

	"gorm.io/gorm"
)

// ErrValidation indicates a draft failed submission validation.
var ErrValidation = errors.New("validation failed")

// Service turns submitted drafts into persisted, rendered prescriptions.
type Service struct {
	DB       *gorm.DB
	Renderer *pdf.Renderer
}

// NewService creates a prescription authoring service.
func NewService(db *gorm.DB, renderer *pdf.Renderer) *Service {
	return &Service{DB: db, Renderer: renderer}
}

// Submit validates the draft, persists the prescription, renders its PDF
// and backfills the path. The record is created before rendering, so a
// render failure leaves a persisted prescription without a PDFPath; no
// rollback is attempted and the caller may resubmit.
func (s *Service) Submit(draft Draft, patientID, doctorID string, clinicID *string) (*models.Prescription, error) {
	if patientID == "" {
		return nil, fmt.Errorf("%w: patient is required", ErrValidation)
	}
	if doctorID == "" {
		return nil, fmt.Errorf("%w: doctor is required", ErrValidation)
	}
	for _, med := range draft.Medicines {
		if med.Name == "" {
			return nil, fmt.Errorf("%w: medicine name is required", ErrValidation)
		}
	}

	prescription := models.Prescription{
		DoctorID:     doctorID,
		PatientID:    patientID,
		ClinicID:     clinicID,
		Date:         time.Now(),
		Vitals:       draft.Vitals,
		Diagnosis:    draft.Diagnosis,
		Advice:       draft.Advice,
		FollowUpDate: draft.FollowUpDate,
	}
	for i, c := range draft.Complaints {
		prescription.Complaints = append(prescription.Complaints, models.PrescriptionComplaint{
			Complaint: c.Complaint,
			Duration:  c.Duration,
			Severity:  c.Severity,
			Position:  i,
		})
	}
	for i, m := range draft.Medicines {
		prescription.Medicines = append(prescription.Medicines, models.PrescriptionMedicine{
			Name:         m.Name,
			Strength:     m.Strength,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Route:        m.Route,
			Instructions: m.Instructions,
			Position:     i,
		})
	}
	for i, inv := range draft.Investigations {
		prescription.Investigations = append(prescription.Investigations, models.Investigation{
			TestName: inv.TestName,
			Notes:    inv.Notes,
			Position: i,
		})
	}

	if err := s.DB.Create(&prescription).Error; err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	// Reload with doctor and patient joined in for the PDF letterhead
	full, err := s.loadFull(prescription.ID)
	if err != nil {
		return nil, err
	}

	pdfPath, err := s.Renderer.Render(full)
	if err != nil {
		return nil, err
	}

	// Backfill the path only after the write completed successfully
	if err := s.DB.Model(full).Update("pdf_path", pdfPath).Error; err != nil {
		return nil, fmt.Errorf("failed to record PDF path: %w", err)
	}
	full.PDFPath = pdfPath

	return full, nil
}

// loadFull fetches a prescription with all relations needed for
// rendering and for the API response.
func (s *Service) loadFull(id string) (*models.Prescription, error) {
	var full models.Prescription
	err := s.DB.
		Preload("Doctor").
		Preload("Doctor.User").
		Preload("Patient").
		Preload("Clinic").
		Preload("Complaints", orderByPosition).
		Preload("Medicines", orderByPosition).
		Preload("Investigations", orderByPosition).
		First(&full, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load prescription: %w", err)
	}
	return &full, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
