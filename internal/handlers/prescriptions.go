package handlers

import (
	"errors"
	"log"
	"time"

	"digital-prescription-server/internal/ai"
	"digital-prescription-server/internal/middleware"
	"digital-prescription-server/internal/models"
	"digital-prescription-server/internal/pdf"
	"digital-prescription-server/internal/prescribe"
	"digital-prescription-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PrescriptionHandler handles prescription authoring and lookup requests.
type PrescriptionHandler struct {
	DB      *gorm.DB
	Service *prescribe.Service
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(db *gorm.DB, service *prescribe.Service) *PrescriptionHandler {
	return &PrescriptionHandler{DB: db, Service: service}
}

// CreatePrescriptionRequest represents the request body for creating a prescription.
type CreatePrescriptionRequest struct {
	Patient        string                         `json:"patient" binding:"required"`
	Clinic         string                         `json:"clinic,omitempty"`
	Vitals         models.Vitals                  `json:"vitals"`
	Complaints     []prescribe.DraftComplaint     `json:"complaints"`
	Medicines      []prescribe.DraftMedicine      `json:"medicines"`
	Diagnosis      string                         `json:"diagnosis,omitempty"`
	Advice         string                         `json:"advice,omitempty"`
	Investigations []prescribe.DraftInvestigation `json:"investigations,omitempty"`
	FollowUpDate   string                         `json:"followUpDate,omitempty"`
}

// CreatePrescription handles creating a new prescription for the
// authenticated doctor. The record is persisted, its PDF rendered
// synchronously, and the PDF path backfilled before responding.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	// The authoring doctor must have a profile before prescribing
	var doctor models.DoctorProfile
	if err := h.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor profile not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	draft := prescribe.Draft{
		Vitals:         req.Vitals,
		Complaints:     req.Complaints,
		Medicines:      req.Medicines,
		Diagnosis:      req.Diagnosis,
		Advice:         req.Advice,
		Investigations: req.Investigations,
	}
	if req.FollowUpDate != "" {
		followUp, err := time.Parse(time.RFC3339, req.FollowUpDate)
		if err != nil {
			utils.BadRequest(c, "Invalid date format for followUpDate. Please use ISO 8601 format (YYYY-MM-DDTHH:MM:SSZ)")
			return
		}
		draft.FollowUpDate = &followUp
	}

	var clinicID *string
	if req.Clinic != "" {
		clinicID = &req.Clinic
	}

	prescription, err := h.Service.Submit(draft, req.Patient, doctor.ID, clinicID)
	if err != nil {
		switch {
		case errors.Is(err, prescribe.ErrValidation):
			utils.BadRequest(c, err.Error())
		case errors.Is(err, pdf.ErrRenderFailed):
			log.Printf("prescription PDF render failed: %v", err)
			utils.InternalServerError(c, "Failed to generate prescription PDF")
		default:
			log.Printf("prescription creation failed: %v", err)
			utils.InternalServerError(c, "Failed to create prescription")
		}
		return
	}

	utils.Created(c, "Prescription created successfully", prescription)
}

// PrefillPrescription builds a prescription draft from an extraction
// result so the client can pre-populate the authoring form. An empty
// body yields the empty starting draft.
func (h *PrescriptionHandler) PrefillPrescription(c *gin.Context) {
	var draft prescribe.Draft
	if c.Request.ContentLength == 0 {
		draft = prescribe.BuildDraft(nil)
	} else {
		var result ai.ExtractionResult
		if err := c.ShouldBindJSON(&result); err != nil {
			utils.BadRequest(c, "Invalid request payload: "+err.Error())
			return
		}
		draft = prescribe.BuildDraft(&result)
	}

	utils.Success(c, "Prescription draft built successfully", draft)
}

// GetPrescriptionsByPatient handles fetching all prescriptions for a
// patient, most recent first, with doctor data joined in.
func (h *PrescriptionHandler) GetPrescriptionsByPatient(c *gin.Context) {
	patientID := c.Param("id")

	var prescriptions []models.Prescription
	err := h.DB.
		Preload("Doctor").
		Preload("Doctor.User").
		Preload("Complaints", orderByPosition).
		Preload("Medicines", orderByPosition).
		Preload("Investigations", orderByPosition).
		Where("patient_id = ?", patientID).
		Order("date desc").
		Find(&prescriptions).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch prescriptions: "+err.Error())
		return
	}

	utils.Success(c, "Prescriptions fetched successfully", prescriptions)
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
