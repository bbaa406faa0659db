package handlers

import (
	"strings"
	"time"

	"digital-prescription-server/internal/models"
	"digital-prescription-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PatientHandler handles patient registry requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// MedicalHistoryEntryRequest represents one medical history entry in a create request.
type MedicalHistoryEntryRequest struct {
	Condition string `json:"condition" binding:"required"`
	Date      string `json:"date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	MedicalID         string                       `json:"medicalId" binding:"required"`
	Name              string                       `json:"name" binding:"required"`
	Age               *uint                        `json:"age" binding:"required"`
	Gender            string                       `json:"gender" binding:"required"`
	Mobile            string                       `json:"mobile" binding:"required"`
	BloodGroup        string                       `json:"bloodGroup,omitempty"`
	DOB               string                       `json:"dob,omitempty"`
	Allergies         string                       `json:"allergies,omitempty"`
	ChronicConditions string                       `json:"chronicConditions,omitempty"`
	MedicalHistory    []MedicalHistoryEntryRequest `json:"medicalHistory,omitempty"`
}

// CreatePatient handles registering a new patient.
// Fails if a patient with the same medical ID already exists.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Check if patient already exists
	var existingPatient models.Patient
	if err := h.DB.Where("medical_id = ?", req.MedicalID).First(&existingPatient).Error; err == nil {
		utils.BadRequest(c, "Patient already exists")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	patient := models.Patient{
		MedicalID:         req.MedicalID,
		Name:              req.Name,
		Age:               *req.Age,
		Gender:            req.Gender,
		Mobile:            req.Mobile,
		BloodGroup:        req.BloodGroup,
		Allergies:         req.Allergies,
		ChronicConditions: req.ChronicConditions,
	}

	if req.DOB != "" {
		dob, err := time.Parse(time.RFC3339, req.DOB)
		if err != nil {
			utils.BadRequest(c, "Invalid date format for dob. Please use ISO 8601 format (YYYY-MM-DDTHH:MM:SSZ)")
			return
		}
		patient.DOB = &dob
	}

	for i, entry := range req.MedicalHistory {
		historyEntry := models.MedicalHistoryEntry{
			Condition: entry.Condition,
			Notes:     entry.Notes,
			Position:  i,
		}
		if entry.Date != "" {
			date, err := time.Parse(time.RFC3339, entry.Date)
			if err != nil {
				utils.BadRequest(c, "Invalid date format in medical history. Please use ISO 8601 format (YYYY-MM-DDTHH:MM:SSZ)")
				return
			}
			historyEntry.Date = &date
		}
		patient.History = append(patient.History, historyEntry)
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to create patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient registered successfully", patient)
}

// GetPatients handles fetching all patients, optionally filtered by a
// case-insensitive name keyword.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	query := h.DB.Model(&models.Patient{})

	if keyword := c.Query("keyword"); keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID handles fetching a single patient by ID.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}
