package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"digital-prescription-server/internal/middleware"
	"digital-prescription-server/internal/models"
	"digital-prescription-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DoctorHandler handles doctor profile requests.
type DoctorHandler struct {
	DB        *gorm.DB
	UploadDir string
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB, uploadDir string) *DoctorHandler {
	return &DoctorHandler{DB: db, UploadDir: uploadDir}
}

// UpsertProfile handles creating or updating the authenticated doctor's
// profile. The request is a multipart form: text fields plus optional
// signature and stamp image parts. Image paths are only replaced when
// the corresponding file part is present.
func (h *DoctorHandler) UpsertProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	registrationNumber := c.PostForm("registrationNumber")
	qualification := c.PostForm("qualification")
	specialization := c.PostForm("specialization")
	if registrationNumber == "" || qualification == "" || specialization == "" {
		utils.BadRequest(c, "registrationNumber, qualification and specialization are required")
		return
	}

	var profile models.DoctorProfile
	err := h.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	profile.UserID = userID
	profile.RegistrationNumber = registrationNumber
	profile.Qualification = qualification
	profile.Specialization = specialization
	profile.Contact = c.PostForm("contact")
	profile.ClinicAddress = c.PostForm("clinicAddress")

	// Optional image uploads; omitted parts leave stored paths unchanged
	if signaturePath, err := h.saveUpload(c, "signature"); err != nil {
		utils.InternalServerError(c, "Failed to save signature image: "+err.Error())
		return
	} else if signaturePath != "" {
		profile.SignatureImage = signaturePath
	}
	if stampPath, err := h.saveUpload(c, "stamp"); err != nil {
		utils.InternalServerError(c, "Failed to save stamp image: "+err.Error())
		return
	} else if stampPath != "" {
		profile.StampImage = stampPath
	}

	if err := h.DB.Save(&profile).Error; err != nil {
		utils.InternalServerError(c, "Failed to save doctor profile: "+err.Error())
		return
	}

	utils.Success(c, "Doctor profile saved successfully", profile)
}

// GetProfile handles fetching the authenticated doctor's profile.
func (h *DoctorHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var profile models.DoctorProfile
	if err := h.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor profile not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Doctor profile fetched successfully", profile)
}

// saveUpload stores an optional form file under the doctors upload
// directory and returns its path, or "" when the part is absent.
func (h *DoctorHandler) saveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil // part not supplied
	}

	dir := filepath.Join(h.UploadDir, "doctors")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
