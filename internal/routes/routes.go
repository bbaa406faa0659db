package routes

import (
	"path/filepath"
	"time"

	"digital-prescription-server/internal/ai"
	"digital-prescription-server/internal/config"
	"digital-prescription-server/internal/handlers"
	"digital-prescription-server/internal/middleware"
	"digital-prescription-server/internal/models"
	"digital-prescription-server/internal/pdf"
	"digital-prescription-server/internal/prescribe"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db, cfg.UploadDir)

	renderer := pdf.NewRenderer(filepath.Join(cfg.UploadDir, "prescriptions"))
	prescriptionHandler := handlers.NewPrescriptionHandler(db, prescribe.NewService(db, renderer))

	extractor := &ai.MockExtractor{Delay: time.Duration(cfg.AIProcessingDelayMs) * time.Millisecond}
	aiHandler := handlers.NewAIHandler(extractor, cfg.UploadDir)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		userRoutes := public.Group("/users")
		{
			userRoutes.POST("/register", authHandler.Register)
			userRoutes.POST("/login", authHandler.Login)
			userRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		userRoutesPrivate := private.Group("/users")
		{
			userRoutesPrivate.POST("/logout", authHandler.Logout)
			userRoutesPrivate.GET("/me", authHandler.GetMe)
		}

		// Patient registry routes (doctors and staff register and look up patients)
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleStaff, models.RoleAdmin), patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
		}

		// Doctor profile routes (profile belongs to the authenticated doctor)
		doctorRoutes := private.Group("/doctors")
		doctorRoutes.Use(middleware.RoleAuthMiddleware(models.RoleDoctor))
		{
			doctorRoutes.POST("/profile", doctorHandler.UpsertProfile)
			doctorRoutes.GET("/profile", doctorHandler.GetProfile)
		}

		// Prescription routes
		prescriptionRoutes := private.Group("/prescriptions")
		{
			prescriptionRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor), prescriptionHandler.CreatePrescription)
			prescriptionRoutes.POST("/prefill", middleware.RoleAuthMiddleware(models.RoleDoctor), prescriptionHandler.PrefillPrescription)
			prescriptionRoutes.GET("/patient/:id", prescriptionHandler.GetPrescriptionsByPatient)
		}

		// AI processing routes
		aiRoutes := private.Group("/ai")
		{
			aiRoutes.POST("/process", aiHandler.ProcessPrescription)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
