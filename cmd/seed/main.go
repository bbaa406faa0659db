// Command seed populates the database with sample data for development.
// It runs as a separate process with no shared runtime state with the
// API server.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"digital-prescription-server/internal/config"
	"digital-prescription-server/internal/models"
)

func main() {
	destroy := flag.Bool("destroy", false, "wipe all data without seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := wipe(db); err != nil {
		log.Fatalf("Error clearing data: %v", err)
	}
	if *destroy {
		log.Println("Data destroyed")
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("Error seeding data: %v", err)
	}
	log.Println("Data imported")
}

func wipe(db *gorm.DB) error {
	tables := []interface{}{
		&models.Investigation{},
		&models.PrescriptionMedicine{},
		&models.PrescriptionComplaint{},
		&models.Prescription{},
		&models.MedicalHistoryEntry{},
		&models.Patient{},
		&models.Clinic{},
		&models.DoctorProfile{},
		&models.RefreshToken{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seed(db *gorm.DB) error {
	admin := models.User{Name: "System Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	if err := admin.SetPassword("password123"); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	doctor := models.User{Name: "John Doe", Email: "doctor@example.com", Role: models.RoleDoctor}
	if err := doctor.SetPassword("password123"); err != nil {
		return err
	}
	if err := db.Create(&doctor).Error; err != nil {
		return err
	}

	staff := models.User{Name: "Nurse Mary", Email: "staff@example.com", Role: models.RoleStaff}
	if err := staff.SetPassword("password123"); err != nil {
		return err
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}

	profile := models.DoctorProfile{
		UserID:             doctor.ID,
		RegistrationNumber: "REG12345",
		Qualification:      "MBBS, MD",
		Specialization:     "Cardiology",
		Contact:            "555-0123",
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	patient := models.Patient{
		MedicalID:         "P001",
		Name:              "Alice Smith",
		Age:               34,
		Gender:            "Female",
		Mobile:            "555-9876",
		BloodGroup:        "O+",
		Allergies:         "Peanuts",
		ChronicConditions: "None",
	}
	return db.Create(&patient).Error
}
