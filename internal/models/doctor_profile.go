package models

// DoctorProfile represents the professional profile of a doctor account.
// Exactly one profile exists per owning user (UserID is unique); profile
// submissions after the first update the existing row in place.
type DoctorProfile struct {
	BaseModel
	UserID             string `gorm:"uniqueIndex;size:36;not null" json:"userId"`
	RegistrationNumber string `gorm:"size:100;not null" json:"registrationNumber"`
	Qualification      string `gorm:"size:255;not null" json:"qualification"`
	Specialization     string `gorm:"size:255;not null" json:"specialization"`
	Contact            string `gorm:"size:100" json:"contact,omitempty"`
	ClinicAddress      string `gorm:"size:255" json:"clinicAddress,omitempty"`
	SignatureImage     string `gorm:"size:255" json:"signatureImage,omitempty"` // path to uploaded image
	StampImage         string `gorm:"size:255" json:"stampImage,omitempty"`     // path to uploaded image

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
