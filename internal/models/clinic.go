package models

// Clinic represents a clinic managed by a doctor or admin user.
// Prescriptions may optionally reference a clinic; when present its name
// and address replace the default letterhead on rendered PDFs.
type Clinic struct {
	BaseModel
	UserID  string `gorm:"size:36;index;not null" json:"userId"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
	Logo    string `gorm:"size:255" json:"logo,omitempty"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
