package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName      string `gorm:"size:255;not null" json:"full_name"`
	Specialty     string `gorm:"size:100;not null" json:"specialty"`
	LicenseNumber string `gorm:"size:50;uniqueIndex;not null" json:"license_number"`
	Phone         string `gorm:"size:20" json:"phone"`
	Bio           string `gorm:"type:text" json:"bio"`

	WorkingHours []WorkingHour `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"working_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is how the doctor appears in summaries and calendar titles.
func (d Doctor) DisplayName() string {
	if d.FullName == "" {
		return ""
	}
	return "Dr. " + d.FullName
}
