package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName    string     `gorm:"size:255;not null" json:"full_name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender      string     `gorm:"size:10" json:"gender"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Address     string     `gorm:"type:text" json:"address"`
	BloodType   string     `gorm:"size:3" json:"blood_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidGender(g string) bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
