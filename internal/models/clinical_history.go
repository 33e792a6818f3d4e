package models

import "time"

type ClinicalHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Reason         string     `gorm:"size:255;not null" json:"reason"`
	Diagnosis      string     `gorm:"type:text" json:"diagnosis"`
	Treatment      string     `gorm:"type:text" json:"treatment"`
	Prescription   string     `gorm:"type:text" json:"prescription"`
	FollowUpNeeded bool       `gorm:"default:false" json:"follow_up_needed"`
	FollowUpDate   *time.Time `json:"follow_up_date"`
	Notes          string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
