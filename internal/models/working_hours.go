package models

import "time"

type WorkingHour struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index:idx_working_hours_doctor_day;not null" json:"doctor_id"`

	WeekdayID uint    `gorm:"index:idx_working_hours_doctor_day;not null" json:"weekday_id"`
	Weekday   Weekday `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
