package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingResult is the denormalised summary returned after a successful booking.
type BookingResult struct {
	AppointmentID uint   `json:"appointment_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	DoctorName    string `json:"doctor_name"`
	PatientName   string `json:"patient_name"`
	ServiceName   string `json:"service_name"`
	Status        string `json:"status"`
}

type AppointmentListDTO struct {
	ID           uint            `json:"id"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Status       string          `json:"status"`
	DoctorID     uint            `json:"doctor_id"`
	DoctorName   string          `json:"doctor_name"`
	PatientID    uint            `json:"patient_id"`
	PatientName  string          `json:"patient_name"`
	ServiceName  string          `json:"service_name"`
	ServicePrice decimal.Decimal `json:"service_price"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}
