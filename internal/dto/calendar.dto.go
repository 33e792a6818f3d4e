package dto

type CalendarEventProps struct {
	Status      string `json:"status"`
	DoctorID    uint   `json:"doctor_id"`
	PatientID   uint   `json:"patient_id"`
	ServiceName string `json:"service_name"`
	Description string `json:"description"`
}

// CalendarEvent is shaped for calendar widgets: ISO start/end and a colour per status.
type CalendarEvent struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Start           string             `json:"start"`
	End             string             `json:"end"`
	BackgroundColor string             `json:"backgroundColor"`
	BorderColor     string             `json:"borderColor"`
	ExtendedProps   CalendarEventProps `json:"extendedProps"`
}

type CalendarFeed struct {
	Success bool            `json:"success"`
	Events  []CalendarEvent `json:"events"`
	Count   int             `json:"count"`
}
