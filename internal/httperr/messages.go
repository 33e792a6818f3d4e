package httperr

var messages = map[string]string{
	"missing_fields":               "Date, time and doctor are required.",
	"invalid_request":              "Invalid request data.",
	"invalid_date":                 "Invalid date format, expected YYYY-MM-DD.",
	"invalid_time":                 "Invalid time format, expected HH:MM.",
	"invalid_doctor_id":            "Invalid doctor identifier.",
	"invalid_patient_id":           "Invalid patient identifier.",
	"invalid_service_id":           "Invalid service identifier.",
	"invalid_id":                   "Invalid identifier.",
	"invalid_status":               "Invalid appointment status.",
	"invalid_gender":               "Invalid gender.",
	"invalid_weekday":              "Weekday must be between 1 (Monday) and 7 (Sunday).",
	"invalid_time_window":          "Working hour start must be before its end.",
	"invalid_state":                "The appointment cannot change to that status.",
	"past_datetime":                "The selected date and time is in the past.",
	"doctor_not_found":             "Doctor not found.",
	"patient_not_found":            "Patient not found.",
	"service_not_found":            "Service not found.",
	"appointment_not_found":        "Appointment not found.",
	"history_not_found":            "Clinical history not found.",
	"weekday_not_found":            "Weekday not found.",
	"no_service_available":         "No service is configured for bookings.",
	"time_conflict":                "The slot is already booked.",
	"slot_locked":                  "The slot is being booked by another request.",
	"license_taken":                "A doctor with that license number already exists.",
	"history_exists":               "The appointment already has a clinical history.",
	"appointment_not_done":         "Clinical history requires a completed appointment.",
	"day_not_enabled":              "Appointments are not allowed on that day.",
	"outside_working_hours":        "The doctor has no working hours at that time.",
	"export_disabled":              "Calendar export is not configured.",
	"missing_authorization_header": "Authentication required.",
	"invalid_authorization_header": "Authentication required.",
	"invalid_token":                "Authentication required.",
	"invalid_token_claims":         "Authentication required.",
	"invalid_token_payload":        "Authentication required.",
	"internal_error":               "Unexpected error, please try again.",
}

// Message returns the user-facing text for a business code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
