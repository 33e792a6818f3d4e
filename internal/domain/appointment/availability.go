package appointment

// Reasons a slot is reported unavailable. These are normal outcomes, not errors.
const (
	ReasonPast         = "past_datetime"
	ReasonSlotTaken    = "slot_taken"
	ReasonDayDisabled  = "day_not_enabled"
	ReasonOutsideHours = "outside_working_hours"
	ReasonAvailable    = ""

	MessageAvailable    = "The slot is available."
	MessagePast         = "The selected date and time is in the past."
	MessageSlotTaken    = "The slot is already booked."
	MessageDayDisabled  = "Appointments are not allowed on that day."
	MessageOutsideHours = "The doctor has no working hours at that time."
)

type AvailabilityInput struct {
	Date     string
	Time     string
	DoctorID string
}

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Reason    string `json:"reason,omitempty"`
}

func Available() AvailabilityResult {
	return AvailabilityResult{Available: true, Message: MessageAvailable}
}

func Unavailable(reason, message string) AvailabilityResult {
	return AvailabilityResult{Available: false, Message: message, Reason: reason}
}
