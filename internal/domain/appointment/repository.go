package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository is the storage port used by the appointment use cases.
// Lookups return (nil, nil) when the row does not exist.
type Repository interface {
	// -------- Lookups --------
	FindDoctor(ctx context.Context, id uint) (*models.Doctor, error)
	FindPatient(ctx context.Context, id uint) (*models.Patient, error)
	FindService(ctx context.Context, id uint) (*models.Service, error)
	FindServiceByName(ctx context.Context, name string) (*models.Service, error)
	FirstService(ctx context.Context) (*models.Service, error)

	// -------- Availability --------
	HasSlotConflict(ctx context.Context, slot Slot) (bool, error)
	ListWorkingHours(ctx context.Context, doctorID uint, isoWeekday int) ([]models.WorkingHour, error)

	// -------- Appointment (create) --------
	// CreateAppointment re-checks the slot and inserts atomically. A taken
	// slot is reported as a conflict business error.
	CreateAppointment(ctx context.Context, ap *models.Appointment, slot Slot) error

	// -------- Appointment (state change) --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Listing --------
	ListAppointments(ctx context.Context, filter ListFilter) ([]models.Appointment, error)
}

type ListFilter struct {
	DoctorID *uint
	Status   string
	From     *time.Time // inclusive, by date
	To       *time.Time // inclusive, by date
}

// SlotLocker serialises bookings for the same slot across instances.
type SlotLocker interface {
	// Acquire returns ok=false when another holder owns the slot.
	Acquire(ctx context.Context, slot Slot) (release func(), ok bool, err error)
}
