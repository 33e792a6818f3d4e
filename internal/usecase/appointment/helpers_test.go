package appointment

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const (
	monday   = "2030-03-04"
	saturday = "2030-03-09"
)

// fixedClock is Friday 2030-03-01 10:00 in the clinic timezone.
func fixedClock() timezone.Clock {
	loc := timezone.Location("America/Mexico_City")
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, loc)
	return timezone.Clock{Loc: loc, Now: func() time.Time { return now }}
}

// seededRepo has doctor 1 working Monday 09:00-12:00, patient 2 and one service.
func seededRepo() *mock.Repository {
	repo := mock.NewRepository()
	repo.AddDoctor(models.Doctor{ID: 1, FullName: "Ana Ruiz", Specialty: "Cardiology", LicenseNumber: "L-1"})
	repo.AddPatient(models.Patient{ID: 2, FullName: "Luis Pérez"})
	repo.AddService(models.Service{ID: 5, Name: "Check-up", DurationMin: 20, Price: decimal.NewFromInt(300)})
	repo.AddWorkingHour(models.WorkingHour{ID: 1, DoctorID: 1, WeekdayID: 1, StartTime: "09:00", EndTime: "12:00"})
	repo.AddWorkingHour(models.WorkingHour{ID: 2, DoctorID: 1, WeekdayID: 6, StartTime: "09:00", EndTime: "12:00"})
	return repo
}

func newCreate(repo *mock.Repository, locker domain.SlotLocker, policy *domain.WeekdayPolicy) *CreateAppointment {
	return NewCreateAppointment(
		repo,
		locker,
		policy,
		fixedClock(),
		nil,
		logger.Discard().WithComponent("test"),
		"General Consultation",
	)
}

func appointmentAt(doctorID uint, date, hm, status string) models.Appointment {
	d, _ := time.ParseInLocation(domain.DateLayout, date, timezone.Location("America/Mexico_City"))
	return models.Appointment{DoctorID: doctorID, PatientID: 2, ServiceID: 5, Date: d, Time: hm, Status: status}
}
