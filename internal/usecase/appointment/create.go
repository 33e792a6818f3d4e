package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Date      string
	Time      string
	DoctorID  string
	PatientID string
	ServiceID string // optional

	Description string
	Actor       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker domain.SlotLocker
	policy *domain.WeekdayPolicy
	clock  timezone.Clock
	audit  *audit.Dispatcher
	log    *logrus.Entry

	defaultServiceName string
}

func NewCreateAppointment(
	repo domain.Repository,
	locker domain.SlotLocker,
	policy *domain.WeekdayPolicy,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *logrus.Entry,
	defaultServiceName string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:               repo,
		locker:             locker,
		policy:             policy,
		clock:              clock,
		audit:              audit,
		log:                log,
		defaultServiceName: defaultServiceName,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.BookingResult, error) {

	res, err := uc.book(ctx, in)

	outcome := "created"
	if err != nil {
		outcome = "error"
		if be, ok := httperr.AsBusiness(err); ok {
			outcome = be.Code
		}
	}
	metrics.BookingAttempted(outcome)

	return res, err
}

func (uc *CreateAppointment) book(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.BookingResult, error) {

	// --------------------------------------------------
	// 1️⃣ Presence + format
	// --------------------------------------------------
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, httperr.ErrValidation("missing_fields")
	}
	slot, err := parseSlot(in.Date, in.Time, in.DoctorID, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	patientID, err := domain.ParseID(in.PatientID, "invalid_patient_id")
	if err != nil {
		return nil, err
	}
	var serviceID uint
	if strings.TrimSpace(in.ServiceID) != "" {
		if serviceID, err = domain.ParseID(in.ServiceID, "invalid_service_id"); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Past (hard failure when booking)
	// --------------------------------------------------
	if slot.IsPast(uc.clock.Current()) {
		return nil, httperr.ErrValidation("past_datetime")
	}

	// --------------------------------------------------
	// 3️⃣ Doctor + patient
	// --------------------------------------------------
	doctor, err := uc.repo.FindDoctor(ctx, slot.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	if doctor == nil {
		return nil, httperr.ErrNotFound("doctor_not_found")
	}

	patient, err := uc.repo.FindPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if patient == nil {
		return nil, httperr.ErrNotFound("patient_not_found")
	}

	// --------------------------------------------------
	// 4️⃣ Service
	// --------------------------------------------------
	service, err := uc.resolveService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Slot lock
	// --------------------------------------------------
	release, ok, err := uc.locker.Acquire(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("acquire slot lock: %w", err)
	}
	if !ok {
		return nil, httperr.ErrConflict("slot_locked")
	}
	defer release()

	// --------------------------------------------------
	// 6️⃣ Conflict
	// --------------------------------------------------
	taken, err := uc.repo.HasSlotConflict(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("slot conflict: %w", err)
	}
	if taken {
		return nil, httperr.ErrConflict("time_conflict")
	}

	// --------------------------------------------------
	// 7️⃣ Weekday + working hours
	// --------------------------------------------------
	reason, err := scheduleReason(ctx, uc.repo, uc.policy, slot)
	if err != nil {
		return nil, err
	}
	if reason != domain.ReasonAvailable {
		return nil, httperr.ErrValidation(reason)
	}

	// --------------------------------------------------
	// 8️⃣ Insert (re-checked atomically by the repository)
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ServiceID:   service.ID,
		Date:        slot.Date,
		Time:        slot.Time,
		Description: strings.TrimSpace(in.Description),
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap, slot); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			return nil, err
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// --------------------------------------------------
	// 9️⃣ Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctor_id": doctor.ID,
			"date":      slot.DateKey(),
			"time":      slot.Time,
		},
	})

	uc.log.WithFields(logrus.Fields{
		"appointment_id": ap.ID,
		"doctor_id":      doctor.ID,
		"date":           slot.DateKey(),
		"time":           slot.Time,
	}).Info("appointment booked")

	return &dto.BookingResult{
		AppointmentID: ap.ID,
		Date:          slot.DateKey(),
		Time:          slot.Time,
		DoctorName:    doctor.DisplayName(),
		PatientName:   patient.FullName,
		ServiceName:   service.Name,
		Status:        ap.Status,
	}, nil
}

// resolveService returns the requested service, or the configured default,
// or the first service by name. It never creates one.
func (uc *CreateAppointment) resolveService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	if serviceID != 0 {
		s, err := uc.repo.FindService(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("find service: %w", err)
		}
		if s == nil {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		return s, nil
	}

	if uc.defaultServiceName != "" {
		s, err := uc.repo.FindServiceByName(ctx, uc.defaultServiceName)
		if err != nil {
			return nil, fmt.Errorf("find default service: %w", err)
		}
		if s != nil {
			return s, nil
		}
	}

	s, err := uc.repo.FirstService(ctx)
	if err != nil {
		return nil, fmt.Errorf("first service: %w", err)
	}
	if s == nil {
		return nil, httperr.ErrNotFound("no_service_available")
	}
	return s, nil
}
