package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// first loads one row into dst, mapping "not found" to (false, nil).
func first(q *gorm.DB, dst any) (bool, error) {
	err := q.First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsUniqueViolation reports whether err carries postgres error 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// --------------------------------------------------
// Doctor / Patient
// --------------------------------------------------

func (r *AppointmentGormRepository) FindDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &d)
	if !ok {
		return nil, err
	}
	return &d, nil
}

func (r *AppointmentGormRepository) FindPatient(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &p)
	if !ok {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) FindService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) FindServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var s models.Service
	ok, err := first(r.db.WithContext(ctx).Where("name = ?", name), &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) FirstService(
	ctx context.Context,
) (*models.Service, error) {

	var s models.Service
	ok, err := first(r.db.WithContext(ctx).Order("name ASC").Order("id ASC"), &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) HasSlotConflict(
	ctx context.Context,
	slot domain.Slot,
) (bool, error) {

	var count int64
	if err := r.activeAt(r.db.WithContext(ctx), slot).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) activeAt(q *gorm.DB, slot domain.Slot) *gorm.DB {
	return q.Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND date = ? AND time = ? AND status IN ?",
			slot.DoctorID,
			slot.DateKey(),
			slot.Time,
			domain.ActiveStatusValues(),
		)
}

func (r *AppointmentGormRepository) ListWorkingHours(
	ctx context.Context,
	doctorID uint,
	isoWeekday int,
) ([]models.WorkingHour, error) {

	var hours []models.WorkingHour
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday_id = ?", doctorID, isoWeekday).
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

// CreateAppointment locks any active rows on the slot, re-checks, then inserts.
// The partial unique index catches the race the row lock cannot (no row yet).
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	slot domain.Slot,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Appointment
		if err := r.activeAt(tx, slot).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			return httperr.ErrConflict("time_conflict")
		}

		return tx.Omit(clause.Associations).Create(ap).Error
	})

	if IsUniqueViolation(err) {
		return httperr.ErrConflict("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Appointment (cancel / complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &ap)
	if !ok {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Patient").
		Preload("Service")

	if f.DoctorID != nil {
		q = q.Where("doctor_id = ?", *f.DoctorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("date >= ?", f.From.Format(domain.DateLayout))
	}
	if f.To != nil {
		q = q.Where("date <= ?", f.To.Format(domain.DateLayout))
	}

	var apps []models.Appointment
	if err := q.
		Order("date DESC").
		Order("time DESC").
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
