// Package mock contains utilities for tests.
package mock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ErrInjected is returned by Repository when Fail is set.
var ErrInjected = errors.New("mock: injected failure")

// Repository is an in-memory domain.Repository. It enforces the active-slot
// uniqueness the database index provides in production.
type Repository struct {
	mu sync.Mutex

	Doctors      map[uint]models.Doctor
	Patients     map[uint]models.Patient
	Services     map[uint]models.Service
	WorkingHours []models.WorkingHour
	Appointments map[uint]*models.Appointment

	// Fail makes every call return ErrInjected.
	Fail bool

	nextID uint
}

func NewRepository() *Repository {
	return &Repository{
		Doctors:      map[uint]models.Doctor{},
		Patients:     map[uint]models.Patient{},
		Services:     map[uint]models.Service{},
		Appointments: map[uint]*models.Appointment{},
		nextID:       1000,
	}
}

// -------- Seeding --------

func (r *Repository) AddDoctor(d models.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Doctors[d.ID] = d
}

func (r *Repository) AddPatient(p models.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Patients[p.ID] = p
}

func (r *Repository) AddService(s models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Services[s.ID] = s
}

func (r *Repository) AddWorkingHour(wh models.WorkingHour) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.WorkingHours = append(r.WorkingHours, wh)
}

func (r *Repository) AddAppointment(ap models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
	}
	r.Appointments[ap.ID] = &ap
}

// Count returns how many appointments are stored.
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Appointments)
}

// -------- domain.Repository --------

func (r *Repository) FindDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	d, ok := r.Doctors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *Repository) FindPatient(_ context.Context, id uint) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	p, ok := r.Patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *Repository) FindService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	s, ok := r.Services[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *Repository) FindServiceByName(_ context.Context, name string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	for _, s := range r.Services {
		if s.Name == name {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *Repository) FirstService(_ context.Context) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	if len(r.Services) == 0 {
		return nil, nil
	}
	all := make([]models.Service, 0, len(r.Services))
	for _, s := range r.Services {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name == all[j].Name {
			return all[i].ID < all[j].ID
		}
		return all[i].Name < all[j].Name
	})
	return &all[0], nil
}

func (r *Repository) HasSlotConflict(_ context.Context, slot domain.Slot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return false, ErrInjected
	}
	return r.conflictLocked(slot), nil
}

func (r *Repository) conflictLocked(slot domain.Slot) bool {
	for _, ap := range r.Appointments {
		if ap.DoctorID == slot.DoctorID &&
			ap.Date.Format(domain.DateLayout) == slot.DateKey() &&
			ap.Time == slot.Time &&
			domain.Status(ap.Status).IsActive() {
			return true
		}
	}
	return false
}

func (r *Repository) ListWorkingHours(_ context.Context, doctorID uint, isoWeekday int) ([]models.WorkingHour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	var out []models.WorkingHour
	for _, wh := range r.WorkingHours {
		if wh.DoctorID == doctorID && int(wh.WeekdayID) == isoWeekday {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (r *Repository) CreateAppointment(_ context.Context, ap *models.Appointment, slot domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrInjected
	}
	if r.conflictLocked(slot) {
		return httperr.ErrConflict("time_conflict")
	}
	r.nextID++
	ap.ID = r.nextID
	stored := *ap
	r.Appointments[ap.ID] = &stored
	return nil
}

func (r *Repository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}
	ap, ok := r.Appointments[id]
	if !ok {
		return nil, nil
	}
	out := *ap
	return &out, nil
}

func (r *Repository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrInjected
	}
	if _, ok := r.Appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	stored := *ap
	r.Appointments[ap.ID] = &stored
	return nil
}

func (r *Repository) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrInjected
	}

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if f.DoctorID != nil && ap.DoctorID != *f.DoctorID {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		day := ap.Date.Format(domain.DateLayout)
		if f.From != nil && day < f.From.Format(domain.DateLayout) {
			continue
		}
		if f.To != nil && day > f.To.Format(domain.DateLayout) {
			continue
		}
		row := *ap
		if d, ok := r.Doctors[row.DoctorID]; ok {
			row.Doctor = d
		}
		if p, ok := r.Patients[row.PatientID]; ok {
			row.Patient = p
		}
		if s, ok := r.Services[row.ServiceID]; ok {
			row.Service = s
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Date.Format(domain.DateLayout), out[j].Date.Format(domain.DateLayout)
		if di != dj {
			return di > dj
		}
		if out[i].Time != out[j].Time {
			return out[i].Time > out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var _ domain.Repository = (*Repository)(nil)

// -------- Slot locker --------

// Locker is an in-memory domain.SlotLocker.
type Locker struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewLocker() *Locker {
	return &Locker{held: map[string]bool{}}
}

// Hold marks a slot as locked by someone else.
func (l *Locker) Hold(slot domain.Slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held[key(slot)] = true
}

func (l *Locker) Acquire(_ context.Context, slot domain.Slot) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key(slot)
	if l.held[k] {
		return nil, false, nil
	}
	l.held[k] = true
	return func() {
		l.mu.Lock()
		delete(l.held, k)
		l.mu.Unlock()
	}, true, nil
}

func key(slot domain.Slot) string {
	return fmt.Sprintf("%d:%s:%s", slot.DoctorID, slot.DateKey(), slot.Time)
}

var _ domain.SlotLocker = (*Locker)(nil)
