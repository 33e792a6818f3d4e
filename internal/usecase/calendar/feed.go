package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const (
	defaultDuration = 30 * time.Minute

	unknownPatient = "Unknown patient"
	unknownDoctor  = "Unknown doctor"
	unknownColor   = "#6c757d"
)

var statusColors = map[domain.Status]string{
	domain.StatusScheduled:  "#0d6efd",
	domain.StatusPending:    "#ffc107",
	domain.StatusInProgress: "#17a2b8",
	domain.StatusCompleted:  "#28a745",
	domain.StatusCancelled:  "#dc3545",
	domain.StatusNoShow:     "#6c757d",
}

// ColorFor maps a status to its calendar colour; unknown statuses are grey.
func ColorFor(status string) string {
	if c, ok := statusColors[domain.Status(status)]; ok {
		return c
	}
	return unknownColor
}

type FeedFilter struct {
	DoctorID string
	From     string
	To       string
}

type Feed struct {
	repo  domain.Repository
	clock timezone.Clock
	log   *logrus.Entry
}

func NewFeed(repo domain.Repository, clock timezone.Clock, log *logrus.Entry) *Feed {
	return &Feed{repo: repo, clock: clock, log: log}
}

// Execute builds one event per appointment. Rows that cannot be turned into
// an event are logged and skipped; they never fail the feed.
func (f *Feed) Execute(ctx context.Context, in FeedFilter) ([]dto.CalendarEvent, error) {
	filter, err := f.filter(in)
	if err != nil {
		return nil, err
	}

	apps, err := f.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	events := make([]dto.CalendarEvent, 0, len(apps))
	for i := range apps {
		ev, err := f.toEvent(&apps[i])
		if err != nil {
			f.log.WithError(err).
				WithField("appointment_id", apps[i].ID).
				Warn("skipping calendar row")
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (f *Feed) filter(in FeedFilter) (domain.ListFilter, error) {
	var lf domain.ListFilter
	if in.DoctorID != "" {
		id, err := domain.ParseID(in.DoctorID, "invalid_doctor_id")
		if err != nil {
			return lf, err
		}
		lf.DoctorID = &id
	}
	if in.From != "" {
		d, err := domain.ParseDate(in.From, f.clock.Loc)
		if err != nil {
			return lf, err
		}
		lf.From = &d
	}
	if in.To != "" {
		d, err := domain.ParseDate(in.To, f.clock.Loc)
		if err != nil {
			return lf, err
		}
		lf.To = &d
	}
	return lf, nil
}

func (f *Feed) toEvent(ap *models.Appointment) (dto.CalendarEvent, error) {
	if ap.Date.IsZero() {
		return dto.CalendarEvent{}, fmt.Errorf("appointment %d has no date", ap.ID)
	}

	slot, err := domain.NewSlot(ap.DoctorID, ap.Date.Format(domain.DateLayout), ap.Time, f.clock.Loc)
	if err != nil {
		return dto.CalendarEvent{}, fmt.Errorf("appointment %d: %w", ap.ID, err)
	}

	dur := defaultDuration
	if ap.Service.DurationMin > 0 {
		dur = time.Duration(ap.Service.DurationMin) * time.Minute
	}

	color := ColorFor(ap.Status)

	return dto.CalendarEvent{
		ID:              ap.ID,
		Title:           eventTitle(ap),
		Start:           slot.Start.Format(time.RFC3339),
		End:             slot.Start.Add(dur).Format(time.RFC3339),
		BackgroundColor: color,
		BorderColor:     color,
		ExtendedProps: dto.CalendarEventProps{
			Status:      ap.Status,
			DoctorID:    ap.DoctorID,
			PatientID:   ap.PatientID,
			ServiceName: ap.Service.Name,
			Description: ap.Description,
		},
	}, nil
}

func eventTitle(ap *models.Appointment) string {
	patient := ap.Patient.FullName
	if patient == "" {
		patient = unknownPatient
	}
	doctor := ap.Doctor.DisplayName()
	if doctor == "" {
		doctor = unknownDoctor
	}
	return patient + " - " + doctor
}
