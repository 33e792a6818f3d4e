package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func testClock() timezone.Clock {
	loc := timezone.Location("America/Mexico_City")
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, loc)
	return timezone.Clock{Loc: loc, Now: func() time.Time { return now }}
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func seeded() *mock.Repository {
	repo := mock.NewRepository()
	repo.AddDoctor(models.Doctor{ID: 1, FullName: "Ana Ruiz"})
	repo.AddPatient(models.Patient{ID: 2, FullName: "Luis Pérez"})
	repo.AddService(models.Service{ID: 5, Name: "Echo", DurationMin: 45})
	return repo
}

func TestFeed_SkipsMalformedRows(t *testing.T) {
	repo := seeded()
	repo.AddAppointment(models.Appointment{DoctorID: 1, PatientID: 2, ServiceID: 5, Date: day("2030-03-04"), Time: "10:00", Status: "scheduled"})
	repo.AddAppointment(models.Appointment{DoctorID: 1, PatientID: 2, ServiceID: 5, Date: day("2030-03-05"), Time: "11:00", Status: "completed"})
	repo.AddAppointment(models.Appointment{DoctorID: 1, PatientID: 2, ServiceID: 5, Date: day("2030-03-06"), Time: "ten o'clock", Status: "scheduled"})

	events, err := NewFeed(repo, testClock(), logger.Discard().WithComponent("calendar")).
		Execute(context.Background(), FeedFilter{})

	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestFeed_EventShape(t *testing.T) {
	repo := seeded()
	repo.AddAppointment(models.Appointment{ID: 7, DoctorID: 1, PatientID: 2, ServiceID: 5, Date: day("2030-03-04"), Time: "10:00", Status: "cancelled"})

	events, err := NewFeed(repo, testClock(), logger.Discard().WithComponent("calendar")).
		Execute(context.Background(), FeedFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, uint(7), ev.ID)
	assert.Equal(t, "Luis Pérez - Dr. Ana Ruiz", ev.Title)
	assert.Equal(t, "2030-03-04T10:00:00-06:00", ev.Start)
	assert.Equal(t, "2030-03-04T10:45:00-06:00", ev.End)
	assert.Equal(t, "#dc3545", ev.BackgroundColor)
	assert.Equal(t, "Echo", ev.ExtendedProps.ServiceName)
}

func TestFeed_DefaultsForMissingRelations(t *testing.T) {
	repo := mock.NewRepository()
	repo.AddAppointment(models.Appointment{DoctorID: 3, PatientID: 4, ServiceID: 99, Date: day("2030-03-04"), Time: "09:30", Status: "mystery"})

	events, err := NewFeed(repo, testClock(), logger.Discard().WithComponent("calendar")).
		Execute(context.Background(), FeedFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "Unknown patient - Unknown doctor", events[0].Title)
	assert.Equal(t, "2030-03-04T10:00:00-06:00", events[0].End)
	assert.Equal(t, "#6c757d", events[0].BackgroundColor)
}

func TestFeed_InvalidFilter(t *testing.T) {
	_, err := NewFeed(seeded(), testClock(), logger.Discard().WithComponent("calendar")).
		Execute(context.Background(), FeedFilter{From: "March"})

	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#0d6efd", ColorFor("scheduled"))
	assert.Equal(t, "#ffc107", ColorFor("pending"))
	assert.Equal(t, "#28a745", ColorFor("completed"))
	assert.Equal(t, "#6c757d", ColorFor(""))
}
