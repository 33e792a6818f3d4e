package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListAppointmentsInput struct {
	DoctorID string
	Status   string
	Date     string // single day; overrides From/To
	From     string
	To       string
}

type ListAppointments struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointments(repo domain.Repository, clock timezone.Clock) *ListAppointments {
	return &ListAppointments{repo: repo, clock: clock}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	filter, err := buildFilter(in, uc.clock.Loc)
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date.Format(domain.DateLayout),
			Time:         ap.Time,
			Status:       ap.Status,
			DoctorID:     ap.DoctorID,
			DoctorName:   ap.Doctor.DisplayName(),
			PatientID:    ap.PatientID,
			PatientName:  ap.Patient.FullName,
			ServiceName:  ap.Service.Name,
			ServicePrice: ap.Service.Price,
			Description:  ap.Description,
			CreatedAt:    ap.CreatedAt,
		})
	}
	return out, nil
}

func buildFilter(in ListAppointmentsInput, loc *time.Location) (domain.ListFilter, error) {
	var f domain.ListFilter

	if strings.TrimSpace(in.DoctorID) != "" {
		id, err := domain.ParseID(in.DoctorID, "invalid_doctor_id")
		if err != nil {
			return f, err
		}
		f.DoctorID = &id
	}

	if raw := strings.TrimSpace(in.Status); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return f, err
		}
		f.Status = string(status)
	}

	from, to := in.From, in.To
	if strings.TrimSpace(in.Date) != "" {
		from, to = in.Date, in.Date
	}
	if strings.TrimSpace(from) != "" {
		d, err := domain.ParseDate(from, loc)
		if err != nil {
			return f, err
		}
		f.From = &d
	}
	if strings.TrimSpace(to) != "" {
		d, err := domain.ParseDate(to, loc)
		if err != nil {
			return f, err
		}
		f.To = &d
	}
	return f, nil
}
