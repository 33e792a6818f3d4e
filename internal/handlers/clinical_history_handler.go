package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ClinicalHistoryHandler struct {
	db    *gorm.DB
	clock timezone.Clock
	audit *audit.Dispatcher
	log   *logger.Logger
}

func NewClinicalHistoryHandler(db *gorm.DB, clock timezone.Clock, audit *audit.Dispatcher, log *logger.Logger) *ClinicalHistoryHandler {
	return &ClinicalHistoryHandler{db: db, clock: clock, audit: audit, log: log}
}

type CreateClinicalHistoryRequest struct {
	AppointmentID  uint   `json:"appointment_id" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	Diagnosis      string `json:"diagnosis"`
	Treatment      string `json:"treatment"`
	Prescription   string `json:"prescription"`
	FollowUpNeeded bool   `json:"follow_up_needed"`
	FollowUpDate   string `json:"follow_up_date"`
	Notes          string `json:"notes"`
}

// Create attaches the single clinical history of a completed appointment.
func (h *ClinicalHistoryHandler) Create(c *gin.Context) {
	var req CreateClinicalHistoryRequest
	if !bindJSON(c, &req) {
		return
	}

	followUp, err := parseOptionalDate(req.FollowUpDate, h.clock.Loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	history := models.ClinicalHistory{
		AppointmentID:  req.AppointmentID,
		Reason:         strings.TrimSpace(req.Reason),
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
		Prescription:   req.Prescription,
		FollowUpNeeded: req.FollowUpNeeded,
		FollowUpDate:   followUp,
		Notes:          req.Notes,
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.Select("id", "status").First(&ap, req.AppointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("appointment_not_found")
			}
			return err
		}
		if domain.Status(ap.Status) != domain.StatusCompleted {
			return httperr.ErrState("appointment_not_done")
		}

		var count int64
		if err := tx.Model(&models.ClinicalHistory{}).
			Where("appointment_id = ?", req.AppointmentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrConflict("history_exists")
		}

		return tx.Omit("Appointment").Create(&history).Error
	})
	if repository.IsUniqueViolation(err) {
		err = httperr.ErrConflict("history_exists")
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	recordAudit(h.audit, c, "clinical_history_created", "clinical_history", &history.ID, map[string]any{
		"appointment_id": history.AppointmentID,
	})
	httpresp.Created(c, history)
}

func (h *ClinicalHistoryHandler) GetByAppointment(c *gin.Context) {
	appointmentID, ok := pathID(c, "appointmentId")
	if !ok {
		return
	}

	var history models.ClinicalHistory
	err := h.db.WithContext(c.Request.Context()).
		Where("appointment_id = ?", appointmentID).
		First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrNotFound("history_not_found"))
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, history)
}
