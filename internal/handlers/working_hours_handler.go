package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *logger.Logger
}

func NewWorkingHoursHandler(db *gorm.DB, audit *audit.Dispatcher, log *logger.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: audit, log: log}
}

type WorkingWindow struct {
	WeekdayID int    `json:"weekday_id" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingHoursUpdateRequest struct {
	Windows []WorkingWindow `json:"windows" binding:"dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	doctorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var hours []models.WorkingHour
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Weekday").
		Where("doctor_id = ?", doctorID).
		Order("weekday_id ASC").
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, hours)
}

// Update replaces all windows of a doctor in one transaction.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	doctorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	toCreate := make([]models.WorkingHour, 0, len(req.Windows))
	for _, w := range req.Windows {
		start, end, err := domain.ValidateWindow(w.StartTime, w.EndTime)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		toCreate = append(toCreate, models.WorkingHour{
			DoctorID:  doctorID,
			WeekdayID: uint(w.WeekdayID),
			StartTime: start,
			EndTime:   end,
		})
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.Select("id").First(&doctor, doctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("doctor_not_found")
			}
			return err
		}

		if err := tx.Where("doctor_id = ?", doctorID).Delete(&models.WorkingHour{}).Error; err != nil {
			return err
		}

		if len(toCreate) == 0 {
			return nil
		}
		return tx.Omit("Weekday").Create(&toCreate).Error
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	recordAudit(h.audit, c, "working_hours_replaced", "doctor", &doctorID, map[string]any{"windows": len(toCreate)})
	httpresp.List(c, toCreate)
}
