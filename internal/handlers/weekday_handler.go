package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// WeekdayHandler edits the clinic-wide weekday switches and keeps the
// in-memory policy used by bookings in step with the table.
type WeekdayHandler struct {
	db     *gorm.DB
	policy *domain.WeekdayPolicy
	audit  *audit.Dispatcher
	log    *logger.Logger
}

func NewWeekdayHandler(db *gorm.DB, policy *domain.WeekdayPolicy, audit *audit.Dispatcher, log *logger.Logger) *WeekdayHandler {
	return &WeekdayHandler{db: db, policy: policy, audit: audit, log: log}
}

type UpdateWeekdayRequest struct {
	Status *bool `json:"status" binding:"required"`
}

func (h *WeekdayHandler) List(c *gin.Context) {
	var days []models.Weekday
	if err := h.db.WithContext(c.Request.Context()).Order("id ASC").Find(&days).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, days)
}

func (h *WeekdayHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if id > 7 {
		httperr.FromError(c, httperr.ErrValidation("invalid_weekday"))
		return
	}

	var req UpdateWeekdayRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Weekday{}).
		Where("id = ?", id).
		Update("status", *req.Status)
	if res.Error != nil {
		respondError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.FromError(c, httperr.ErrNotFound("weekday_not_found"))
		return
	}

	h.policy.Set(int(id), *req.Status)

	recordAudit(h.audit, c, "weekday_updated", "weekday", &id, map[string]any{"status": *req.Status})
	httpresp.OK(c, models.Weekday{ID: id, Day: domain.WeekdayName(int(id)), Status: *req.Status})
}
