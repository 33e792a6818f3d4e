package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DoctorHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *logger.Logger
}

func NewDoctorHandler(db *gorm.DB, audit *audit.Dispatcher, log *logger.Logger) *DoctorHandler {
	return &DoctorHandler{db: db, audit: audit, log: log}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Specialty     string `json:"specialty" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Phone         string `json:"phone"`
	Bio           string `json:"bio"`
}

type UpdateDoctorRequest struct {
	FullName      *string `json:"full_name,omitempty"`
	Specialty     *string `json:"specialty,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Bio           *string `json:"bio,omitempty"`
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var doctors []models.Doctor
	if err := q.Order("full_name ASC").Find(&doctors).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	err := h.db.WithContext(c.Request.Context()).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday_id ASC, start_time ASC")
		}).
		First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrNotFound("doctor_not_found"))
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor := models.Doctor{
		FullName:      strings.TrimSpace(req.FullName),
		Specialty:     strings.TrimSpace(req.Specialty),
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
		Phone:         req.Phone,
		Bio:           req.Bio,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&doctor).Error; err != nil {
		h.writeFailure(c, err)
		return
	}

	recordAudit(h.audit, c, "doctor_created", "doctor", &doctor.ID, nil)
	httpresp.Created(c, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	err := h.db.WithContext(c.Request.Context()).First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrNotFound("doctor_not_found"))
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req UpdateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}
	if anyBlank(req.FullName, req.Specialty, req.LicenseNumber) {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	if req.FullName != nil {
		doctor.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Specialty != nil {
		doctor.Specialty = strings.TrimSpace(*req.Specialty)
	}
	if req.LicenseNumber != nil {
		doctor.LicenseNumber = strings.TrimSpace(*req.LicenseNumber)
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&doctor).Error; err != nil {
		h.writeFailure(c, err)
		return
	}

	recordAudit(h.audit, c, "doctor_updated", "doctor", &doctor.ID, nil)
	httpresp.OK(c, doctor)
}

// Delete cascades to the doctor's working hours and appointments.
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Doctor{}, id)
	if res.Error != nil {
		respondError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.FromError(c, httperr.ErrNotFound("doctor_not_found"))
		return
	}

	recordAudit(h.audit, c, "doctor_deleted", "doctor", &id, nil)
	httpresp.NoContent(c)
}

func (h *DoctorHandler) writeFailure(c *gin.Context, err error) {
	if repository.IsUniqueViolation(err) {
		httperr.FromError(c, httperr.ErrConflict("license_taken"))
		return
	}
	respondError(c, h.log, err)
}
