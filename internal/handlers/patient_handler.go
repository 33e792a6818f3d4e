package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type PatientHandler struct {
	db    *gorm.DB
	clock timezone.Clock
	audit *audit.Dispatcher
	log   *logger.Logger
}

func NewPatientHandler(db *gorm.DB, clock timezone.Clock, audit *audit.Dispatcher, log *logger.Logger) *PatientHandler {
	return &PatientHandler{db: db, clock: clock, audit: audit, log: log}
}

type PatientRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	BloodType   *string `json:"blood_type,omitempty"`
}

// apply copies the set fields onto p.
func (r PatientRequest) apply(p *models.Patient, clock timezone.Clock) error {
	if r.FullName != nil {
		p.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.DateOfBirth != nil {
		dob, err := parseOptionalDate(*r.DateOfBirth, clock.Loc)
		if err != nil {
			return err
		}
		if dob != nil && dob.After(clock.Current()) {
			return httperr.ErrValidation("invalid_date")
		}
		p.DateOfBirth = dob
	}
	if r.Gender != nil {
		g := strings.ToLower(strings.TrimSpace(*r.Gender))
		if !models.IsValidGender(g) {
			return httperr.ErrValidation("invalid_gender")
		}
		p.Gender = g
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.BloodType != nil {
		p.BloodType = strings.ToUpper(strings.TrimSpace(*r.BloodType))
	}
	return nil
}

func (h *PatientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", like, like)
	}

	var patients []models.Patient
	if err := q.Order("full_name ASC").Find(&patients).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	patient, ok := h.load(c, id)
	if !ok {
		return
	}
	httpresp.OK(c, patient)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req PatientRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.FullName == nil || strings.TrimSpace(*req.FullName) == "" {
		httperr.FromError(c, httperr.ErrValidation("missing_fields"))
		return
	}

	var patient models.Patient
	if err := req.apply(&patient, h.clock); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&patient).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	recordAudit(h.audit, c, "patient_created", "patient", &patient.ID, nil)
	httpresp.Created(c, patient)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	patient, ok := h.load(c, id)
	if !ok {
		return
	}

	var req PatientRequest
	if !bindJSON(c, &req) {
		return
	}
	if anyBlank(req.FullName) {
		httperr.FromError(c, httperr.ErrValidation("missing_fields"))
		return
	}
	if err := req.apply(patient, h.clock); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(patient).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	recordAudit(h.audit, c, "patient_updated", "patient", &patient.ID, nil)
	httpresp.OK(c, patient)
}

// Delete cascades to the patient's appointments.
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Patient{}, id)
	if res.Error != nil {
		respondError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.FromError(c, httperr.ErrNotFound("patient_not_found"))
		return
	}

	recordAudit(h.audit, c, "patient_deleted", "patient", &id, nil)
	httpresp.NoContent(c)
}

func (h *PatientHandler) load(c *gin.Context, id uint) (*models.Patient, bool) {
	var patient models.Patient
	err := h.db.WithContext(c.Request.Context()).First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrNotFound("patient_not_found"))
		return nil, false
	}
	if err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	return &patient, true
}
