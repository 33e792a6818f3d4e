package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *logger.Logger
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, log *logger.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	DurationMin int             `json:"duration_min" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty" binding:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		DurationMin: req.DurationMin,
		Price:       req.Price.Round(2),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	recordAudit(h.audit, c, "service_created", "service", &service.ID, nil)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var service models.Service
	err := h.db.WithContext(c.Request.Context()).First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.FromError(c, httperr.ErrNotFound("service_not_found"))
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if anyBlank(req.Name) {
		httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
			return
		}
		service.Price = req.Price.Round(2)
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	recordAudit(h.audit, c, "service_updated", "service", &service.ID, nil)
	httpresp.OK(c, service)
}
