package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	check    *ucAppointment.CheckAvailability
	create   *ucAppointment.CreateAppointment
	list     *ucAppointment.ListAppointments
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	log      *logger.Logger
}

func NewAppointmentHandler(
	check *ucAppointment.CheckAvailability,
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	log *logger.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		check:    check,
		create:   create,
		list:     list,
		cancel:   cancel,
		complete: complete,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckAvailabilityRequest struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	DoctorID idField `json:"doctor_id"`
}

type CreateAppointmentRequest struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	DoctorID    idField `json:"doctor_id"`
	PatientID   idField `json:"patient_id"`
	ServiceID   idField `json:"service_id"`
	Description string  `json:"description"`
}

// ======================================================
// CHECK
// ======================================================

// Check answers 200 for both available and unavailable slots.
func (h *AppointmentHandler) Check(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFlagged(c, h.log, "available", err)
		return
	}

	res, err := h.check.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:     req.Date,
		Time:     req.Time,
		DoctorID: req.DoctorID.String(),
	})
	if err != nil {
		respondFlagged(c, h.log, "available", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFlagged(c, h.log, "success", err)
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:        req.Date,
		Time:        req.Time,
		DoctorID:    req.DoctorID.String(),
		PatientID:   req.PatientID.String(),
		ServiceID:   req.ServiceID.String(),
		Description: req.Description,
		Actor:       middleware.Actor(c),
	})
	if err != nil {
		respondFlagged(c, h.log, "success", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment booked.",
		"appointment": res,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		DoctorID: c.Query("doctor_id"),
		Status:   c.Query("status"),
		Date:     c.Query("date"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

