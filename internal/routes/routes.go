package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucCalendar "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/calendar"
)

// Deps are the singletons built in main and shared by every route.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *logger.Logger
	Clock    timezone.Clock
	Repo     domain.Repository
	Locker   domain.SlotLocker
	Policy   *domain.WeekdayPolicy
	Audit    *audit.Dispatcher
	Uploader storage.Uploader // nil disables calendar export
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		metrics.GinMiddleware(),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins),
	)

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	checkAvailabilityUC := ucAppointment.NewCheckAvailability(
		d.Repo,
		d.Policy,
		d.Clock,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Repo,
		d.Locker,
		d.Policy,
		d.Clock,
		d.Audit,
		d.Log.WithComponent("booking"),
		d.Config.DefaultServiceName,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(d.Repo, d.Clock)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.Repo, d.Clock, d.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(d.Repo, d.Clock, d.Audit)

	// ======================================================
	// 🧠 USE CASES (CALENDAR)
	// ======================================================
	feedUC := ucCalendar.NewFeed(d.Repo, d.Clock, d.Log.WithComponent("calendar"))
	exportUC := ucCalendar.NewExport(feedUC, d.Uploader, d.Config.S3.Prefix, d.Clock)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		checkAvailabilityUC,
		createAppointmentUC,
		listAppointmentsUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		d.Log,
	)
	calendarHandler := handlers.NewCalendarHandler(feedUC, exportUC, d.Audit, d.Log)

	meHandler := handlers.NewMeHandler(d.Config.ClinicTimezone)
	doctorHandler := handlers.NewDoctorHandler(d.DB, d.Audit, d.Log)
	patientHandler := handlers.NewPatientHandler(d.DB, d.Clock, d.Audit, d.Log)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit, d.Log)
	weekdayHandler := handlers.NewWeekdayHandler(d.DB, d.Policy, d.Audit, d.Log)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.DB, d.Audit, d.Log)
	clinicalHistoryHandler := handlers.NewClinicalHistoryHandler(d.DB, d.Clock, d.Audit, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Log)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🔐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.Config))
	{
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments/check", appointmentHandler.Check)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/calendar/events", calendarHandler.Events)
		api.POST("/calendar/export", calendarHandler.Export)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.POST("/doctors", doctorHandler.Create)
		api.GET("/doctors/:id", doctorHandler.Get)
		api.PATCH("/doctors/:id", doctorHandler.Update)
		api.DELETE("/doctors/:id", doctorHandler.Delete)

		api.GET("/working-hours/:id", workingHoursHandler.Get)
		api.PUT("/working-hours/:id", workingHoursHandler.Update)

		api.GET("/patients", patientHandler.List)
		api.POST("/patients", patientHandler.Create)
		api.GET("/patients/:id", patientHandler.Get)
		api.PATCH("/patients/:id", patientHandler.Update)
		api.DELETE("/patients/:id", patientHandler.Delete)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)

		api.GET("/weekdays", weekdayHandler.List)
		api.PATCH("/weekdays/:id", weekdayHandler.Update)

		api.POST("/clinical-histories", clinicalHistoryHandler.Create)
		api.GET("/clinical-histories/:appointmentId", clinicalHistoryHandler.GetByAppointment)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
