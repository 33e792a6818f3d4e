package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	ucCalendar "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/calendar"
)

type CalendarHandler struct {
	feed   *ucCalendar.Feed
	export *ucCalendar.Export
	audit  *audit.Dispatcher
	log    *logger.Logger
}

func NewCalendarHandler(
	feed *ucCalendar.Feed,
	export *ucCalendar.Export,
	audit *audit.Dispatcher,
	log *logger.Logger,
) *CalendarHandler {
	return &CalendarHandler{feed: feed, export: export, audit: audit, log: log}
}

func feedFilter(c *gin.Context) ucCalendar.FeedFilter {
	return ucCalendar.FeedFilter{
		DoctorID: c.Query("doctor_id"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}
}

func (h *CalendarHandler) Events(c *gin.Context) {
	events, err := h.feed.Execute(c.Request.Context(), feedFilter(c))
	if err != nil {
		respondFlagged(c, h.log, "success", err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarFeed{
		Success: true,
		Events:  events,
		Count:   len(events),
	})
}

func (h *CalendarHandler) Export(c *gin.Context) {
	res, err := h.export.Execute(c.Request.Context(), feedFilter(c))
	if err != nil {
		respondFlagged(c, h.log, "success", err)
		return
	}

	recordAudit(h.audit, c, "calendar_exported", "calendar", nil, map[string]any{
		"key":   res.Key,
		"count": res.Count,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"key":     res.Key,
		"count":   res.Count,
	})
}

