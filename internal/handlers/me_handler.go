package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

type MeHandler struct {
	clinicTimezone string
}

func NewMeHandler(clinicTimezone string) *MeHandler {
	return &MeHandler{clinicTimezone: clinicTimezone}
}

// GetMe echoes who the token belongs to and the clinic settings the UI needs.
func (h *MeHandler) GetMe(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"actor":    middleware.Actor(c),
		"role":     c.GetString(middleware.ContextUserRole),
		"timezone": h.clinicTimezone,
	})
}
