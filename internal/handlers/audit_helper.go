package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

// recordAudit queues an audit event attributed to the request's actor.
func recordAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {
	d.Dispatch(audit.Event{
		Actor:    middleware.Actor(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
