package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-hours-service/internal/directory"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	index       *directory.Index
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, index *directory.Index) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, index: index}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. The directory is loaded before the server
// starts listening, so readiness only reports its size.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"directory": fiber.Map{
				"people":      h.index.Len(),
				"departments": len(h.index.Departments()),
			},
		},
	})
}
