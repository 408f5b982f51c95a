package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-hours-service/internal/api/dto"
	"github.com/spec-kit/office-hours-service/internal/events"
	"github.com/spec-kit/office-hours-service/internal/resolver"
	"github.com/spec-kit/office-hours-service/pkg/util"
)

// QueryHandler exposes the conversational query endpoint.
type QueryHandler struct {
	resolver   *resolver.Resolver
	dispatcher events.Dispatcher
}

// NewQueryHandler constructs handler.
func NewQueryHandler(res *resolver.Resolver, dispatcher events.Dispatcher) *QueryHandler {
	return &QueryHandler{resolver: res, dispatcher: dispatcher}
}

// Handle handles GET /query.
func (h *QueryHandler) Handle(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return util.NewInvalidInput("Missing q parameter")
	}

	result, err := h.resolver.Resolve(query, c.Query("context"))
	if err != nil {
		return err
	}

	_ = h.dispatcher.Publish(c.UserContext(), events.NewQueryResolved(query, string(result.Type), result.Matches()))
	return c.JSON(dto.FromResult(result))
}
