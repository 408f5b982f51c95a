package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-hours-service/internal/events"
	"github.com/spec-kit/office-hours-service/internal/search"
	"github.com/spec-kit/office-hours-service/pkg/util"
)

// SearchHandler exposes the live typeahead endpoint, which hits the fuzzy
// matcher directly and skips intent classification.
type SearchHandler struct {
	matcher    *search.Matcher
	dispatcher events.Dispatcher
}

// NewSearchHandler constructs handler.
func NewSearchHandler(matcher *search.Matcher, dispatcher events.Dispatcher) *SearchHandler {
	return &SearchHandler{matcher: matcher, dispatcher: dispatcher}
}

// Handle handles GET /search.
func (h *SearchHandler) Handle(c *fiber.Ctx) error {
	name := strings.ToLower(strings.TrimSpace(c.Query("name")))
	if name == "" {
		return util.NewInvalidInput("Missing name parameter")
	}

	people := h.matcher.Search(name)
	_ = h.dispatcher.Publish(c.UserContext(), events.NewSearchPerformed(name, len(people)))

	if len(people) == 0 {
		return util.NewNotFound("No match found")
	}
	return c.JSON(people)
}
