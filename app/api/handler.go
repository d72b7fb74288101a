package api

import (
	"time"

	"elanbot/app/agent"
	"elanbot/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ChatHandler serves the single chat entry point. The assistant itself is
// stateless; one instance is shared by all requests.
type ChatHandler struct {
	assistant *agent.Assistant
}

func NewChatHandler(assistant *agent.Assistant) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var params types.ChatParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	route := agent.Route(params.Message)
	answer := h.assistant.HandleMessage(c.Context(), params.Message, params.History)

	resp := &types.ChatResponse{
		ID:        uuid.New().String(),
		Answer:    answer,
		Route:     route.String(),
		Timestamp: time.Now(),
	}
	return c.JSON(resp)
}
