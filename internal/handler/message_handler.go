package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	messageService service.MessageService
	dev            bool
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService, dev bool) *MessageHandler {
	return &MessageHandler{messageService: messageService, dev: dev}
}

// ContactResponse acknowledges a contact-form submission. Hint is set when
// email delivery was degraded; the message itself is always saved first.
type ContactResponse struct {
	Message        string `json:"message"`
	Hint           string `json:"hint,omitempty"`
	SavedMessageID string `json:"savedMessageId"`
}

// MarkReadRequest toggles the read flag; absent means mark as read.
type MarkReadRequest struct {
	Read *bool `json:"read"`
}

// MessageItemResponse wraps a mutated message.
type MessageItemResponse struct {
	Message string         `json:"message"`
	Item    *model.Message `json:"item"`
	Hint    string         `json:"hint,omitempty"`
}

// Submit godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body service.ContactInput true "Contact payload"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Router /contact [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req service.ContactInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, hint, err := h.messageService.Submit(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, ContactResponse{
		Message:        "Message sent successfully! I'll get back to you soon.",
		Hint:           hint,
		SavedMessageID: msg.ID.String(),
	})
}

// List godoc
// @Summary List inbox messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	msgs, err := h.messageService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.dev)
	}
	return c.JSON(http.StatusOK, msgs)
}

// MarkRead godoc
// @Summary Mark a message read or unread
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body MarkReadRequest false "Read flag, defaults to true"
// @Success 200 {object} MessageItemResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req MarkReadRequest
	// Body is optional for this route; a bind failure just means "no body".
	_ = c.Bind(&req)
	read := true
	if req.Read != nil {
		read = *req.Read
	}

	msg, err := h.messageService.MarkRead(c.Request().Context(), id, read)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, MessageItemResponse{
		Message: "Message updated",
		Item:    msg,
	})
}

// Reply godoc
// @Summary Reply to a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body service.ReplyInput true "Reply payload"
// @Success 200 {object} MessageItemResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.ReplyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, hint, err := h.messageService.Reply(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, MessageItemResponse{
		Message: "Reply sent",
		Item:    msg,
		Hint:    hint,
	})
}

// Delete godoc
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.messageService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Message deleted"})
}
