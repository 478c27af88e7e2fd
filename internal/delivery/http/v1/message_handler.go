package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const MessageSentText = "Message sent successfully!"

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

// NewMessageHandler registers the contact form route (public, no auth)
func NewMessageHandler(r gin.IRoutes, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{
		messageUC: messageUC,
	}

	r.POST("/sendMessage/", handler.SendMessage)
}

// SendMessage godoc
// @Summary      Send a contact message
// @Description  Stores a contact form submission and relays it to the site owner by email. Email failures do not fail the request.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message  body      domain.SendMessageRequest  true  "Contact form data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /sendMessage/ [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(decodeError(err))
		return
	}

	// An empty body is treated like {}; json.Unmarshal rejects trailing data
	var req domain.SendMessageRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			c.Error(decodeError(err))
			return
		}
	}

	if _, err := h.messageUC.SendMessage(c.Request.Context(), &req); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.Error(validationErr)
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, MessageSentText, nil)
}

// decodeError maps a JSON decoding failure onto field errors
func decodeError(err error) *domain.ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &domain.ValidationError{Fields: map[string][]string{
			typeErr.Field: {"Not a valid string."},
		}}
	}
	return &domain.ValidationError{Fields: map[string][]string{
		"non_field_errors": {"JSON parse error."},
	}}
}
