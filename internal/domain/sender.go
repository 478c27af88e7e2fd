package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Sender is one persisted contact form submission. Rows are write-once.
type Sender struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessageRequest is the POST /sendMessage/ payload. Fields are pointers
// so an absent field can be told apart from an empty one.
type SendMessageRequest struct {
	Name    *string `json:"name" validate:"required,notblank,max=255"`
	Email   *string `json:"email" validate:"required,notblank,max=254,email"`
	Message *string `json:"message" validate:"required,notblank"`

	nulls map[string]bool
}

// UnmarshalJSON decodes the payload and remembers which keys were an
// explicit null, since both null and absent leave the pointer nil.
func (r *SendMessageRequest) UnmarshalJSON(data []byte) error {
	type plain SendMessageRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	r.nulls = nil
	for key, val := range raw {
		if string(val) == "null" {
			if r.nulls == nil {
				r.nulls = make(map[string]bool)
			}
			r.nulls[key] = true
		}
	}
	return nil
}

// IsNull reports whether field (by JSON name) was sent as an explicit null
func (r *SendMessageRequest) IsNull(field string) bool {
	return r.nulls[field]
}

// Submission is the outcome of a successful SendMessage call.
// NotificationErr is set when the sender was stored but the email relay
// failed; callers log it and still report success.
type Submission struct {
	Sender          *Sender
	NotificationErr error
}

type SenderRepository interface {
	Create(ctx context.Context, sender *Sender) error
}

type MessageUsecase interface {
	// SendMessage validates, stores and relays a contact form submission
	SendMessage(ctx context.Context, req *SendMessageRequest) (*Submission, error)
}
