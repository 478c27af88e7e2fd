package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	NotificationSubject = "Portfolio Contact Message"
	notificationBody    = "Sender's Name: %s\nSender's Email: %s\nMessage: %s"
)

// Mailer is the outbound transport used for contact notifications
type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

type messageUsecase struct {
	senderRepo domain.SenderRepository
	mailer     Mailer
	validate   *validator.Validate
	fromEmail  string
	toEmail    string
	log        *slog.Logger
}

// NewMessageUsecase creates a new contact message usecase. Notification
// addresses are taken from cfg once, at construction.
func NewMessageUsecase(senderRepo domain.SenderRepository, mailer Mailer, validate *validator.Validate, cfg *config.Config, log *slog.Logger) domain.MessageUsecase {
	return &messageUsecase{
		senderRepo: senderRepo,
		mailer:     mailer,
		validate:   validate,
		fromEmail:  cfg.SMTPFromEmail,
		toEmail:    cfg.ContactEmailTo,
		log:        log,
	}
}

// SendMessage validates the request, stores the sender and relays it by email.
// A failed relay is logged and returned in Submission.NotificationErr only.
func (uc *messageUsecase) SendMessage(ctx context.Context, req *domain.SendMessageRequest) (*domain.Submission, error) {
	validation.TrimStrings(req)
	if err := uc.validate.Struct(req); err != nil {
		fields := validation.FieldErrors(err)
		for field, msgs := range fields {
			if req.IsNull(field) && len(msgs) == 1 && msgs[0] == validation.MsgRequired {
				fields[field] = []string{validation.MsgNull}
			}
		}
		return nil, &domain.ValidationError{Fields: fields}
	}

	sender := &domain.Sender{
		Name:    *req.Name,
		Email:   *req.Email,
		Message: *req.Message,
	}
	if err := uc.senderRepo.Create(ctx, sender); err != nil {
		return nil, fmt.Errorf("failed to save sender: %w", err)
	}

	sub := &domain.Submission{Sender: sender}
	if err := uc.notify(ctx, sender); err != nil {
		sub.NotificationErr = err
		uc.log.Warn("Email failed to send", "sender_id", sender.ID, "error", err)
	} else {
		uc.log.Info("Email sent successfully", "sender_id", sender.ID)
	}

	return sub, nil
}

func (uc *messageUsecase) notify(ctx context.Context, sender *domain.Sender) error {
	msg := email.Message{
		Subject: NotificationSubject,
		Body:    NotificationBody(sender),
		From:    uc.fromEmail,
		To:      []string{uc.toEmail},
		ReplyTo: sender.Email,
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return &domain.NotificationError{SenderID: sender.ID, Err: err}
	}
	return nil
}

// NotificationBody renders the plain-text summary sent to the operator
func NotificationBody(sender *domain.Sender) string {
	return fmt.Sprintf(notificationBody, sender.Name, sender.Email, sender.Message)
}
