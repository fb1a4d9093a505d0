package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"portfolio/internal/config"
	"portfolio/internal/mailer"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// HintSimulated is returned when dispatch went through the dev notifier.
const HintSimulated = "email delivery simulated; configure EMAIL_HOST, EMAIL_USER and EMAIL_PASS for real delivery"

// HintDeliveryFailed is returned when the message was saved but delivery failed.
const HintDeliveryFailed = "message saved but email delivery failed"

// ContactInput is the public contact-form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ReplyInput is the admin reply payload.
type ReplyInput struct {
	Reply   string `json:"reply" validate:"required,max=5000"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
}

// MessageService manages the contact-form inbox. Dispatch is best effort: the
// message row is persisted before any mail is attempted, and delivery
// problems surface as a hint string, never as a failed request.
type MessageService interface {
	Submit(ctx context.Context, in ContactInput) (*model.Message, string, error)
	List(ctx context.Context) ([]model.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID, read bool) (*model.Message, error)
	Reply(ctx context.Context, id uuid.UUID, in ReplyInput) (*model.Message, string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	repo     repository.MessageRepository
	profiles repository.ProfileRepository
	notifier mailer.Notifier
	cfg      *config.Config
}

// NewMessageService creates the message service.
func NewMessageService(repo repository.MessageRepository, profiles repository.ProfileRepository, notifier mailer.Notifier, cfg *config.Config) MessageService {
	return &messageService{repo: repo, profiles: profiles, notifier: notifier, cfg: cfg}
}

func (s *messageService) Submit(ctx context.Context, in ContactInput) (*model.Message, string, error) {
	msg := &model.Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Content: in.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, "", err
	}

	sender := s.senderName(ctx)
	hint := ""

	notification, err := mailer.RenderContactNotification(in.Name, in.Email, in.Subject, in.Message)
	if err == nil {
		err = s.notifier.Send(ctx, mailer.Mail{
			To:      s.adminAddress(),
			ReplyTo: in.Email,
			Subject: "Portfolio Contact: " + in.Subject,
			HTML:    notification,
		})
	}
	if err != nil {
		log.Printf("contact notification dispatch failed: %v", err)
		hint = HintDeliveryFailed
	}

	confirmation, err := mailer.RenderContactConfirmation(in.Name, in.Message, sender)
	if err == nil {
		err = s.notifier.Send(ctx, mailer.Mail{
			To:      in.Email,
			Subject: "Thank you for contacting " + sender,
			HTML:    confirmation,
		})
	}
	if err != nil {
		log.Printf("contact confirmation dispatch failed: %v", err)
		hint = HintDeliveryFailed
	}

	if hint == "" && s.notifier.Simulated() {
		hint = HintSimulated
	}
	return msg, hint, nil
}

func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	return s.repo.List(ctx)
}

func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*model.Message, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	msg.Read = read
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messageService) Reply(ctx context.Context, id uuid.UUID, in ReplyInput) (*model.Message, string, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	subject := in.Subject
	if subject == "" {
		subject = "Re: " + msg.Subject
	}

	hint := ""
	body, err := mailer.RenderReply(msg.Name, in.Reply, msg.Content)
	if err == nil {
		err = s.notifier.Send(ctx, mailer.Mail{
			To:      msg.Email,
			ReplyTo: s.adminAddress(),
			Subject: subject,
			HTML:    body,
		})
	}
	if err != nil {
		log.Printf("reply dispatch failed for message %s: %v", msg.ID, err)
		hint = HintDeliveryFailed
	} else if s.notifier.Simulated() {
		hint = HintSimulated
	}

	msg.Replied = true
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, "", err
	}
	return msg, hint, nil
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// adminAddress is where contact notifications land.
func (s *messageService) adminAddress() string {
	if from := s.cfg.FromAddress(); from != "" {
		return from
	}
	return s.cfg.AdminEmail
}

// senderName reads the profile name for the mail signature, falling back to
// the admin email when the profile is unavailable.
func (s *messageService) senderName(ctx context.Context) string {
	profile, err := s.profiles.GetOrCreate(ctx, &model.Profile{
		Email: s.cfg.AdminEmail,
		Name:  "Portfolio Owner",
	})
	if err != nil || profile.Name == "" {
		return s.cfg.AdminEmail
	}
	return profile.Name
}
