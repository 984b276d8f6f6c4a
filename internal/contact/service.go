package contact

import (
	"context"
	"strings"
	"time"

	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
	"github.com/google/uuid"
)

// Message is one contact-form submission.
type Message struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Body      string
}

// Receipt acknowledges an accepted message.
type Receipt struct {
	TicketID   uuid.UUID `json:"ticket_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Service accepts contact-form messages. There is no mail backend; the
// submission is acknowledged and logged, matching the storefront's
// simulated behavior.
type Service interface {
	Submit(ctx context.Context, msg Message) (*Receipt, error)
}

type service struct {
	logg *logger.Logger
	now  func() time.Time
}

func NewService(logg *logger.Logger) Service {
	return &service{logg: logg, now: time.Now}
}

func (s *service) Submit(ctx context.Context, msg Message) (*Receipt, error) {
	if violations := validateMessage(msg); len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "contact form invalid").WithDetails(violations)
	}

	receipt := &Receipt{
		TicketID:   uuid.New(),
		ReceivedAt: s.now(),
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"ticket_id": receipt.TicketID.String(),
			"subject":   strings.TrimSpace(msg.Subject),
		})
		s.logg.Info(logCtx, "contact.message_received")
	}

	return receipt, nil
}

func validateMessage(msg Message) map[string]string {
	violations := map[string]string{}
	if strings.TrimSpace(msg.FirstName) == "" {
		violations["first_name"] = "First name is required"
	}
	if strings.TrimSpace(msg.LastName) == "" {
		violations["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(msg.Email) == "" {
		violations["email"] = "Email is required"
	}
	if strings.TrimSpace(msg.Subject) == "" {
		violations["subject"] = "Subject is required"
	}
	if strings.TrimSpace(msg.Body) == "" {
		violations["message"] = "Message is required"
	}
	return violations
}
