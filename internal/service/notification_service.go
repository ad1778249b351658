package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/config"
	"github.com/spec-kit/salon-booking/internal/events"
	"github.com/spec-kit/salon-booking/internal/mail"
)

// NotificationService emits best-effort notifications for domain events.
// Failures are logged by the dispatcher and never reach the caller that
// triggered the event.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquiryReceived, n.handleInquiryReceived)
	n.dispatcher.Subscribe(events.EventInquiryStatusChanged, n.handleInquiryStatusChanged)
	n.dispatcher.Subscribe(events.EventMessageReceived, n.handleMessageReceived)
}

func (n *NotificationService) handleInquiryReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryReceivedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	inquiry := payload.Inquiry

	n.logger.Info("new booking inquiry saved",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("service", inquiry.Service),
		zap.String("date", inquiry.PreferredDate),
		zap.String("time", inquiry.PreferredTime))

	if n.cfg.AdminEmail == "" {
		n.logger.Debug("admin email not set, skipping notification")
		return nil
	}

	subject := fmt.Sprintf("New Booking Inquiry: %s - %s", inquiry.Service, inquiry.Name)
	body := fmt.Sprintf(`New booking received.

Name: %s
Email: %s
Phone: %s
Service: %s
Preferred Date: %s
Preferred Time: %s
Message: %s

ID: %s`,
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Service,
		inquiry.PreferredDate, inquiry.PreferredTime, inquiry.Message, inquiry.ID)

	return n.mailer.Send(n.cfg.AdminEmail, subject, body)
}

func (n *NotificationService) handleInquiryStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryStatusChangedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	n.logger.Info("booking status updated",
		zap.String("inquiry_id", payload.InquiryID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)))
	return nil
}

func (n *NotificationService) handleMessageReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.MessageReceivedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	n.logger.Info("new contact message received",
		zap.String("message_id", payload.MessageID),
		zap.String("subject", payload.Subject))
	return nil
}
