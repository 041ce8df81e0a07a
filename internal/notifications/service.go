package notifications

import (
	"context"
	"fmt"
	"log"

	"ticketly/internal/bookings"
	"ticketly/internal/shared/config"
)

// Service ties the pipeline together: it implements bookings.Notifier by
// publishing to Kafka when a broker is configured, and falls back to direct
// SMTP delivery otherwise. Either way the caller treats it as fire-and-forget.
type Service struct {
	producer NotificationProducer
	consumer NotificationConsumer
	email    EmailService
}

// NewService builds the notification service from application configuration.
// Missing broker and SMTP settings are not fatal: the service degrades to a
// no-op that only logs, because notification failures must never block a
// booking.
func NewService(cfg *config.Config) (*Service, error) {
	svc := &Service{}

	if cfg.Email.SMTPHost != "" {
		email, err := NewSMTPEmailService(NewSMTPConfig(cfg.Email))
		if err != nil {
			return nil, fmt.Errorf("failed to build email service: %w", err)
		}
		svc.email = email
	}

	if cfg.Kafka.Enabled {
		producerConfig := DefaultKafkaProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

		producer, err := NewKafkaNotificationProducer(producerConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build notification producer: %w", err)
		}
		svc.producer = producer

		if svc.email != nil {
			consumerConfig := DefaultConsumerConfig()
			consumerConfig.Brokers = cfg.Kafka.Brokers
			consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}
			consumerConfig.GroupID = cfg.Kafka.ConsumerGroup

			consumer, err := NewKafkaNotificationConsumer(consumerConfig, svc.email)
			if err != nil {
				return nil, fmt.Errorf("failed to build notification consumer: %w", err)
			}
			svc.consumer = consumer
		}
	}

	return svc, nil
}

// NewNoopService returns a service with no producer and no email backend.
// Confirmations handed to it are logged and dropped.
func NewNoopService() *Service {
	return &Service{}
}

// Start launches the consumer workers when the Kafka pipeline is configured.
func (s *Service) Start(ctx context.Context) error {
	if s.consumer == nil {
		return nil
	}
	return s.consumer.StartConsumers(ctx, 2)
}

// Stop shuts down producer and consumer.
func (s *Service) Stop() error {
	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			return err
		}
	}
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}

// BookingConfirmed implements bookings.Notifier.
func (s *Service) BookingConfirmed(ctx context.Context, notice bookings.ConfirmationNotice) error {
	notification := NewBookingNotification(
		notice.BookingID,
		notice.UserID,
		notice.RecipientEmail,
		notice.EventName,
		notice.TicketCount,
	)

	if notification.RecipientEmail == "" {
		log.Printf("Skipping notification for booking %s: no recipient email", notice.BookingID)
		return nil
	}

	if s.producer != nil {
		return s.producer.PublishNotification(ctx, notification)
	}
	if s.email != nil {
		return s.email.SendNotification(ctx, notification)
	}

	log.Printf("Notification pipeline not configured, skipping booking %s", notice.BookingID)
	return nil
}
