// Package queue declares the notification topology on RabbitMQ and
// wraps publishing and consuming behind small adapters.
//
// Topology: a direct exchange routes WriteArticle/WriteComment envelopes
// into the ad-articles-notification work queue (with retry queue and DLQ),
// and a fanout exchange broadcasts per-recipient SendCommentNotification
// envelopes to the email and sms sink queues.
package queue

import (
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/jinhanworks/board-notifier/internal/event"
)

const (
	ArticlesExchangeName = "ad-articles"
	ArticlesQueueName    = "ad-articles-notification"
	ArticlesRetryName    = "ad-articles-notification.retry"
	ArticlesDLQName      = "ad-articles-notification.dlq"
	ArticlesRoutingKey   = "ad-articles"

	NotifyExchangeName = "send_notification_exchange"
	EmailQueueName     = "send_notification.email"
	SMSQueueName       = "send_notification.sms"
)

// Source adapts one consumer to a raw payload stream. It satisfies the
// worker pool's message source.
type Source struct {
	consumer *rabbitmq.Consumer
	strategy retry.Strategy
}

// Consume delivers raw payloads into out until the underlying consumer stops.
func (s *Source) Consume(out chan []byte) error {
	return s.consumer.ConsumeWithRetry(out, s.strategy)
}

// NotificationQueue bundles the publishers and consumers of the
// notification topology.
type NotificationQueue struct {
	Articles *Source // WriteArticle/WriteComment work queue
	Email    *Source // email sink
	SMS      *Source // sms sink

	events   *rabbitmq.Publisher // direct exchange for article/comment events
	notify   *rabbitmq.Publisher // fanout exchange for per-recipient events
	strategy retry.Strategy
}

// NewNotificationQueue declares the exchanges, queues and bindings and
// returns the ready-to-use adapters.
func NewNotificationQueue(ch *rabbitmq.Channel, strategy retry.Strategy) (*NotificationQueue, error) {
	eventsExchange := rabbitmq.NewExchange(ArticlesExchangeName, "direct")
	if err := eventsExchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to declare events exchange: %w", err)
	}

	notifyExchange := rabbitmq.NewExchange(NotifyExchangeName, "fanout")
	if err := notifyExchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to declare notify exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(ArticlesDLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": ArticlesQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(ArticlesRetryName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": ArticlesDLQName,
	}

	mainQ, err := qm.DeclareQueue(ArticlesQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, ArticlesRoutingKey, eventsExchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the events exchange to the main queue: %w", err)
	}

	emailQ, err := qm.DeclareQueue(EmailQueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare email queue: %w", err)
	}

	smsQ, err := qm.DeclareQueue(SMSQueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare sms queue: %w", err)
	}

	for _, q := range []string{emailQ.Name, smsQ.Name} {
		if err := ch.QueueBind(q, "", notifyExchange.Name(), false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind the notify exchange to %s: %w", q, err)
		}
	}

	return &NotificationQueue{
		Articles: &Source{consumer: rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)), strategy: strategy},
		Email:    &Source{consumer: rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(emailQ.Name)), strategy: strategy},
		SMS:      &Source{consumer: rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(smsQ.Name)), strategy: strategy},
		events:   rabbitmq.NewPublisher(ch, eventsExchange.Name()),
		notify:   rabbitmq.NewPublisher(ch, notifyExchange.Name()),
		strategy: strategy,
	}, nil
}

// PublishEvent publishes an article or comment event to the work queue.
// Callers publish strictly after their transaction commits and treat a
// returned error as log-only.
func (q *NotificationQueue) PublishEvent(ev event.Event) error {
	body, err := event.Encode(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	return q.events.PublishWithRetry(body, ArticlesRoutingKey, "application/json", q.strategy)
}

// PublishNotify broadcasts a per-recipient notification event to every
// sink queue bound to the fanout exchange.
func (q *NotificationQueue) PublishNotify(ev event.CommentNotify) error {
	body, err := event.Encode(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	return q.notify.PublishWithRetry(body, "", "application/json", q.strategy)
}
