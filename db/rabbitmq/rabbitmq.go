package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"movie_recommender/configs"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mux      sync.Mutex
}

var ErrClosed = errors.New("rabbitmq: publisher closed")

func NewPublisher() (*Publisher, error) {
	conn, err := amqp.Dial(configs.GetConfigs().RabbitmqUrl)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	exchange := configs.GetConfigs().RabbitmqExchange
	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	log.Info().Str("exchange", exchange).Msg("rabbitmq publisher ready")

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// Publish sends one persistent JSON message, routed by routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.channel == nil || p.channel.IsClosed() {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	return p.conn.Close()
}
