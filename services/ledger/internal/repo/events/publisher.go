package events

import (
	"strconv"
	"sync"

	"content-ledger/pkg/logger"
	"content-ledger/services/ledger/internal/entity"
)

// Broker is the part of the queue client the publisher needs.
type Broker interface {
	PublishEvent(routingKey string, payload map[string]string) error
}

// Publisher forwards committed ledger events to the broker without blocking
// the calling operation.
type Publisher struct {
	broker Broker
	logger *logger.Logger
	wg     sync.WaitGroup
}

func NewPublisher(broker Broker, logger *logger.Logger) *Publisher {
	return &Publisher{broker: broker, logger: logger}
}

func (p *Publisher) Publish(event entity.Event) {
	payload := make(map[string]string, len(event.Attributes)+2)
	for key, value := range event.Attributes {
		payload[key] = value
	}
	payload["type"] = event.Type
	payload["height"] = strconv.FormatUint(event.Height, 10)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.broker.PublishEvent(event.Type, payload); err != nil {
			p.logger.Error("[LEDGER EVENTS] Failed to publish %s at height %d: %v", event.Type, event.Height, err)
		}
	}()
}

// Wait blocks until every in-flight publish has finished.
func (p *Publisher) Wait() {
	p.wg.Wait()
}
