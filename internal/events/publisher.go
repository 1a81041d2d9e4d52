package events

import (
	"fmt"

	"github.com/nycpoi/poiconcierge/internal/models"
)

// Publisher delivers analytics events to a downstream sink. Publishing is
// best-effort: callers log failures and carry on serving the request.
type Publisher interface {
	Publish(topic string, event interface{}) error
	Close() error
}

var (
	_ Publisher = (*SaramaPublisher)(nil)
	_ Publisher = (*ConsolePublisher)(nil)
	_ Publisher = NoopPublisher{}
)

// NewPublisher picks a sink based on configuration. Kafka when enabled,
// otherwise a console sink so events stay visible during development.
func NewPublisher(config *models.Config) (Publisher, error) {
	if config.Kafka.Enabled {
		publisher, err := NewSaramaPublisher(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		return publisher, nil
	}
	return NewConsolePublisher(nil), nil
}
