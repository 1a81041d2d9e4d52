package events

// NoopPublisher drops every event. Used in tests and when analytics is
// switched off entirely.
type NoopPublisher struct{}

func (NoopPublisher) Publish(topic string, event interface{}) error { return nil }

func (NoopPublisher) Close() error { return nil }
