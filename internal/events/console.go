package events

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsolePublisher writes events as JSON lines to a writer, one event per
// line. It is the default sink when Kafka is disabled.
type ConsolePublisher struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsolePublisher writes to w, or stdout when w is nil.
func NewConsolePublisher(w io.Writer) *ConsolePublisher {
	if w == nil {
		w = os.Stdout
	}
	return &ConsolePublisher{out: w}
}

func (c *ConsolePublisher) Publish(topic string, event interface{}) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.out, "%s\t%s\n", topic, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (c *ConsolePublisher) Close() error {
	return nil
}
