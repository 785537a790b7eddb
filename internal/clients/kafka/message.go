package kafka

import (
	"encoding/json"
	"fmt"

	"countdown-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event_type"

// EventMessage is the envelope of every countdown event on the topic.
type EventMessage struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	CountdownID string                 `json:"countdown_id"`
	Data        map[string]interface{} `json:"data"`
	Timestamp   string                 `json:"timestamp"`
}

// toMessage keys the record by countdown id. With the hash balancer all
// events of one countdown land on one partition.
func (e EventMessage) toMessage() (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}
	return kafka.Message{
		Key:     []byte(e.CountdownID),
		Value:   value,
		Headers: []kafka.Header{{Key: headerEventType, Value: []byte(e.Type)}},
	}, nil
}

func decodeEvent(msg kafka.Message) (EventMessage, error) {
	var event EventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return EventMessage{}, fmt.Errorf("failed to decode event at offset %d: %w", msg.Offset, err)
	}
	if event.CountdownID == "" {
		event.CountdownID = string(msg.Key)
	}
	return event, nil
}

func (e EventMessage) logFields() []observability.Field {
	return []observability.Field{
		{Key: "event_type", Value: e.Type},
		{Key: "event_id", Value: e.ID},
		{Key: "countdown_id", Value: e.CountdownID},
	}
}
