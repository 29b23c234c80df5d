package fanout

import "time"

// Event é uma ocorrência de ciclo de vida distribuída aos inscritos.
// Payload é serializado como JSON no corpo do webhook.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"timestamp"`
	Payload    interface{} `json:"data"`
}

// PollClosedPayload é o corpo do evento poll.closed
type PollClosedPayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TotalVotes int64  `json:"totalVotes"`
}

// ChatMessagePayload é o corpo do evento chat.message
type ChatMessagePayload struct {
	PollID  string `json:"pollId"`
	Content string `json:"content"`
	Role    string `json:"role"`
}

// NewEvent cria um evento com o horário atual
func NewEvent(eventType string, payload interface{}) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
