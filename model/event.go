package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	UserRegisteredEvent        EventType = "user.registered"
	UserTopFiveUpdatedEvent    EventType = "user.top5.updated"
	UserQuizSubmittedEvent     EventType = "user.quiz.submitted"
	RecommendationsServedEvent EventType = "user.recommendations.served"
)

type Event struct {
	EventId   string                 `json:"event_id"`
	Type      EventType              `json:"type"`
	UserId    int64                  `json:"user_id"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewEvent(eventType EventType, userId int64, payload map[string]interface{}) Event {
	return Event{
		EventId:   uuid.NewString(),
		Type:      eventType,
		UserId:    userId,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}
