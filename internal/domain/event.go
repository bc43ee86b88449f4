package domain

// EventType names a change to the question set
type EventType string

const (
	EventQuestionCreated EventType = "question_created"
	EventQuestionDeleted EventType = "question_deleted"
)

// EventPublisher fans question changes out to live subscribers
type EventPublisher interface {
	Publish(eventType EventType, question Question)
}
