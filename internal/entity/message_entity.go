package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a persisted chat record. Messages are addressed by
// (class_name, subject) rather than session id, so a transcript survives the
// session that produced it and reappears when the pair is reopened.
type Message struct {
	Id        uuid.UUID
	SenderId  uuid.UUID
	ClassName string
	Subject   string
	Content   string
	Timestamp time.Time
}
