package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
