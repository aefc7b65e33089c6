package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
