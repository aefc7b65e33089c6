package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	ClassName string `json:"class_name" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
}

type SessionDTO struct {
	Id        uuid.UUID  `json:"id"`
	RoomId    string     `json:"room_id"`
	TeacherId uuid.UUID  `json:"teacher_id"`
	ClassName string     `json:"class_name"`
	Subject   string     `json:"subject"`
	IsActive  bool       `json:"is_active"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

type JoinSessionResponse struct {
	Session SessionDTO   `json:"session"`
	History []MessageDTO `json:"history"`
}

type MessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
	Role      string    `json:"role"`
}
