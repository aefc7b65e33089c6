package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TeacherId uuid.UUID `gorm:"type:uuid;not null;index"`
	ClassName string    `gorm:"type:varchar(10);not null;index:idx_sessions_class_subject,priority:1"`
	Subject   string    `gorm:"type:varchar(50);not null;index:idx_sessions_class_subject,priority:2"`
	IsActive  bool      `gorm:"default:true;index"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	EndedAt   *time.Time
}

func (ClassSession) TableName() string {
	return "class_sessions"
}
