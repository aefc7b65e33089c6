package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_unread,priority:1"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"default:false;index:idx_notifications_user_unread,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
