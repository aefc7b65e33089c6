package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId  uuid.UUID `gorm:"type:uuid;not null;index"`
	ClassName string    `gorm:"type:varchar(10);not null;index:idx_messages_class_subject,priority:1"`
	Subject   string    `gorm:"type:varchar(50);not null;index:idx_messages_class_subject,priority:2"`
	Content   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
