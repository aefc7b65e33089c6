package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(256);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	ClassName    string    `gorm:"type:varchar(10);index"`
	StaffId      string    `gorm:"type:varchar(10)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

type StaffId struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code   string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	IsUsed bool      `gorm:"default:false"`
}

func (StaffId) TableName() string {
	return "staff_ids"
}
