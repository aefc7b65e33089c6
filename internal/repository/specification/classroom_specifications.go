package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

type ByClassName struct {
	ClassName string
}

func (s ByClassName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("class_name = ?", s.ClassName)
}

type BySubject struct {
	Subject string
}

func (s BySubject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", s.Subject)
}

type ByTeacher struct {
	TeacherId uuid.UUID
}

func (s ByTeacher) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("teacher_id = ?", s.TeacherId)
}

// ActiveOnly filters sessions or quizzes on their is_active flag.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
