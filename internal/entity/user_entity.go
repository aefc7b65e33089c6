package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleTeacher UserRole = "teacher"
	UserRoleStudent UserRole = "student"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	ClassName    string // students only, e.g. SS1A
	StaffId      string // teachers only
	CreatedAt    time.Time
}

func (u *User) IsTeacher() bool {
	return u.Role == UserRoleTeacher
}

// StaffId records a valid teacher staff id. Each id can be consumed by
// exactly one registration.
type StaffId struct {
	Id     uuid.UUID
	Code   string
	IsUsed bool
}

// Identity is the authenticated caller, resolved once at the transport
// boundary (JWT claims) and passed explicitly into every handler.
type Identity struct {
	UserId    uuid.UUID
	Username  string
	Role      UserRole
	ClassName string
}

func (i Identity) IsTeacher() bool {
	return i.Role == UserRoleTeacher
}

// SubjectsForClass returns the subject list for a class cohort. "A" classes
// take the science track, "B" classes the arts track.
func SubjectsForClass(className string) []string {
	if className == "" {
		return nil
	}
	common := []string{
		"Mathematics", "English", "Data Processing", "Marketing",
		"Civic Education", "Geography",
	}
	if strings.HasSuffix(className, "A") {
		return append(common, "Physics", "Chemistry", "Biology", "Agriculture")
	}
	return append(common, "Government", "Literature", "Economics", "Islamic Studies")
}
