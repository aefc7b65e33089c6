package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClassSession is a teacher-initiated, time-bounded teaching period for one
// (class, subject) pair. At most one session per pair is active at any time;
// starting a new one supersedes and ends the previous. Sessions are never
// deleted and never return from ENDED to ACTIVE.
type ClassSession struct {
	Id        uuid.UUID
	TeacherId uuid.UUID
	ClassName string
	Subject   string
	IsActive  bool
	StartedAt time.Time
	EndedAt   *time.Time
}

// RoomId derives the broadcast room identity for this session.
func (s *ClassSession) RoomId() string {
	return fmt.Sprintf("classroom_%s", s.Id)
}
