package entity

import (
	"time"

	"github.com/google/uuid"
)

// TutorMessage is one turn of the open (unauthenticated) tutor
// conversation. Messages are append-only: once written they are never
// updated or removed.
type TutorMessage struct {
	Id        uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}

// ClassroomTutorMessage is one turn of an authenticated conversation,
// scoped to a user and (when the lookup succeeded) a classroom item.
type ClassroomTutorMessage struct {
	Id              uuid.UUID
	Role            string
	Content         string
	UserId          uuid.UUID
	ClassroomItemId *uuid.UUID
	CreatedAt       time.Time
}
