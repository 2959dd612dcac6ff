package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomTutorMessage struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Role            string     `gorm:"type:varchar(50);not null"`
	Content         string     `gorm:"type:text;not null"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClassroomItemId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index"`
}

func (ClassroomTutorMessage) TableName() string {
	return "classroom_tutor_messages"
}
