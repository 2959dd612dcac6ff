package model

import (
	"time"

	"github.com/google/uuid"
)

type TutorMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Role      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (TutorMessage) TableName() string {
	return "tutor_messages"
}
