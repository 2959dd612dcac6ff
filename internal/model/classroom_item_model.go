package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	VideoURL    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ClassroomItem) TableName() string {
	return "classroom_items"
}
