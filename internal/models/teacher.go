package models

import "time"

type Teacher struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	RoomID       int       `gorm:"not null;index" json:"room_id"`
	CreatedAt    time.Time `json:"created_at"`
}
