package models

import "time"

type Poll struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	TeacherID uint         `gorm:"not null;index" json:"teacher_id"`
	Title     string       `gorm:"size:255;not null" json:"title"`
	ImageURL  string       `gorm:"size:500" json:"image_url,omitempty"`
	Options   []PollOption `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type PollOption struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PollID   uint   `gorm:"not null;index" json:"poll_id"`
	Text     string `gorm:"size:500;not null" json:"text"`
	OrderNum int    `gorm:"not null" json:"order_num"`
}
